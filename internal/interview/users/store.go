package users

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

// UserSchema represents the users table schema in PostgreSQL
type UserSchema struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	UUID      uuid.UUID  `bun:"uuid,pk,type:uuid" json:"uuid"`
	UserID    string     `bun:"user_id,notnull,unique" json:"user_id"`
	Name      *string    `bun:"name" json:"name,omitempty"`
	Email     string     `bun:"email,notnull,unique" json:"email"`
	CreatedAt time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// PostgresStore implements the UserStore interface
type PostgresStore struct {
	db *bun.DB
}

// NewPostgresStore creates a new user store instance
func NewPostgresStore(db *bun.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// CreateUser creates a new user
func (s *PostgresStore) CreateUser(ctx context.Context, user *User) error {
	schema := userToSchema(user)

	_, err := s.db.NewInsert().
		Model(&schema).
		Exec(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return interview.NewValidationError("user_id", "user already exists with user_id: "+user.UserID)
		}
		return interview.NewStorageError("insert", "users", err)
	}

	return nil
}

// GetUser retrieves a user by ID (active users only)
func (s *PostgresStore) GetUser(ctx context.Context, userID string) (*User, error) {
	var schema UserSchema
	err := s.db.NewSelect().
		Model(&schema).
		Where("user_id = ?", userID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, interview.NewNotFoundError("user", userID)
		}
		return nil, interview.NewStorageError("select", "users", err)
	}

	return schemaToUser(schema), nil
}

// DeleteUser soft-deletes a user by setting deleted_at timestamp
func (s *PostgresStore) DeleteUser(ctx context.Context, userID string) error {
	now := time.Now()

	result, err := s.db.NewUpdate().
		Model((*UserSchema)(nil)).
		Where("user_id = ?", userID).
		Where("deleted_at IS NULL").
		Set("deleted_at = ?", now).
		Set("updated_at = ?", now).
		Exec(ctx)
	if err != nil {
		return interview.NewStorageError("delete", "users", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return interview.NewStorageError("delete", "users", err)
	}

	if rowsAffected == 0 {
		return interview.NewNotFoundError("user", userID)
	}

	return nil
}

// CreateTables creates the users table if it does not exist
func CreateTables(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*UserSchema)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return interview.NewStorageError("create_table", "users", err)
	}

	return nil
}

// Helper conversion functions

func userToSchema(user *User) UserSchema {
	var name *string
	if user.Name != "" {
		name = &user.Name
	}

	return UserSchema{
		UUID:      user.UUID,
		UserID:    user.UserID,
		Name:      name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		DeletedAt: user.DeletedAt,
	}
}

func schemaToUser(schema UserSchema) *User {
	user := &User{
		UUID:      schema.UUID,
		UserID:    schema.UserID,
		Email:     schema.Email,
		CreatedAt: schema.CreatedAt,
		UpdatedAt: schema.UpdatedAt,
		DeletedAt: schema.DeletedAt,
	}

	if schema.Name != nil {
		user.Name = *schema.Name
	}

	return user
}
