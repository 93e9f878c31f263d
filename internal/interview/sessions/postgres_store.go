package sessions

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

// PostgresStore implements SessionStore interface with PostgreSQL storage
type PostgresStore struct {
	db *bun.DB
}

// NewPostgresStore creates a new PostgreSQL store
func NewPostgresStore(db *bun.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// SessionSchema represents the sessions table schema
type SessionSchema struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	UUID          uuid.UUID  `bun:"uuid,pk,type:uuid" json:"uuid"`
	UserID        string     `bun:"user_id,notnull" json:"user_id"`
	Role          string     `bun:"role,notnull" json:"role"`
	Experience    string     `bun:"experience,notnull" json:"experience"`
	TopicsToFocus string     `bun:"topics_to_focus" json:"topics_to_focus"`
	Description   *string    `bun:"description,nullzero" json:"description,omitempty"`
	Questions     []string   `bun:"questions,array" json:"questions"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt     *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// CreateSession creates a new session
func (s *PostgresStore) CreateSession(ctx context.Context, session *Session) error {
	schema := sessionToSchema(session)

	_, err := s.db.NewInsert().
		Model(schema).
		Exec(ctx)
	if err != nil {
		return interview.NewStorageError("insert", "sessions", err)
	}

	return nil
}

// GetSession retrieves a session by ID (active sessions only)
func (s *PostgresStore) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	var schema SessionSchema
	err := s.db.NewSelect().
		Model(&schema).
		Where("uuid = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, interview.NewNotFoundError("session", id.String())
		}
		return nil, interview.NewStorageError("select", "sessions", err)
	}

	return schemaToSession(schema), nil
}

// ListSessionsByUser lists sessions owned by a user, newest first
func (s *PostgresStore) ListSessionsByUser(ctx context.Context, userID string) ([]*Session, error) {
	var schemas []SessionSchema
	err := s.db.NewSelect().
		Model(&schemas).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, interview.NewStorageError("select", "sessions", err)
	}

	result := make([]*Session, 0, len(schemas))
	for _, schema := range schemas {
		result = append(result, schemaToSession(schema))
	}

	return result, nil
}

// UpdateSession persists a modified session. The question list is written as a
// whole; the read-modify-write sequence around this call is not transactional.
func (s *PostgresStore) UpdateSession(ctx context.Context, session *Session) error {
	schema := sessionToSchema(session)
	schema.UpdatedAt = time.Now()

	result, err := s.db.NewUpdate().
		Model(schema).
		Column("role", "experience", "topics_to_focus", "description", "questions", "updated_at").
		Where("uuid = ?", session.UUID).
		Where("deleted_at IS NULL").
		Exec(ctx)
	if err != nil {
		return interview.NewStorageError("update", "sessions", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return interview.NewStorageError("update", "sessions", err)
	}

	if rowsAffected == 0 {
		return interview.NewNotFoundError("session", session.UUID.String())
	}

	return nil
}

// DeleteSession soft-deletes a session by setting deleted_at timestamp
func (s *PostgresStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	now := time.Now()

	result, err := s.db.NewUpdate().
		Model((*SessionSchema)(nil)).
		Where("uuid = ?", id).
		Where("deleted_at IS NULL").
		Set("deleted_at = ?", now).
		Set("updated_at = ?", now).
		Exec(ctx)
	if err != nil {
		return interview.NewStorageError("delete", "sessions", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return interview.NewStorageError("delete", "sessions", err)
	}

	if rowsAffected == 0 {
		return interview.NewNotFoundError("session", id.String())
	}

	return nil
}

// CreateTables creates the sessions table if it does not exist
func CreateTables(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*SessionSchema)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return interview.NewStorageError("create_table", "sessions", err)
	}

	return nil
}

// Helper conversion functions

func sessionToSchema(session *Session) *SessionSchema {
	questions := make([]string, 0, len(session.Questions))
	for _, q := range session.Questions {
		questions = append(questions, q.String())
	}

	var description *string
	if session.Description != "" {
		description = &session.Description
	}

	return &SessionSchema{
		UUID:          session.UUID,
		UserID:        session.UserID,
		Role:          session.Role,
		Experience:    session.Experience,
		TopicsToFocus: session.TopicsToFocus,
		Description:   description,
		Questions:     questions,
		CreatedAt:     session.CreatedAt,
		UpdatedAt:     session.UpdatedAt,
	}
}

func schemaToSession(schema SessionSchema) *Session {
	questions := make([]uuid.UUID, 0, len(schema.Questions))
	for _, q := range schema.Questions {
		id, err := uuid.Parse(q)
		if err != nil {
			continue
		}
		questions = append(questions, id)
	}

	session := &Session{
		UUID:          schema.UUID,
		UserID:        schema.UserID,
		Role:          schema.Role,
		Experience:    schema.Experience,
		TopicsToFocus: schema.TopicsToFocus,
		Questions:     questions,
		CreatedAt:     schema.CreatedAt,
		UpdatedAt:     schema.UpdatedAt,
	}

	if schema.Description != nil {
		session.Description = *schema.Description
	}

	return session
}
