package questions

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

// PostgresStore implements QuestionStore interface with PostgreSQL storage
type PostgresStore struct {
	db *bun.DB
}

// NewPostgresStore creates a new PostgreSQL store
func NewPostgresStore(db *bun.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// QuestionSchema represents the questions table schema
type QuestionSchema struct {
	bun.BaseModel `bun:"table:questions,alias:q"`

	UUID      uuid.UUID `bun:"uuid,pk,type:uuid" json:"uuid"`
	SessionID uuid.UUID `bun:"session_id,notnull,type:uuid" json:"session_id"`
	Question  string    `bun:"question,notnull" json:"question"`
	Answer    string    `bun:"answer" json:"answer"`
	IsPinned  bool      `bun:"is_pinned,notnull,default:false" json:"is_pinned"`
	Note      string    `bun:"note,default:''" json:"note"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// CreateQuestions batch-inserts questions in a single statement
func (s *PostgresStore) CreateQuestions(ctx context.Context, questions []*Question) error {
	if len(questions) == 0 {
		return nil
	}

	schemas := make([]QuestionSchema, 0, len(questions))
	for _, question := range questions {
		schemas = append(schemas, questionToSchema(question))
	}

	_, err := s.db.NewInsert().
		Model(&schemas).
		Exec(ctx)
	if err != nil {
		return interview.NewStorageError("insert", "questions", err)
	}

	return nil
}

// GetQuestion retrieves a question by ID
func (s *PostgresStore) GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error) {
	var schema QuestionSchema
	err := s.db.NewSelect().
		Model(&schema).
		Where("uuid = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, interview.NewNotFoundError("question", id.String())
		}
		return nil, interview.NewStorageError("select", "questions", err)
	}

	return schemaToQuestion(schema), nil
}

// ListQuestionsBySession lists all questions belonging to a session
func (s *PostgresStore) ListQuestionsBySession(ctx context.Context, sessionID uuid.UUID) ([]*Question, error) {
	var schemas []QuestionSchema
	err := s.db.NewSelect().
		Model(&schemas).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, interview.NewStorageError("select", "questions", err)
	}

	result := make([]*Question, 0, len(schemas))
	for _, schema := range schemas {
		result = append(result, schemaToQuestion(schema))
	}

	return result, nil
}

// UpdateQuestion persists the mutable fields of a question
func (s *PostgresStore) UpdateQuestion(ctx context.Context, question *Question) error {
	schema := questionToSchema(question)
	schema.UpdatedAt = time.Now()

	result, err := s.db.NewUpdate().
		Model(&schema).
		Column("is_pinned", "note", "updated_at").
		Where("uuid = ?", question.UUID).
		Exec(ctx)
	if err != nil {
		return interview.NewStorageError("update", "questions", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return interview.NewStorageError("update", "questions", err)
	}

	if rowsAffected == 0 {
		return interview.NewNotFoundError("question", question.UUID.String())
	}

	return nil
}

// DeleteQuestionsBySession deletes all questions belonging to a session
func (s *PostgresStore) DeleteQuestionsBySession(ctx context.Context, sessionID uuid.UUID) error {
	_, err := s.db.NewDelete().
		Model((*QuestionSchema)(nil)).
		Where("session_id = ?", sessionID).
		Exec(ctx)
	if err != nil {
		return interview.NewStorageError("delete", "questions", err)
	}

	return nil
}

// CreateTables creates the questions table if it does not exist
func CreateTables(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*QuestionSchema)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return interview.NewStorageError("create_table", "questions", err)
	}

	return nil
}

// Helper conversion functions

func questionToSchema(question *Question) QuestionSchema {
	return QuestionSchema{
		UUID:      question.UUID,
		SessionID: question.SessionID,
		Question:  question.Question,
		Answer:    question.Answer,
		IsPinned:  question.IsPinned,
		Note:      question.Note,
		CreatedAt: question.CreatedAt,
		UpdatedAt: question.UpdatedAt,
	}
}

func schemaToQuestion(schema QuestionSchema) *Question {
	return &Question{
		UUID:      schema.UUID,
		SessionID: schema.SessionID,
		Question:  schema.Question,
		Answer:    schema.Answer,
		IsPinned:  schema.IsPinned,
		Note:      schema.Note,
		CreatedAt: schema.CreatedAt,
		UpdatedAt: schema.UpdatedAt,
	}
}
