package questions

import (
	"context"

	"github.com/google/uuid"
)

// QuestionManager defines the interface for question operations
type QuestionManager interface {
	AddQuestions(ctx context.Context, sessionID uuid.UUID, pairs []QuestionPair) ([]*Question, error)
	TogglePin(ctx context.Context, id uuid.UUID) (*Question, error)
	SetNote(ctx context.Context, id uuid.UUID, note string) (*Question, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Question, error)
	DeleteBySession(ctx context.Context, sessionID uuid.UUID) error
}

// QuestionStore defines the interface for question storage operations
type QuestionStore interface {
	CreateQuestions(ctx context.Context, questions []*Question) error
	GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error)
	ListQuestionsBySession(ctx context.Context, sessionID uuid.UUID) ([]*Question, error)
	UpdateQuestion(ctx context.Context, question *Question) error
	DeleteQuestionsBySession(ctx context.Context, sessionID uuid.UUID) error
}
