package questions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
	"github.com/SaiPrasanth27/interview-prep/internal/interview/sessions"
)

// QuestionService implements the QuestionManager interface
type QuestionService struct {
	store        QuestionStore
	sessionStore sessions.SessionStore
}

// NewQuestionService creates a new question service
func NewQuestionService(store QuestionStore, sessionStore sessions.SessionStore) *QuestionService {
	return &QuestionService{
		store:        store,
		sessionStore: sessionStore,
	}
}

// NewService creates a new question service (alias for NewQuestionService)
func NewService(store QuestionStore, sessionStore sessions.SessionStore) *QuestionService {
	return NewQuestionService(store, sessionStore)
}

// AddQuestions batch-inserts one question per input pair and appends the new
// question IDs, in input order, to the session's question list. The insert and
// the session update are two separate writes: if the session update fails, the
// inserted questions are left unreferenced.
func (s *QuestionService) AddQuestions(ctx context.Context, sessionID uuid.UUID, pairs []QuestionPair) ([]*Question, error) {
	if len(pairs) == 0 {
		return nil, interview.NewValidationError("questions", "at least one question is required")
	}

	session, err := s.sessionStore.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	created := make([]*Question, 0, len(pairs))
	for _, pair := range pairs {
		created = append(created, &Question{
			UUID:      uuid.New(),
			SessionID: session.UUID,
			Question:  pair.Question,
			Answer:    pair.Answer,
			IsPinned:  false,
			Note:      "",
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.store.CreateQuestions(ctx, created); err != nil {
		return nil, err
	}

	for _, question := range created {
		session.Questions = append(session.Questions, question.UUID)
	}

	if err := s.sessionStore.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	return created, nil
}

// TogglePin flips the pinned flag on a question. Each call flips state: two
// calls in sequence return to the original value.
func (s *QuestionService) TogglePin(ctx context.Context, id uuid.UUID) (*Question, error) {
	question, err := s.store.GetQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	question.IsPinned = !question.IsPinned
	question.UpdatedAt = time.Now()

	if err := s.store.UpdateQuestion(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// SetNote overwrites the note on a question. An empty note is allowed and
// clears any prior value.
func (s *QuestionService) SetNote(ctx context.Context, id uuid.UUID, note string) (*Question, error) {
	question, err := s.store.GetQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	question.Note = note
	question.UpdatedAt = time.Now()

	if err := s.store.UpdateQuestion(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// ListBySession returns a session's questions in the session's display order
func (s *QuestionService) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Question, error) {
	session, err := s.sessionStore.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.ListQuestionsBySession(ctx, session.UUID)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*Question, len(stored))
	for _, question := range stored {
		byID[question.UUID] = question
	}

	ordered := make([]*Question, 0, len(stored))
	for _, id := range session.Questions {
		if question, ok := byID[id]; ok {
			ordered = append(ordered, question)
		}
	}

	return ordered, nil
}

// DeleteBySession removes all questions owned by a session. Used by the
// cascading session delete.
func (s *QuestionService) DeleteBySession(ctx context.Context, sessionID uuid.UUID) error {
	return s.store.DeleteQuestionsBySession(ctx, sessionID)
}
