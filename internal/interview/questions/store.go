package questions

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

// InMemoryStore implements QuestionStore interface with in-memory storage
type InMemoryStore struct {
	mu        sync.RWMutex
	questions map[uuid.UUID]*Question
}

// NewInMemoryStore creates a new in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		questions: make(map[uuid.UUID]*Question),
	}
}

// CreateQuestions batch-inserts questions
func (s *InMemoryStore) CreateQuestions(ctx context.Context, questions []*Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, question := range questions {
		copied := *question
		s.questions[question.UUID] = &copied
	}
	return nil
}

// GetQuestion retrieves a question by ID
func (s *InMemoryStore) GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	question, ok := s.questions[id]
	if !ok {
		return nil, interview.NewNotFoundError("question", id.String())
	}

	copied := *question
	return &copied, nil
}

// ListQuestionsBySession lists all questions belonging to a session
func (s *InMemoryStore) ListQuestionsBySession(ctx context.Context, sessionID uuid.UUID) ([]*Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Question
	for _, question := range s.questions {
		if question.SessionID != sessionID {
			continue
		}
		copied := *question
		result = append(result, &copied)
	}

	return result, nil
}

// UpdateQuestion persists a modified question
func (s *InMemoryStore) UpdateQuestion(ctx context.Context, question *Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[question.UUID]; !ok {
		return interview.NewNotFoundError("question", question.UUID.String())
	}

	copied := *question
	s.questions[question.UUID] = &copied
	return nil
}

// DeleteQuestionsBySession deletes all questions belonging to a session
func (s *InMemoryStore) DeleteQuestionsBySession(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, question := range s.questions {
		if question.SessionID == sessionID {
			delete(s.questions, id)
		}
	}
	return nil
}
