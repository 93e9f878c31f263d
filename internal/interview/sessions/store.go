package sessions

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

// InMemoryStore implements SessionStore interface with in-memory storage
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewInMemoryStore creates a new in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// CreateSession creates a new session
func (s *InMemoryStore) CreateSession(ctx context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *session
	copied.Questions = append([]uuid.UUID{}, session.Questions...)
	s.sessions[session.UUID] = &copied
	return nil
}

// GetSession retrieves a session by ID
func (s *InMemoryStore) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, interview.NewNotFoundError("session", id.String())
	}

	copied := *session
	copied.Questions = append([]uuid.UUID{}, session.Questions...)
	return &copied, nil
}

// ListSessionsByUser lists sessions owned by a user, newest first
func (s *InMemoryStore) ListSessionsByUser(ctx context.Context, userID string) ([]*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Session
	for _, session := range s.sessions {
		if session.UserID != userID {
			continue
		}
		copied := *session
		copied.Questions = append([]uuid.UUID{}, session.Questions...)
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// UpdateSession persists a modified session
func (s *InMemoryStore) UpdateSession(ctx context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.UUID]; !ok {
		return interview.NewNotFoundError("session", session.UUID.String())
	}

	copied := *session
	copied.Questions = append([]uuid.UUID{}, session.Questions...)
	s.sessions[session.UUID] = &copied
	return nil
}

// DeleteSession deletes a session
func (s *InMemoryStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return interview.NewNotFoundError("session", id.String())
	}

	delete(s.sessions, id)
	return nil
}
