package users

import (
	"context"
	"sync"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

// InMemoryStore implements UserStore interface with in-memory storage
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]*User
}

// NewInMemoryStore creates a new in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users: make(map[string]*User),
	}
}

// CreateUser creates a new user
func (s *InMemoryStore) CreateUser(ctx context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.UserID]; ok {
		return interview.NewValidationError("user_id", "user already exists with user_id: "+user.UserID)
	}

	copied := *user
	s.users[user.UserID] = &copied
	return nil
}

// GetUser retrieves a user by ID
func (s *InMemoryStore) GetUser(ctx context.Context, userID string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, interview.NewNotFoundError("user", userID)
	}

	copied := *user
	return &copied, nil
}

// DeleteUser deletes a user
func (s *InMemoryStore) DeleteUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return interview.NewNotFoundError("user", userID)
	}

	delete(s.users, userID)
	return nil
}
