package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

// SessionService implements the SessionManager interface
type SessionService struct {
	store SessionStore
}

// NewSessionService creates a new session service
func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{
		store: store,
	}
}

// NewService creates a new session service (alias for NewSessionService)
func NewService(store SessionStore) *SessionService {
	return NewSessionService(store)
}

// CreateSession creates a new session with an empty question list
func (s *SessionService) CreateSession(ctx context.Context, req *CreateSessionRequest) (*Session, error) {
	if req.UserID == "" {
		return nil, interview.NewValidationError("user_id", "user_id is required")
	}

	if req.Role == "" {
		return nil, interview.NewValidationError("role", "role is required")
	}

	if req.Experience == "" {
		return nil, interview.NewValidationError("experience", "experience is required")
	}

	now := time.Now()
	session := &Session{
		UUID:          uuid.New(),
		UserID:        req.UserID,
		Role:          req.Role,
		Experience:    req.Experience,
		TopicsToFocus: req.TopicsToFocus,
		Description:   req.Description,
		Questions:     []uuid.UUID{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.store.GetSession(ctx, id)
}

// ListSessions lists all sessions owned by a user, newest first
func (s *SessionService) ListSessions(ctx context.Context, userID string) ([]*Session, error) {
	if userID == "" {
		return nil, interview.NewValidationError("user_id", "user_id is required")
	}

	return s.store.ListSessionsByUser(ctx, userID)
}

// DeleteSession deletes a session. Questions owned by the session are removed
// separately by the question service before this is called.
func (s *SessionService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	// Check if session exists
	if _, err := s.store.GetSession(ctx, id); err != nil {
		return err
	}

	return s.store.DeleteSession(ctx, id)
}
