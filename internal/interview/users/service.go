package users

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	store UserStore
}

// NewUserService creates a new user service
func NewUserService(store UserStore) *UserServiceImpl {
	return &UserServiceImpl{
		store: store,
	}
}

// CreateUser creates a new user
func (s *UserServiceImpl) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if req.UserID == "" {
		return nil, interview.NewValidationError("user_id", "user_id is required")
	}

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, interview.NewValidationError("email", "a valid email is required")
	}

	now := time.Now()
	user := &User{
		UUID:      uuid.New(),
		UserID:    req.UserID,
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, interview.NewValidationError("user_id", "user_id is required")
	}

	return s.store.GetUser(ctx, userID)
}

// DeleteUser deletes a user
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	if userID == "" {
		return interview.NewValidationError("user_id", "user_id is required")
	}

	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return err
	}

	return s.store.DeleteUser(ctx, userID)
}
