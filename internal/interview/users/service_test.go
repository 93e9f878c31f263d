package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	service := NewUserService(NewInMemoryStore())

	user, err := service.CreateUser(ctx, &CreateUserRequest{
		UserID: "user-1",
		Name:   "Sai",
		Email:  "sai@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)

	fetched, err := service.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "sai@example.com", fetched.Email)
}

func TestCreateUserValidation(t *testing.T) {
	ctx := context.Background()
	service := NewUserService(NewInMemoryStore())

	_, err := service.CreateUser(ctx, &CreateUserRequest{Email: "a@b.com"})
	assert.True(t, interview.IsValidation(err))

	_, err = service.CreateUser(ctx, &CreateUserRequest{UserID: "u", Email: "not-an-email"})
	assert.True(t, interview.IsValidation(err))
}

func TestCreateUserDuplicate(t *testing.T) {
	ctx := context.Background()
	service := NewUserService(NewInMemoryStore())

	req := &CreateUserRequest{UserID: "user-1", Email: "sai@example.com"}
	_, err := service.CreateUser(ctx, req)
	require.NoError(t, err)

	_, err = service.CreateUser(ctx, req)
	assert.True(t, interview.IsValidation(err))
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	service := NewUserService(NewInMemoryStore())

	_, err := service.CreateUser(ctx, &CreateUserRequest{UserID: "user-1", Email: "sai@example.com"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser(ctx, "user-1"))

	_, err = service.GetUser(ctx, "user-1")
	assert.True(t, interview.IsNotFound(err))

	err = service.DeleteUser(ctx, "user-1")
	assert.True(t, interview.IsNotFound(err))
}
