package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

func TestCreateSession(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryStore())

	session, err := service.CreateSession(ctx, &CreateSessionRequest{
		UserID:        "user-1",
		Role:          "Frontend Developer",
		Experience:    "2",
		TopicsToFocus: "React, CSS",
		Description:   "Prep for first onsite",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, session.UUID)
	assert.Equal(t, "user-1", session.UserID)
	assert.Empty(t, session.Questions)

	fetched, err := service.GetSession(ctx, session.UUID)
	require.NoError(t, err)
	assert.Equal(t, session.UUID, fetched.UUID)
	assert.Equal(t, "React, CSS", fetched.TopicsToFocus)
}

func TestCreateSessionValidation(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryStore())

	tests := []struct {
		name string
		req  *CreateSessionRequest
	}{
		{"missing user", &CreateSessionRequest{Role: "Dev", Experience: "1"}},
		{"missing role", &CreateSessionRequest{UserID: "u", Experience: "1"}},
		{"missing experience", &CreateSessionRequest{UserID: "u", Role: "Dev"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := service.CreateSession(ctx, tt.req)
			assert.Nil(t, session)
			assert.True(t, interview.IsValidation(err))
		})
	}
}

func TestGetSessionNotFound(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryStore())

	session, err := service.GetSession(ctx, uuid.New())
	assert.Nil(t, session)
	assert.True(t, interview.IsNotFound(err))
}

func TestListSessionsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	service := NewService(store)

	// Insert directly so creation times are distinct and controlled
	older := &Session{
		UUID:      uuid.New(),
		UserID:    "user-1",
		Role:      "Dev",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &Session{
		UUID:      uuid.New(),
		UserID:    "user-1",
		Role:      "Dev",
		CreatedAt: time.Now(),
	}
	other := &Session{
		UUID:      uuid.New(),
		UserID:    "user-2",
		Role:      "Dev",
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.CreateSession(ctx, older))
	require.NoError(t, store.CreateSession(ctx, newer))
	require.NoError(t, store.CreateSession(ctx, other))

	result, err := service.ListSessions(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, newer.UUID, result[0].UUID)
	assert.Equal(t, older.UUID, result[1].UUID)
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryStore())

	session, err := service.CreateSession(ctx, &CreateSessionRequest{
		UserID:     "user-1",
		Role:       "Dev",
		Experience: "1",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteSession(ctx, session.UUID))

	_, err = service.GetSession(ctx, session.UUID)
	assert.True(t, interview.IsNotFound(err))
}

func TestDeleteSessionNotFound(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryStore())

	err := service.DeleteSession(ctx, uuid.New())
	assert.True(t, interview.IsNotFound(err))
}
