package questions

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
	"github.com/SaiPrasanth27/interview-prep/internal/interview/sessions"
)

func newTestService(t *testing.T) (*QuestionService, sessions.SessionStore, *sessions.Session) {
	t.Helper()

	sessionStore := sessions.NewInMemoryStore()
	sessionService := sessions.NewService(sessionStore)

	session, err := sessionService.CreateSession(context.Background(), &sessions.CreateSessionRequest{
		UserID:        "user-1",
		Role:          "Backend Developer",
		Experience:    "3",
		TopicsToFocus: "Go, PostgreSQL",
	})
	require.NoError(t, err)

	return NewService(NewInMemoryStore(), sessionStore), sessionStore, session
}

func TestAddQuestions(t *testing.T) {
	ctx := context.Background()
	service, sessionStore, session := newTestService(t)

	created, err := service.AddQuestions(ctx, session.UUID, []QuestionPair{
		{Question: "What is a goroutine?", Answer: "A lightweight thread."},
		{Question: "Explain channels.", Answer: "Typed conduits between goroutines."},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	// Created records come back in input order
	assert.Equal(t, "What is a goroutine?", created[0].Question)
	assert.Equal(t, "Explain channels.", created[1].Question)
	for _, question := range created {
		assert.Equal(t, session.UUID, question.SessionID)
		assert.False(t, question.IsPinned)
		assert.Empty(t, question.Note)
	}

	// Session question list grew by exactly two, appended at the end
	updated, err := sessionStore.GetSession(ctx, session.UUID)
	require.NoError(t, err)
	require.Len(t, updated.Questions, 2)
	assert.Equal(t, created[0].UUID, updated.Questions[0])
	assert.Equal(t, created[1].UUID, updated.Questions[1])
}

func TestAddQuestionsPreservesPriorOrder(t *testing.T) {
	ctx := context.Background()
	service, sessionStore, session := newTestService(t)

	first, err := service.AddQuestions(ctx, session.UUID, []QuestionPair{
		{Question: "Q1", Answer: "A1"},
	})
	require.NoError(t, err)

	second, err := service.AddQuestions(ctx, session.UUID, []QuestionPair{
		{Question: "Q2", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
	})
	require.NoError(t, err)

	updated, err := sessionStore.GetSession(ctx, session.UUID)
	require.NoError(t, err)
	require.Len(t, updated.Questions, 3)
	assert.Equal(t, first[0].UUID, updated.Questions[0])
	assert.Equal(t, second[0].UUID, updated.Questions[1])
	assert.Equal(t, second[1].UUID, updated.Questions[2])
}

func TestAddQuestionsEmptyInput(t *testing.T) {
	ctx := context.Background()
	service, _, session := newTestService(t)

	created, err := service.AddQuestions(ctx, session.UUID, []QuestionPair{})
	assert.Nil(t, created)
	assert.True(t, interview.IsValidation(err))
}

func TestAddQuestionsUnknownSession(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)

	created, err := service.AddQuestions(ctx, uuid.New(), []QuestionPair{
		{Question: "Q", Answer: "A"},
	})
	assert.Nil(t, created)
	assert.True(t, interview.IsNotFound(err))
}

func TestTogglePinRoundTrip(t *testing.T) {
	ctx := context.Background()
	service, _, session := newTestService(t)

	created, err := service.AddQuestions(ctx, session.UUID, []QuestionPair{
		{Question: "Q", Answer: "A"},
	})
	require.NoError(t, err)

	pinned, err := service.TogglePin(ctx, created[0].UUID)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	unpinned, err := service.TogglePin(ctx, created[0].UUID)
	require.NoError(t, err)
	assert.False(t, unpinned.IsPinned)
}

func TestTogglePinUnknownQuestion(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)

	question, err := service.TogglePin(ctx, uuid.New())
	assert.Nil(t, question)
	assert.True(t, interview.IsNotFound(err))
}

func TestSetNote(t *testing.T) {
	ctx := context.Background()
	service, _, session := newTestService(t)

	created, err := service.AddQuestions(ctx, session.UUID, []QuestionPair{
		{Question: "Q", Answer: "A"},
	})
	require.NoError(t, err)

	noted, err := service.SetNote(ctx, created[0].UUID, "revisit before onsite")
	require.NoError(t, err)
	assert.Equal(t, "revisit before onsite", noted.Note)

	// Empty note is allowed and overwrites the prior value
	cleared, err := service.SetNote(ctx, created[0].UUID, "")
	require.NoError(t, err)
	assert.Equal(t, "", cleared.Note)
}

func TestSetNoteUnknownQuestion(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)

	question, err := service.SetNote(ctx, uuid.New(), "x")
	assert.Nil(t, question)
	assert.True(t, interview.IsNotFound(err))
}

func TestListBySessionOrder(t *testing.T) {
	ctx := context.Background()
	service, _, session := newTestService(t)

	created, err := service.AddQuestions(ctx, session.UUID, []QuestionPair{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
	})
	require.NoError(t, err)

	listed, err := service.ListBySession(ctx, session.UUID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i := range created {
		assert.Equal(t, created[i].UUID, listed[i].UUID)
	}
}

func TestDeleteBySession(t *testing.T) {
	ctx := context.Background()
	service, _, session := newTestService(t)

	_, err := service.AddQuestions(ctx, session.UUID, []QuestionPair{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteBySession(ctx, session.UUID))

	listed, err := service.ListBySession(ctx, session.UUID)
	require.NoError(t, err)
	// The session still references the IDs; the records themselves are gone
	assert.Empty(t, listed)
}

// sessionStoreWithFailingUpdate wraps a SessionStore and fails every
// UpdateSession call
type sessionStoreWithFailingUpdate struct {
	sessions.SessionStore
}

func (s *sessionStoreWithFailingUpdate) UpdateSession(ctx context.Context, session *sessions.Session) error {
	return interview.NewStorageError("update", "sessions", errors.New("connection reset"))
}

func TestAddQuestionsSessionUpdateFailureLeavesOrphans(t *testing.T) {
	ctx := context.Background()

	sessionStore := sessions.NewInMemoryStore()
	session, err := sessions.NewService(sessionStore).CreateSession(ctx, &sessions.CreateSessionRequest{
		UserID:     "user-1",
		Role:       "Backend Developer",
		Experience: "3",
	})
	require.NoError(t, err)

	questionStore := NewInMemoryStore()
	service := NewService(questionStore, &sessionStoreWithFailingUpdate{SessionStore: sessionStore})

	created, err := service.AddQuestions(ctx, session.UUID, []QuestionPair{
		{Question: "Q", Answer: "A"},
	})
	assert.Nil(t, created)
	require.Error(t, err)

	// The batch insert already happened: the question exists but the session
	// never picked up its ID
	stored, err := questionStore.ListQuestionsBySession(ctx, session.UUID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	unchanged, err := sessionStore.GetSession(ctx, session.UUID)
	require.NoError(t, err)
	assert.Empty(t, unchanged.Questions)
}
