package questions

import (
	"time"

	"github.com/google/uuid"
)

// Question represents one question/answer pair belonging to exactly one
// session, with a user-settable pin flag and note
type Question struct {
	UUID      uuid.UUID `json:"uuid"`
	SessionID uuid.UUID `json:"session_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	IsPinned  bool      `json:"is_pinned"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuestionPair is one question/answer input to AddQuestions
type QuestionPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AddQuestionsRequest represents a request to add questions to a session
type AddQuestionsRequest struct {
	SessionID string         `json:"sessionId"`
	Questions []QuestionPair `json:"questions"`
}
