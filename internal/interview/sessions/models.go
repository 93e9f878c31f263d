package sessions

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one interview-prep session: a role/experience/topics
// profile owning an ordered list of question IDs. Question order in the
// Questions slice is display order.
type Session struct {
	UUID          uuid.UUID   `json:"uuid"`
	UserID        string      `json:"user_id"`
	Role          string      `json:"role"`
	Experience    string      `json:"experience"`
	TopicsToFocus string      `json:"topics_to_focus"`
	Description   string      `json:"description,omitempty"`
	Questions     []uuid.UUID `json:"questions"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// CreateSessionRequest represents a request to create a new session
type CreateSessionRequest struct {
	UserID        string `json:"user_id"`
	Role          string `json:"role"`
	Experience    string `json:"experience"`
	TopicsToFocus string `json:"topics_to_focus"`
	Description   string `json:"description,omitempty"`
}
