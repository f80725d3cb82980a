package domain

import "time"

// Message roles as reported by the backend.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// HistoryLimit is the number of messages the backend retains per session.
// The client never trims locally; the bound is documented for callers that
// size buffers around the transcript.
const HistoryLimit = 50

// Message represents a single chat turn.
type Message struct {
	Role      string    `json:"role"` // user, agent
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	// IsError marks agent turns that surface a failure instead of an
	// answer. Error turns still occupy a slot in the transcript.
	IsError bool `json:"is_error,omitempty"`
}

// NewUserMessage returns a user turn stamped with the current time.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content, Timestamp: time.Now()}
}

// NewAgentMessage returns an agent turn stamped with the current time.
func NewAgentMessage(content string) Message {
	return Message{Role: RoleAgent, Content: content, Timestamp: time.Now()}
}

// NewErrorMessage returns an error-flagged agent turn.
func NewErrorMessage(content string) Message {
	m := NewAgentMessage(content)
	m.IsError = true
	return m
}
