package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one chat turn. Only user messages carry a severity; it is
// assigned once, when the message is created.
type Message struct {
	ID       string      `json:"id"`
	Content  string      `json:"content"`
	Sender   Sender      `json:"sender"`
	Severity *risk.Level `json:"severity,omitempty"`
	SentAt   time.Time   `json:"sentAt"`
}

// NewUserMessage builds a user message and classifies it.
func NewUserMessage(content string, now time.Time) Message {
	sev := DetectSeverity(content)
	return Message{
		ID:       uuid.NewString(),
		Content:  content,
		Sender:   SenderUser,
		Severity: &sev,
		SentAt:   now,
	}
}

// NewAssistantMessage builds an assistant reply. It never carries a severity.
func NewAssistantMessage(content string, now time.Time) Message {
	return Message{
		ID:      uuid.NewString(),
		Content: content,
		Sender:  SenderAssistant,
		SentAt:  now,
	}
}
