package ports

import (
	"context"
	"time"
)

// MessageLevel classifies a user-facing message.
type MessageLevel string

// Message levels.
const (
	LevelStatus  MessageLevel = "status"
	LevelWarning MessageLevel = "warning"
	LevelError   MessageLevel = "error"
)

// Message is a formatted notification for user display.
type Message struct {
	Level     MessageLevel
	Text      string
	CreatedAt time.Time
}

// Notifier delivers user-facing messages to the caller's notification channel.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}
