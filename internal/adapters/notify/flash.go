// Package notify provides the flash message channel: messages queue up until
// the next page view drains them.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

// Compile-time check that Flash implements ports.Notifier.
var _ ports.Notifier = (*Flash)(nil)

// ErrEmptyMessage is returned for a message without text.
var ErrEmptyMessage = errors.New("notify: empty message")

// Flash is a bounded in-memory message queue. When full, the oldest message
// is dropped. Every accepted message is also logged.
type Flash struct {
	mu       sync.Mutex
	messages []ports.Message
	capacity int
	dropped  int
	logger   *slog.Logger
}

// NewFlash creates a queue holding at most capacity messages (minimum 1).
// A nil logger discards output.
func NewFlash(capacity int, logger *slog.Logger) *Flash {
	if capacity < 1 {
		capacity = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Flash{
		messages: make([]ports.Message, 0, capacity),
		capacity: capacity,
		logger:   logger,
	}
}

// Notify implements ports.Notifier.
func (f *Flash) Notify(ctx context.Context, msg ports.Message) error {
	if msg.Text == "" {
		return ErrEmptyMessage
	}
	if msg.Level == "" {
		msg.Level = ports.LevelStatus
	}

	f.mu.Lock()
	if len(f.messages) == f.capacity {
		f.messages = append(f.messages[:0], f.messages[1:]...)
		f.dropped++
	}
	f.messages = append(f.messages, msg)
	f.mu.Unlock()

	f.logger.Log(ctx, levelFor(msg.Level), "flash message",
		slog.String("level", string(msg.Level)),
		slog.String("text", msg.Text),
	)
	return nil
}

// Drain returns the pending messages oldest first and empties the queue.
func (f *Flash) Drain() []ports.Message {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]ports.Message, len(f.messages))
	copy(out, f.messages)
	f.messages = f.messages[:0]
	return out
}

// Dropped reports how many messages were discarded because the queue was full.
func (f *Flash) Dropped() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dropped
}

func levelFor(l ports.MessageLevel) slog.Level {
	switch l {
	case ports.LevelError:
		return slog.LevelError
	case ports.LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
