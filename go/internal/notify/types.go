package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Notification is one push message queued in the outbox. Recipients are
// user ids; fan-out to devices happens downstream of the message bus.
type Notification struct {
	ID         uuid.UUID       `json:"id"`
	Recipients []uuid.UUID     `json:"recipients"`
	Title      string          `json:"title"`
	Body       string          `json:"body"`
	Link       *string         `json:"link,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	SentAt     *time.Time      `json:"sent_at,omitempty"`
}

// Publisher delivers a claimed notification to the message bus
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}
