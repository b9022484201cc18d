package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// OutboxRepository defines what the app layer needs from the repository
type OutboxRepository interface {
	Insert(ctx context.Context, n Notification) error
	FetchUnsent(ctx context.Context, limit int32) ([]Notification, error)
	MarkSent(ctx context.Context, ids []uuid.UUID) error
}

// App queues notifications. It satisfies the orchestrator's fire-and-forget
// contract: enqueue failures are logged and swallowed, never surfaced to
// the scheduling operation that triggered them.
type App struct {
	repo OutboxRepository
}

// NewApp creates a new notify App
func NewApp(repo OutboxRepository) *App {
	return &App{
		repo: repo,
	}
}

// Notify queues a push message for the given recipients
func (a *App) Notify(ctx context.Context, recipients []uuid.UUID, title, body, link string) {
	if len(recipients) == 0 {
		return
	}
	n := Notification{
		ID:         uuid.New(),
		Recipients: recipients,
		Title:      title,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}
	if link != "" {
		n.Link = &link
	}
	if err := a.repo.Insert(ctx, n); err != nil {
		log.Error().Err(err).
			Str("title", title).
			Int("recipients", len(recipients)).
			Msg("failed to enqueue notification")
	}
}
