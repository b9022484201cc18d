package notify

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clubdesk/clubdesk/go/internal/notify/db"
	"github.com/clubdesk/clubdesk/go/internal/sqlutil"
	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	InsertNotification(ctx context.Context, arg db.InsertNotificationParams) error
	FetchUnsentNotifications(ctx context.Context, limit int32) ([]db.NotificationOutbox, error)
	MarkNotificationsSent(ctx context.Context, ids []uuid.UUID) error
}

// Repository implements outbox data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new notify repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// WithTx returns a repository bound to the given transaction
func (r *Repository) WithTx(tx *sql.Tx) *Repository {
	if q, ok := r.queries.(*db.Queries); ok {
		return &Repository{queries: q.WithTx(tx)}
	}
	return r
}

// Insert queues a notification for delivery
func (r *Repository) Insert(ctx context.Context, n Notification) error {
	data := pqtype.NullRawMessage{}
	if len(n.Data) > 0 {
		data = pqtype.NullRawMessage{RawMessage: n.Data, Valid: true}
	}
	if err := r.queries.InsertNotification(ctx, db.InsertNotificationParams{
		ID:         n.ID,
		Recipients: n.Recipients,
		Title:      n.Title,
		Body:       n.Body,
		Link:       sqlutil.ToSqlString(n.Link),
		Data:       data,
	}); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// FetchUnsent claims up to limit undelivered notifications. Rows are locked
// with SKIP LOCKED so concurrent workers never claim the same batch.
func (r *Repository) FetchUnsent(ctx context.Context, limit int32) ([]Notification, error) {
	rows, err := r.queries.FetchUnsentNotifications(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent notifications: %w", err)
	}
	out := make([]Notification, len(rows))
	for i, n := range rows {
		out[i] = Notification{
			ID:         n.ID,
			Recipients: n.Recipients,
			Title:      n.Title,
			Body:       n.Body,
			Link:       sqlutil.FromSqlStringPtr(n.Link),
			CreatedAt:  n.CreatedAt,
			SentAt:     sqlutil.FromSqlTime(n.SentAt),
		}
		if n.Data.Valid {
			out[i].Data = n.Data.RawMessage
		}
	}
	return out, nil
}

// MarkSent stamps the given notifications as delivered
func (r *Repository) MarkSent(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.queries.MarkNotificationsSent(ctx, ids); err != nil {
		return fmt.Errorf("failed to mark notifications sent: %w", err)
	}
	return nil
}
