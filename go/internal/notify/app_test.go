package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutboxRepo struct {
	inserted  []Notification
	insertErr error
}

func (f *fakeOutboxRepo) Insert(ctx context.Context, n Notification) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, n)
	return nil
}

func (f *fakeOutboxRepo) FetchUnsent(ctx context.Context, limit int32) ([]Notification, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, ids []uuid.UUID) error {
	return nil
}

func TestNotify_QueuesMessage(t *testing.T) {
	repo := &fakeOutboxRepo{}
	app := NewApp(repo)
	recipients := []uuid.UUID{uuid.New(), uuid.New()}

	app.Notify(context.Background(), recipients, "New training", "Wednesday 16:00", "/events/abc")

	require.Len(t, repo.inserted, 1)
	n := repo.inserted[0]
	assert.Equal(t, recipients, n.Recipients)
	assert.Equal(t, "New training", n.Title)
	require.NotNil(t, n.Link)
	assert.Equal(t, "/events/abc", *n.Link)
	assert.NotEqual(t, uuid.Nil, n.ID)
}

func TestNotify_SkipsEmptyRecipients(t *testing.T) {
	repo := &fakeOutboxRepo{}
	app := NewApp(repo)

	app.Notify(context.Background(), nil, "New training", "Wednesday 16:00", "")

	assert.Empty(t, repo.inserted)
}

func TestNotify_SwallowsInsertFailures(t *testing.T) {
	// The sink is fire-and-forget: a broken outbox must not panic or
	// propagate into the scheduling operation.
	repo := &fakeOutboxRepo{insertErr: errors.New("outbox unavailable")}
	app := NewApp(repo)

	app.Notify(context.Background(), []uuid.UUID{uuid.New()}, "New training", "body", "")

	assert.Empty(t, repo.inserted)
}
