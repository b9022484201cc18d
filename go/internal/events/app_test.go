package events

import (
	"context"
	"testing"
	"time"

	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventsRepo struct {
	events []*models.Event
	series []*models.EventSeries
}

func (f *fakeEventsRepo) CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		ID:              uuid.New(),
		GroupID:         req.GroupID,
		OrganizationID:  req.OrganizationID,
		Type:            req.Type,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		DurationMinutes: req.DurationMinutes,
		SeriesID:        req.SeriesID,
		Status:          models.EventStatusScheduled,
		CreatedBy:       req.CreatedBy,
	}
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeEventsRepo) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, context.Canceled
}

func (f *fakeEventsRepo) ListFutureEventsByGroup(ctx context.Context, groupID uuid.UUID, after time.Time) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		if e.GroupID == groupID && e.StartsAt.After(after) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventsRepo) ListEventsBySeries(ctx context.Context, seriesID uuid.UUID) ([]models.Event, error) {
	return nil, nil
}

func (f *fakeEventsRepo) CreateEventSeries(ctx context.Context, req CreateEventSeriesRequest) (*models.EventSeries, error) {
	return nil, nil
}

func (f *fakeEventsRepo) GetEventSeries(ctx context.Context, id uuid.UUID) (*models.EventSeries, error) {
	return nil, nil
}

func TestCreateEvent_RecomputesEndFromClampedDuration(t *testing.T) {
	repo := &fakeEventsRepo{}
	app := NewApp(repo)
	startsAt := time.Date(2024, time.March, 4, 18, 0, 0, 0, time.UTC)

	event, err := app.CreateEvent(context.Background(), CreateEventRequest{
		GroupID:         uuid.New(),
		OrganizationID:  uuid.New(),
		Type:            models.EventTypeTraining,
		StartsAt:        startsAt,
		DurationMinutes: 1000,
		CreatedBy:       uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.MaxEventDurationMinutes, event.DurationMinutes)
	assert.Equal(t, startsAt.Add(240*time.Minute), event.EndsAt)
	assert.True(t, event.EndsAt.After(event.StartsAt))
}

func TestCreateEvent_ZeroDurationGetsMinimum(t *testing.T) {
	app := NewApp(&fakeEventsRepo{})
	startsAt := time.Date(2024, time.March, 4, 18, 0, 0, 0, time.UTC)

	event, err := app.CreateEvent(context.Background(), CreateEventRequest{
		GroupID:        uuid.New(),
		OrganizationID: uuid.New(),
		Type:           models.EventTypeSession,
		StartsAt:       startsAt,
		CreatedBy:      uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.MinEventDurationMinutes, event.DurationMinutes)
	assert.True(t, event.EndsAt.After(event.StartsAt))
}

func TestCreateEvent_Validation(t *testing.T) {
	app := NewApp(&fakeEventsRepo{})

	_, err := app.CreateEvent(context.Background(), CreateEventRequest{
		OrganizationID: uuid.New(),
		StartsAt:       time.Now(),
	})
	assert.Error(t, err)

	_, err = app.CreateEvent(context.Background(), CreateEventRequest{
		GroupID:        uuid.New(),
		OrganizationID: uuid.New(),
	})
	assert.Error(t, err)
}
