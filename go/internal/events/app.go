package events

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
)

// EventsRepository defines what the app layer needs from the repository
type EventsRepository interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListFutureEventsByGroup(ctx context.Context, groupID uuid.UUID, after time.Time) ([]models.Event, error)
	ListEventsBySeries(ctx context.Context, seriesID uuid.UUID) ([]models.Event, error)
	CreateEventSeries(ctx context.Context, req CreateEventSeriesRequest) (*models.EventSeries, error)
	GetEventSeries(ctx context.Context, id uuid.UUID) (*models.EventSeries, error)
}

// App handles event business logic
type App struct {
	repo EventsRepository
}

// NewApp creates a new events App
func NewApp(repo EventsRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateEvent validates and persists a single event. The duration is clamped
// into the allowed range and the end time is recomputed from it, so the
// stored row always satisfies ends_at > starts_at.
func (a *App) CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	if req.GroupID == uuid.Nil {
		return nil, fmt.Errorf("validation failed: group_id is required")
	}
	if req.OrganizationID == uuid.Nil {
		return nil, fmt.Errorf("validation failed: organization_id is required")
	}
	if req.StartsAt.IsZero() {
		return nil, fmt.Errorf("validation failed: starts_at is required")
	}

	req.DurationMinutes = models.ClampDuration(req.DurationMinutes)
	req.EndsAt = req.StartsAt.Add(time.Duration(req.DurationMinutes) * time.Minute)

	event, err := a.repo.CreateEvent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	log.Printf("Created event %s for group %s at %s", event.ID, event.GroupID, event.StartsAt.Format(time.RFC3339))
	return event, nil
}

// GetEvent retrieves an event by ID
func (a *App) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := a.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// ListFutureEvents lists the scheduled events of a group starting strictly
// after the given instant
func (a *App) ListFutureEvents(ctx context.Context, groupID uuid.UUID, after time.Time) ([]models.Event, error) {
	events, err := a.repo.ListFutureEventsByGroup(ctx, groupID, after)
	if err != nil {
		return nil, fmt.Errorf("failed to list future events: %w", err)
	}
	return events, nil
}

// ListEventsBySeries lists every event generated from a series
func (a *App) ListEventsBySeries(ctx context.Context, seriesID uuid.UUID) ([]models.Event, error) {
	events, err := a.repo.ListEventsBySeries(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by series: %w", err)
	}
	return events, nil
}

// GetEventSeries retrieves a series by ID
func (a *App) GetEventSeries(ctx context.Context, id uuid.UUID) (*models.EventSeries, error) {
	series, err := a.repo.GetEventSeries(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event series: %w", err)
	}
	return series, nil
}
