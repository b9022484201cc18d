package events

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/clubdesk/clubdesk/go/internal/events/db"
	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/clubdesk/clubdesk/go/internal/sqlutil"
	"github.com/google/uuid"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateEvent(ctx context.Context, arg db.CreateEventParams) (db.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (db.Event, error)
	ListFutureEventsByGroup(ctx context.Context, arg db.ListFutureEventsByGroupParams) ([]db.Event, error)
	ListEventsBySeries(ctx context.Context, seriesID uuid.NullUUID) ([]db.Event, error)
	CreateEventSeries(ctx context.Context, arg db.CreateEventSeriesParams) (db.EventSeries, error)
	GetEventSeries(ctx context.Context, id uuid.UUID) (db.EventSeries, error)
}

// Repository implements event and event series data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new events repository
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

// CreateEvent persists one concrete event. Duration has already been
// validated and clamped by the caller.
func (r *Repository) CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	event, err := r.queries.CreateEvent(ctx, db.CreateEventParams{
		GroupID:         req.GroupID,
		OrganizationID:  req.OrganizationID,
		Type:            db.EventType(req.Type),
		Title:           sqlutil.ToSqlString(req.Title),
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		DurationMinutes: int32(req.DurationMinutes),
		Location:        sqlutil.ToSqlString(req.Location),
		Note:            sqlutil.ToSqlString(req.Note),
		SeriesID:        sqlutil.ToNullUUID(req.SeriesID),
		Status:          db.EventStatusSCHEDULED,
		CreatedBy:       req.CreatedBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return r.dbEventToModel(event), nil
}

// GetEvent retrieves an event by ID
func (r *Repository) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := r.queries.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return r.dbEventToModel(event), nil
}

// ListFutureEventsByGroup lists the scheduled events of a group that start
// strictly after the given instant, ordered by start time.
func (r *Repository) ListFutureEventsByGroup(ctx context.Context, groupID uuid.UUID, after time.Time) ([]models.Event, error) {
	rows, err := r.queries.ListFutureEventsByGroup(ctx, db.ListFutureEventsByGroupParams{
		GroupID: groupID,
		After:   after,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list future events: %w", err)
	}
	out := make([]models.Event, len(rows))
	for i, e := range rows {
		out[i] = *r.dbEventToModel(e)
	}
	return out, nil
}

// ListEventsBySeries lists every event generated from a series
func (r *Repository) ListEventsBySeries(ctx context.Context, seriesID uuid.UUID) ([]models.Event, error) {
	rows, err := r.queries.ListEventsBySeries(ctx, uuid.NullUUID{UUID: seriesID, Valid: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list events by series: %w", err)
	}
	out := make([]models.Event, len(rows))
	for i, e := range rows {
		out[i] = *r.dbEventToModel(e)
	}
	return out, nil
}

// CreateEventSeries persists a weekly recurrence rule
func (r *Repository) CreateEventSeries(ctx context.Context, req CreateEventSeriesRequest) (*models.EventSeries, error) {
	series, err := r.queries.CreateEventSeries(ctx, db.CreateEventSeriesParams{
		GroupID:         req.GroupID,
		OrganizationID:  req.OrganizationID,
		Type:            db.EventType(req.Type),
		Title:           sqlutil.ToSqlString(req.Title),
		Location:        sqlutil.ToSqlString(req.Location),
		Note:            sqlutil.ToSqlString(req.Note),
		DurationMinutes: int32(req.DurationMinutes),
		Weekday:         int32(req.Weekday),
		Hour:            int32(req.Hour),
		Minute:          int32(req.Minute),
		IntervalWeeks:   int32(req.IntervalWeeks),
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		CreatedBy:       req.CreatedBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event series: %w", err)
	}
	return r.dbSeriesToModel(series), nil
}

// GetEventSeries retrieves a series by ID
func (r *Repository) GetEventSeries(ctx context.Context, id uuid.UUID) (*models.EventSeries, error) {
	series, err := r.queries.GetEventSeries(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event series: %w", err)
	}
	return r.dbSeriesToModel(series), nil
}

func (r *Repository) dbEventToModel(e db.Event) *models.Event {
	return &models.Event{
		ID:              e.ID,
		GroupID:         e.GroupID,
		OrganizationID:  e.OrganizationID,
		Type:            models.EventType(e.Type),
		Title:           sqlutil.FromSqlStringPtr(e.Title),
		StartsAt:        e.StartsAt,
		EndsAt:          e.EndsAt,
		DurationMinutes: int(e.DurationMinutes),
		Location:        sqlutil.FromSqlStringPtr(e.Location),
		Note:            sqlutil.FromSqlStringPtr(e.Note),
		SeriesID:        sqlutil.FromNullUUID(e.SeriesID),
		Status:          models.EventStatus(e.Status),
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
	}
}

func (r *Repository) dbSeriesToModel(s db.EventSeries) *models.EventSeries {
	return &models.EventSeries{
		ID:              s.ID,
		GroupID:         s.GroupID,
		OrganizationID:  s.OrganizationID,
		Type:            models.EventType(s.Type),
		Title:           sqlutil.FromSqlStringPtr(s.Title),
		Location:        sqlutil.FromSqlStringPtr(s.Location),
		Note:            sqlutil.FromSqlStringPtr(s.Note),
		DurationMinutes: int(s.DurationMinutes),
		Weekday:         int(s.Weekday),
		Hour:            int(s.Hour),
		Minute:          int(s.Minute),
		IntervalWeeks:   int(s.IntervalWeeks),
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		Active:          s.Active,
		CreatedBy:       s.CreatedBy,
		CreatedAt:       s.CreatedAt,
	}
}
