package events

import (
	"time"

	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
)

// CreateEventRequest represents one concrete event to persist
type CreateEventRequest struct {
	GroupID         uuid.UUID        `json:"group_id" validate:"required"`
	OrganizationID  uuid.UUID        `json:"organization_id" validate:"required"`
	Type            models.EventType `json:"type" validate:"required"`
	Title           *string          `json:"title,omitempty"`
	StartsAt        time.Time        `json:"starts_at" validate:"required"`
	EndsAt          time.Time        `json:"ends_at" validate:"required"`
	DurationMinutes int              `json:"duration_minutes"`
	Location        *string          `json:"location,omitempty"`
	Note            *string          `json:"note,omitempty"`
	SeriesID        *uuid.UUID       `json:"series_id,omitempty"`
	CreatedBy       uuid.UUID        `json:"created_by" validate:"required"`
}

// CreateEventSeriesRequest represents a weekly recurrence rule to persist
type CreateEventSeriesRequest struct {
	GroupID         uuid.UUID        `json:"group_id" validate:"required"`
	OrganizationID  uuid.UUID        `json:"organization_id" validate:"required"`
	Type            models.EventType `json:"type" validate:"required"`
	Title           *string          `json:"title,omitempty"`
	Location        *string          `json:"location,omitempty"`
	Note            *string          `json:"note,omitempty"`
	DurationMinutes int              `json:"duration_minutes"`
	Weekday         int              `json:"weekday" validate:"min=0,max=6"`
	Hour            int              `json:"hour" validate:"min=0,max=23"`
	Minute          int              `json:"minute" validate:"min=0,max=59"`
	IntervalWeeks   int              `json:"interval_weeks" validate:"min=1"`
	StartDate       time.Time        `json:"start_date" validate:"required"`
	EndDate         time.Time        `json:"end_date" validate:"required"`
	CreatedBy       uuid.UUID        `json:"created_by" validate:"required"`
}
