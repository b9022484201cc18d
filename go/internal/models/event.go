package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies a calendar event
type EventType string

const (
	EventTypeTraining  EventType = "TRAINING"
	EventTypeInterclub EventType = "INTERCLUB"
	EventTypeCamp      EventType = "CAMP"
	EventTypeSession   EventType = "SESSION"
	EventTypeEvent     EventType = "EVENT"
)

// EventStatus is the lifecycle state of an event
type EventStatus string

const (
	EventStatusScheduled EventStatus = "SCHEDULED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

const (
	// MinEventDurationMinutes and MaxEventDurationMinutes bound the inclusive
	// clamp applied to every event duration.
	MinEventDurationMinutes = 1
	MaxEventDurationMinutes = 240
)

// ClampDuration forces a duration in minutes into the allowed range.
func ClampDuration(minutes int) int {
	if minutes < MinEventDurationMinutes {
		return MinEventDurationMinutes
	}
	if minutes > MaxEventDurationMinutes {
		return MaxEventDurationMinutes
	}
	return minutes
}

// Event is one concrete calendar instance belonging to a single group.
// EndsAt is strictly after StartsAt. Events are created by the scheduling
// orchestrator and never mutated by the engine afterwards.
type Event struct {
	ID              uuid.UUID   `json:"id"`
	GroupID         uuid.UUID   `json:"group_id"`
	OrganizationID  uuid.UUID   `json:"organization_id"`
	Type            EventType   `json:"type"`
	Title           *string     `json:"title,omitempty"`
	StartsAt        time.Time   `json:"starts_at"`
	EndsAt          time.Time   `json:"ends_at"`
	DurationMinutes int         `json:"duration_minutes"`
	Location        *string     `json:"location,omitempty"`
	Note            *string     `json:"note,omitempty"`
	SeriesID        *uuid.UUID  `json:"series_id,omitempty"`
	Status          EventStatus `json:"status"`
	CreatedBy       uuid.UUID   `json:"created_by"`
	CreatedAt       time.Time   `json:"created_at"`
}

// EventSeries is a weekly recurrence rule that produced many events.
// Weekday follows time.Weekday numbering (0=Sunday .. 6=Saturday).
type EventSeries struct {
	ID              uuid.UUID `json:"id"`
	GroupID         uuid.UUID `json:"group_id"`
	OrganizationID  uuid.UUID `json:"organization_id"`
	Type            EventType `json:"type"`
	Title           *string   `json:"title,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Note            *string   `json:"note,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Weekday         int       `json:"weekday"`
	Hour            int       `json:"hour"`
	Minute          int       `json:"minute"`
	IntervalWeeks   int       `json:"interval_weeks"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Active          bool      `json:"active"`
	CreatedBy       uuid.UUID `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}
