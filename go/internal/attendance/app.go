package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
)

// AttendanceRepository defines what the app layer needs from the repository
type AttendanceRepository interface {
	UpsertAttendee(ctx context.Context, eventID, userID uuid.UUID, status models.AttendanceStatus) error
	UpsertCoachAssignment(ctx context.Context, eventID, coachID uuid.UUID) error
	ListAttendeesByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Attendee, error)
	ListCoachAssignmentsByEvent(ctx context.Context, eventID uuid.UUID) ([]models.CoachAssignment, error)
	DeleteFutureAttendees(ctx context.Context, groupID, userID uuid.UUID, after time.Time) error
	DeleteFutureCoachAssignments(ctx context.Context, groupID, coachID uuid.UUID, after time.Time) error
}

// App handles attendance business logic
type App struct {
	repo AttendanceRepository
}

// NewApp creates a new attendance App
func NewApp(repo AttendanceRepository) *App {
	return &App{
		repo: repo,
	}
}

// SyncEventAudience writes the resolved audience of one event into the
// attendance tables. Every write is an insert-if-absent, so calling this
// again with the same audience is a no-op and existing rows keep whatever
// status they were manually given.
func (a *App) SyncEventAudience(ctx context.Context, eventID uuid.UUID, attendeeIDs, coachIDs []uuid.UUID) error {
	for _, userID := range attendeeIDs {
		if err := a.repo.UpsertAttendee(ctx, eventID, userID, models.AttendanceStatusPresent); err != nil {
			return fmt.Errorf("failed to sync attendee %s on event %s: %w", userID, eventID, err)
		}
	}
	for _, coachID := range coachIDs {
		if err := a.repo.UpsertCoachAssignment(ctx, eventID, coachID); err != nil {
			return fmt.Errorf("failed to sync coach %s on event %s: %w", coachID, eventID, err)
		}
	}
	return nil
}

// AttendeesOfEvent lists the attendance rows of an event
func (a *App) AttendeesOfEvent(ctx context.Context, eventID uuid.UUID) ([]models.Attendee, error) {
	attendees, err := a.repo.ListAttendeesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees: %w", err)
	}
	return attendees, nil
}

// CoachesOfEvent lists the staffing rows of an event
func (a *App) CoachesOfEvent(ctx context.Context, eventID uuid.UUID) ([]models.CoachAssignment, error) {
	coaches, err := a.repo.ListCoachAssignmentsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list coach assignments: %w", err)
	}
	return coaches, nil
}
