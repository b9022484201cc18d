package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/clubdesk/clubdesk/go/internal/attendance/db"
	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	UpsertAttendee(ctx context.Context, arg db.UpsertAttendeeParams) error
	UpsertCoachAssignment(ctx context.Context, arg db.UpsertCoachAssignmentParams) error
	ListAttendeesByEvent(ctx context.Context, eventID uuid.UUID) ([]db.EventAttendee, error)
	ListCoachAssignmentsByEvent(ctx context.Context, eventID uuid.UUID) ([]db.EventCoach, error)
	DeleteFutureAttendeesByGroupAndUser(ctx context.Context, arg db.DeleteFutureAttendeesByGroupAndUserParams) error
	DeleteFutureCoachAssignmentsByGroupAndUser(ctx context.Context, arg db.DeleteFutureCoachAssignmentsByGroupAndUserParams) error
}

// Repository implements attendance data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new attendance repository
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

// UpsertAttendee makes sure an attendance row exists for (event, user).
// An existing row keeps its status untouched, so manual attendance edits
// survive repeated synchronization.
func (r *Repository) UpsertAttendee(ctx context.Context, eventID, userID uuid.UUID, status models.AttendanceStatus) error {
	if err := r.queries.UpsertAttendee(ctx, db.UpsertAttendeeParams{
		EventID: eventID,
		UserID:  userID,
		Status:  db.AttendanceStatus(status),
	}); err != nil {
		return fmt.Errorf("failed to upsert attendee: %w", err)
	}
	return nil
}

// UpsertCoachAssignment makes sure a staffing row exists for (event, coach)
func (r *Repository) UpsertCoachAssignment(ctx context.Context, eventID, coachID uuid.UUID) error {
	if err := r.queries.UpsertCoachAssignment(ctx, db.UpsertCoachAssignmentParams{
		EventID: eventID,
		CoachID: coachID,
	}); err != nil {
		return fmt.Errorf("failed to upsert coach assignment: %w", err)
	}
	return nil
}

// ListAttendeesByEvent lists the attendance rows of an event ordered by user
func (r *Repository) ListAttendeesByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Attendee, error) {
	rows, err := r.queries.ListAttendeesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees: %w", err)
	}
	out := make([]models.Attendee, len(rows))
	for i, a := range rows {
		out[i] = models.Attendee{
			ID:        a.ID,
			EventID:   a.EventID,
			UserID:    a.UserID,
			Status:    models.AttendanceStatus(a.Status),
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		}
	}
	return out, nil
}

// ListCoachAssignmentsByEvent lists the staffing rows of an event
func (r *Repository) ListCoachAssignmentsByEvent(ctx context.Context, eventID uuid.UUID) ([]models.CoachAssignment, error) {
	rows, err := r.queries.ListCoachAssignmentsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list coach assignments: %w", err)
	}
	out := make([]models.CoachAssignment, len(rows))
	for i, c := range rows {
		out[i] = models.CoachAssignment{
			ID:        c.ID,
			EventID:   c.EventID,
			CoachID:   c.CoachID,
			CreatedAt: c.CreatedAt,
		}
	}
	return out, nil
}

// DeleteFutureAttendees removes the attendance rows of a user from every
// scheduled event of a group that starts strictly after the given instant.
// Past and already started events are never touched.
func (r *Repository) DeleteFutureAttendees(ctx context.Context, groupID, userID uuid.UUID, after time.Time) error {
	if err := r.queries.DeleteFutureAttendeesByGroupAndUser(ctx, db.DeleteFutureAttendeesByGroupAndUserParams{
		GroupID: groupID,
		UserID:  userID,
		After:   after,
	}); err != nil {
		return fmt.Errorf("failed to delete future attendees: %w", err)
	}
	return nil
}

// DeleteFutureCoachAssignments removes the staffing rows of a coach from
// every scheduled event of a group that starts strictly after the given
// instant.
func (r *Repository) DeleteFutureCoachAssignments(ctx context.Context, groupID, coachID uuid.UUID, after time.Time) error {
	if err := r.queries.DeleteFutureCoachAssignmentsByGroupAndUser(ctx, db.DeleteFutureCoachAssignmentsByGroupAndUserParams{
		GroupID: groupID,
		CoachID: coachID,
		After:   after,
	}); err != nil {
		return fmt.Errorf("failed to delete future coach assignments: %w", err)
	}
	return nil
}
