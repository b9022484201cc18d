package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus records how a person relates to one event.
type AttendanceStatus string

const (
	AttendanceStatusExpected AttendanceStatus = "EXPECTED"
	AttendanceStatusPresent  AttendanceStatus = "PRESENT"
	AttendanceStatusAbsent   AttendanceStatus = "ABSENT"
	AttendanceStatusExcused  AttendanceStatus = "EXCUSED"
)

// Attendee is one (event, person) attendance row. The (event_id, user_id)
// uniqueness constraint is the idempotency key for all attendance writes.
// Players and targeted parents share this table; the row does not record
// which role put the person on the event.
type Attendee struct {
	ID        uuid.UUID        `json:"id"`
	EventID   uuid.UUID        `json:"event_id"`
	UserID    uuid.UUID        `json:"user_id"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// CoachAssignment is one (event, coach) staffing row, unique per pair.
type CoachAssignment struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"event_id"`
	CoachID   uuid.UUID `json:"coach_id"`
	CreatedAt time.Time `json:"created_at"`
}
