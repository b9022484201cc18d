package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the role a user holds inside an organization. A user may
// hold several role memberships in the same organization (e.g. coach and
// parent at once).
type Role string

const (
	RoleManager Role = "MANAGER"
	RoleCoach   Role = "COACH"
	RolePlayer  Role = "PLAYER"
	RoleParent  Role = "PARENT"
)

// Membership ties a user to an organization under one role. Memberships are
// soft-disabled via Active=false, never hard-deleted.
type Membership struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	UserID         uuid.UUID `json:"user_id"`
	Role           Role      `json:"role"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GuardianLink marks a guardian account as shadowing a player account for
// targeting and notification purposes.
type GuardianLink struct {
	ID         uuid.UUID `json:"id"`
	PlayerID   uuid.UUID `json:"player_id"`
	GuardianID uuid.UUID `json:"guardian_id"`
	CanView    bool      `json:"can_view"`
	CanEdit    bool      `json:"can_edit"`
	IsPrimary  bool      `json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
}
