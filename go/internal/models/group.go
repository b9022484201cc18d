package models

import (
	"time"

	"github.com/google/uuid"
)

// ArchiveGroupName is the reserved name of the per-organization archive
// bucket. The archive group is excluded from every targeting and listing
// operation and is never a valid scheduling or reassignment target.
const ArchiveGroupName = "Archive"

// Group is a coaching cohort within an organization.
type Group struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Name           string     `json:"name"`
	Active         bool       `json:"active"`
	HeadCoachID    *uuid.UUID `json:"head_coach_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsArchive reports whether the group is the reserved archive bucket.
func (g Group) IsArchive() bool {
	return g.Name == ArchiveGroupName
}

// GroupPlayerLink ties a player to a group. Unordered many-to-many.
type GroupPlayerLink struct {
	GroupID   uuid.UUID `json:"group_id"`
	PlayerID  uuid.UUID `json:"player_id"`
	CreatedAt time.Time `json:"created_at"`
}

// GroupCoachLink ties a coach to a group. The head coach of a group counts
// as a coach of that group even without a link row; readers synthesize that
// (see groups.App.CoachesOfGroup), it is never duplicated into storage.
type GroupCoachLink struct {
	GroupID   uuid.UUID `json:"group_id"`
	CoachID   uuid.UUID `json:"coach_id"`
	IsHead    bool      `json:"is_head"`
	CreatedAt time.Time `json:"created_at"`
}
