package schedule

import (
	"time"

	"github.com/google/uuid"
)

// ScopeMode selects how one audience of an event is targeted
type ScopeMode string

const (
	// ScopeModeDefault is the zero value. It resolves to the audience's
	// built-in default: nobody for players and parents, the group's own
	// coach set for coaches.
	ScopeModeDefault  ScopeMode = ""
	ScopeModeNone     ScopeMode = "NONE"
	ScopeModeAll      ScopeMode = "ALL"
	ScopeModeSelected ScopeMode = "SELECTED"
)

// Scope is a targeting directive for one audience. IDs is only meaningful
// when Mode is SELECTED.
type Scope struct {
	Mode ScopeMode   `json:"mode"`
	IDs  []uuid.UUID `json:"ids,omitempty"`
}

// ScopeNone targets nobody
func ScopeNone() Scope {
	return Scope{Mode: ScopeModeNone}
}

// ScopeAll targets the whole audience
func ScopeAll() Scope {
	return Scope{Mode: ScopeModeAll}
}

// ScopeSelected targets an explicit id set
func ScopeSelected(ids ...uuid.UUID) Scope {
	return Scope{Mode: ScopeModeSelected, IDs: ids}
}

// AudienceScopes bundles the three per-audience directives of one event
type AudienceScopes struct {
	Players Scope `json:"players"`
	Coaches Scope `json:"coaches"`
	Parents Scope `json:"parents"`
}

// GroupSnapshot is the membership data target resolution runs against.
// It is read once per group before resolving, so resolution itself is a
// pure function of this value.
type GroupSnapshot struct {
	// GroupPlayerIDs are the players linked to the group.
	GroupPlayerIDs []uuid.UUID
	// GroupCoachIDs are the coaches of the group with the head coach
	// already unioned in.
	GroupCoachIDs []uuid.UUID
	// OrgCoachIDs are every active coach membership of the organization.
	OrgCoachIDs []uuid.UUID
	// OrgParentIDs are every active parent membership of the organization.
	OrgParentIDs []uuid.UUID
	// Guardians maps a player id to the guardians allowed to view them.
	Guardians map[uuid.UUID][]uuid.UUID
}

// TargetSet is the resolved audience of one event. Each slice is sorted
// and free of duplicates.
type TargetSet struct {
	Players []uuid.UUID
	Coaches []uuid.UUID
	Parents []uuid.UUID
}

// Attendees returns the union of players and parents, the set that gets
// attendance rows. Coaches are staffed separately.
func (t TargetSet) Attendees() []uuid.UUID {
	return unionSorted(t.Players, t.Parents)
}

// Recipients returns everyone in the target set, for notification fan-out.
func (t TargetSet) Recipients() []uuid.UUID {
	return unionSorted(unionSorted(t.Players, t.Parents), t.Coaches)
}

// RecurrenceRule describes a weekly repetition in naive local wall-clock
// time. Weekday follows time.Weekday numbering (0=Sunday .. 6=Saturday).
type RecurrenceRule struct {
	Weekday         int       `json:"weekday" validate:"min=0,max=6"`
	Hour            int       `json:"hour" validate:"min=0,max=23"`
	Minute          int       `json:"minute" validate:"min=0,max=59"`
	IntervalWeeks   int       `json:"interval_weeks" validate:"min=1"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Occurrence is one concrete calendar slot produced by expansion
type Occurrence struct {
	StartsAt time.Time
	EndsAt   time.Time
}
