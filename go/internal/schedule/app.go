package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/clubdesk/clubdesk/go/internal/auth"
	"github.com/clubdesk/clubdesk/go/internal/events"
	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// EventMode distinguishes single events from recurring series
type EventMode string

const (
	EventModeSingle EventMode = "SINGLE"
	EventModeSeries EventMode = "SERIES"
)

// ActorType selects which link and attendance tables a membership change
// operates on
type ActorType string

const (
	ActorTypePlayer ActorType = "PLAYER"
	ActorTypeCoach  ActorType = "COACH"
)

// CreateEventsRequest is the input of the create entry point. StartsAt is
// used in SINGLE mode, Recurrence in SERIES mode.
type CreateEventsRequest struct {
	OrganizationID  uuid.UUID        `json:"organization_id" validate:"required"`
	GroupIDs        []uuid.UUID      `json:"group_ids"`
	Mode            EventMode        `json:"mode" validate:"required"`
	Type            models.EventType `json:"type" validate:"required"`
	Title           *string          `json:"title,omitempty"`
	Location        *string          `json:"location,omitempty"`
	Note            *string          `json:"note,omitempty"`
	DurationMinutes int              `json:"duration_minutes"`
	StartsAt        time.Time        `json:"starts_at,omitempty"`
	Recurrence      RecurrenceRule   `json:"recurrence,omitempty"`
	Scopes          AudienceScopes   `json:"scopes"`
}

// CreateEventsResult reports what the create entry point persisted
type CreateEventsResult struct {
	CreatedEventIDs  []uuid.UUID `json:"created_event_ids"`
	CreatedSeriesIDs []uuid.UUID `json:"created_series_ids,omitempty"`
}

// MoveMemberRequest moves a player or coach into a group, optionally out of
// another one
type MoveMemberRequest struct {
	ActorType        ActorType  `json:"actor_type" validate:"required"`
	UserID           uuid.UUID  `json:"user_id" validate:"required"`
	ToGroupID        uuid.UUID  `json:"to_group_id" validate:"required"`
	FromGroupID      *uuid.UUID `json:"from_group_id,omitempty"`
	RemoveFromSource bool       `json:"remove_from_source"`
}

// RemoveMemberRequest takes a player or coach out of a group
type RemoveMemberRequest struct {
	ActorType ActorType `json:"actor_type" validate:"required"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	GroupID   uuid.UUID `json:"group_id" validate:"required"`
}

// EventWriter is the transactional slice of the events repository
type EventWriter interface {
	CreateEvent(ctx context.Context, req events.CreateEventRequest) (*models.Event, error)
	CreateEventSeries(ctx context.Context, req events.CreateEventSeriesRequest) (*models.EventSeries, error)
}

// AttendanceWriter is the transactional slice of the attendance repository
type AttendanceWriter interface {
	UpsertAttendee(ctx context.Context, eventID, userID uuid.UUID, status models.AttendanceStatus) error
	UpsertCoachAssignment(ctx context.Context, eventID, coachID uuid.UUID) error
	DeleteFutureAttendees(ctx context.Context, groupID, userID uuid.UUID, after time.Time) error
	DeleteFutureCoachAssignments(ctx context.Context, groupID, coachID uuid.UUID, after time.Time) error
}

// GroupLinkWriter is the transactional slice of the groups repository
type GroupLinkWriter interface {
	LinkPlayer(ctx context.Context, groupID, playerID uuid.UUID) error
	UnlinkPlayer(ctx context.Context, groupID, playerID uuid.UUID) error
	LinkCoach(ctx context.Context, groupID, coachID uuid.UUID, isHead bool) error
	UnlinkCoach(ctx context.Context, groupID, coachID uuid.UUID) error
}

// Stores bundles the writers bound to one transaction
type Stores struct {
	Events     EventWriter
	Attendance AttendanceWriter
	Groups     GroupLinkWriter
}

// StoreProvider runs a unit of work against transaction-bound stores.
// Every multi-entity write of the orchestrator goes through Transact, so a
// failed occurrence or cascade rolls back as one piece.
type StoreProvider interface {
	Transact(ctx context.Context, fn func(s Stores) error) error
}

// GroupReader is the read-side slice of the groups layer
type GroupReader interface {
	GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error)
	PlayersOfGroup(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
	CoachesOfGroup(ctx context.Context, group *models.Group) ([]uuid.UUID, error)
}

// MemberReader is the read-side slice of the members layer
type MemberReader interface {
	ListActiveMemberIDsByRole(ctx context.Context, orgID uuid.UUID, role models.Role) ([]uuid.UUID, error)
	ViewingGuardiansForPlayers(ctx context.Context, playerIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
}

// EventReader is the read-side slice of the events layer
type EventReader interface {
	ListFutureEvents(ctx context.Context, groupID uuid.UUID, after time.Time) ([]models.Event, error)
}

// Notifier is a fire-and-forget push sink. Implementations must never fail
// the calling operation; delivery problems are theirs to log.
type Notifier interface {
	Notify(ctx context.Context, recipients []uuid.UUID, title, body, link string)
}

// App is the scheduling orchestrator. It owns validation, authorization and
// the transaction boundaries around event creation and membership moves.
type App struct {
	stores   StoreProvider
	groups   GroupReader
	members  MemberReader
	events   EventReader
	auth     auth.Authorizer
	notifier Notifier
	clock    clockwork.Clock
}

// NewApp creates the scheduling orchestrator
func NewApp(stores StoreProvider, groups GroupReader, members MemberReader, events EventReader, authorizer auth.Authorizer, notifier Notifier, clock clockwork.Clock) *App {
	return &App{
		stores:   stores,
		groups:   groups,
		members:  members,
		events:   events,
		auth:     authorizer,
		notifier: notifier,
		clock:    clock,
	}
}

// CreateEvents expands the request into concrete events for every target
// group, persists them and their attendance rows, and notifies the resolved
// audience. Each occurrence is created and synced in its own transaction,
// so a failure partway through a series leaves earlier occurrences complete
// and later ones absent, never a half-written event.
func (a *App) CreateEvents(ctx context.Context, caller auth.Caller, req CreateEventsRequest) (*CreateEventsResult, error) {
	if err := a.validateCreate(req); err != nil {
		return nil, err
	}
	if err := a.auth.RequireManager(ctx, caller, req.OrganizationID); err != nil {
		return nil, &AuthorizationError{Msg: err.Error()}
	}

	occurrences, err := a.occurrencesFor(req)
	if err != nil {
		return nil, err
	}

	result := &CreateEventsResult{}
	for _, groupID := range req.GroupIDs {
		group, err := a.targetGroup(ctx, groupID, req.OrganizationID)
		if err != nil {
			return nil, err
		}

		snap, err := a.snapshotGroup(ctx, group)
		if err != nil {
			return nil, err
		}
		targets := ResolveTargets(req.Scopes, snap)

		var seriesID *uuid.UUID
		if req.Mode == EventModeSeries {
			id, err := a.createSeries(ctx, group, caller, req)
			if err != nil {
				return nil, err
			}
			seriesID = id
			result.CreatedSeriesIDs = append(result.CreatedSeriesIDs, *id)
		}

		created := make([]*models.Event, 0, len(occurrences))
		for _, occ := range occurrences {
			event, err := a.createAndSync(ctx, group, caller, req, occ, seriesID, targets)
			if err != nil {
				return nil, err
			}
			created = append(created, event)
			result.CreatedEventIDs = append(result.CreatedEventIDs, event.ID)
		}

		a.notifyCreated(ctx, group, created, targets)
	}

	log.Info().
		Int("events", len(result.CreatedEventIDs)).
		Int("groups", len(req.GroupIDs)).
		Str("mode", string(req.Mode)).
		Msg("created events")
	return result, nil
}

func (a *App) validateCreate(req CreateEventsRequest) error {
	if len(req.GroupIDs) == 0 {
		return ErrNoTargetGroups
	}
	if req.OrganizationID == uuid.Nil {
		return &ValidationError{Msg: "organization_id is required"}
	}
	switch req.Type {
	case models.EventTypeTraining, models.EventTypeInterclub, models.EventTypeCamp, models.EventTypeSession, models.EventTypeEvent:
	default:
		return &ValidationError{Msg: fmt.Sprintf("unknown event type %q", req.Type)}
	}
	switch req.Mode {
	case EventModeSingle:
		if req.StartsAt.IsZero() {
			return &ValidationError{Msg: "starts_at is required for single events"}
		}
	case EventModeSeries:
		r := req.Recurrence
		if r.Weekday < 0 || r.Weekday > 6 {
			return &ValidationError{Msg: "weekday must be between 0 and 6"}
		}
		if r.Hour < 0 || r.Hour > 23 || r.Minute < 0 || r.Minute > 59 {
			return &ValidationError{Msg: "time of day is out of range"}
		}
		if r.IntervalWeeks < 1 {
			return &ValidationError{Msg: "interval_weeks must be at least 1"}
		}
		if r.StartDate.IsZero() || r.EndDate.IsZero() {
			return &ValidationError{Msg: "start_date and end_date are required for series"}
		}
	default:
		return &ValidationError{Msg: fmt.Sprintf("unknown event mode %q", req.Mode)}
	}
	return nil
}

func (a *App) occurrencesFor(req CreateEventsRequest) ([]Occurrence, error) {
	if req.Mode == EventModeSingle {
		duration := time.Duration(models.ClampDuration(req.DurationMinutes)) * time.Minute
		return []Occurrence{{
			StartsAt: req.StartsAt,
			EndsAt:   req.StartsAt.Add(duration),
		}}, nil
	}
	rule := req.Recurrence
	rule.DurationMinutes = req.DurationMinutes
	return ExpandRecurrence(rule)
}

// targetGroup loads a group and checks it is a valid scheduling target for
// the claimed organization
func (a *App) targetGroup(ctx context.Context, groupID, orgID uuid.UUID) (*models.Group, error) {
	group, err := a.groups.GetGroup(ctx, groupID)
	if err != nil {
		return nil, &NotFoundError{Kind: "group", Msg: groupID.String()}
	}
	if group.OrganizationID != orgID {
		return nil, &NotFoundError{Kind: "group", Msg: fmt.Sprintf("%s does not belong to organization %s", groupID, orgID)}
	}
	if group.IsArchive() {
		return nil, ErrArchivedGroup
	}
	return group, nil
}

// snapshotGroup reads the membership state resolution runs against. Guardian
// links are fetched for the group's full player set, which covers every
// player that can end up in the resolved targets.
func (a *App) snapshotGroup(ctx context.Context, group *models.Group) (GroupSnapshot, error) {
	playerIDs, err := a.groups.PlayersOfGroup(ctx, group.ID)
	if err != nil {
		return GroupSnapshot{}, fmt.Errorf("failed to read group players: %w", err)
	}
	coachIDs, err := a.groups.CoachesOfGroup(ctx, group)
	if err != nil {
		return GroupSnapshot{}, fmt.Errorf("failed to read group coaches: %w", err)
	}
	orgCoachIDs, err := a.members.ListActiveMemberIDsByRole(ctx, group.OrganizationID, models.RoleCoach)
	if err != nil {
		return GroupSnapshot{}, fmt.Errorf("failed to read organization coaches: %w", err)
	}
	orgParentIDs, err := a.members.ListActiveMemberIDsByRole(ctx, group.OrganizationID, models.RoleParent)
	if err != nil {
		return GroupSnapshot{}, fmt.Errorf("failed to read organization parents: %w", err)
	}
	guardians, err := a.members.ViewingGuardiansForPlayers(ctx, playerIDs)
	if err != nil {
		return GroupSnapshot{}, fmt.Errorf("failed to read guardian links: %w", err)
	}
	return GroupSnapshot{
		GroupPlayerIDs: playerIDs,
		GroupCoachIDs:  coachIDs,
		OrgCoachIDs:    orgCoachIDs,
		OrgParentIDs:   orgParentIDs,
		Guardians:      guardians,
	}, nil
}

func (a *App) createSeries(ctx context.Context, group *models.Group, caller auth.Caller, req CreateEventsRequest) (*uuid.UUID, error) {
	var seriesID uuid.UUID
	err := a.stores.Transact(ctx, func(s Stores) error {
		series, err := s.Events.CreateEventSeries(ctx, events.CreateEventSeriesRequest{
			GroupID:         group.ID,
			OrganizationID:  group.OrganizationID,
			Type:            req.Type,
			Title:           req.Title,
			Location:        req.Location,
			Note:            req.Note,
			DurationMinutes: models.ClampDuration(req.DurationMinutes),
			Weekday:         req.Recurrence.Weekday,
			Hour:            req.Recurrence.Hour,
			Minute:          req.Recurrence.Minute,
			IntervalWeeks:   req.Recurrence.IntervalWeeks,
			StartDate:       req.Recurrence.StartDate,
			EndDate:         req.Recurrence.EndDate,
			CreatedBy:       caller.UserID,
		})
		if err != nil {
			return err
		}
		seriesID = series.ID
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event series: %w", err)
	}
	return &seriesID, nil
}

// createAndSync persists one occurrence and its full attendance footprint
// in a single transaction
func (a *App) createAndSync(ctx context.Context, group *models.Group, caller auth.Caller, req CreateEventsRequest, occ Occurrence, seriesID *uuid.UUID, targets TargetSet) (*models.Event, error) {
	var event *models.Event
	err := a.stores.Transact(ctx, func(s Stores) error {
		created, err := s.Events.CreateEvent(ctx, events.CreateEventRequest{
			GroupID:         group.ID,
			OrganizationID:  group.OrganizationID,
			Type:            req.Type,
			Title:           req.Title,
			StartsAt:        occ.StartsAt,
			EndsAt:          occ.EndsAt,
			DurationMinutes: models.ClampDuration(req.DurationMinutes),
			Location:        req.Location,
			Note:            req.Note,
			SeriesID:        seriesID,
			CreatedBy:       caller.UserID,
		})
		if err != nil {
			return err
		}
		for _, userID := range targets.Attendees() {
			if err := s.Attendance.UpsertAttendee(ctx, created.ID, userID, models.AttendanceStatusPresent); err != nil {
				return err
			}
		}
		for _, coachID := range targets.Coaches {
			if err := s.Attendance.UpsertCoachAssignment(ctx, created.ID, coachID); err != nil {
				return err
			}
		}
		event = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create occurrence at %s: %w", occ.StartsAt.Format(time.RFC3339), err)
	}
	return event, nil
}

func (a *App) notifyCreated(ctx context.Context, group *models.Group, created []*models.Event, targets TargetSet) {
	if len(created) == 0 {
		return
	}
	recipients := targets.Recipients()
	if len(recipients) == 0 {
		return
	}
	first := created[0]
	title := fmt.Sprintf("New %s scheduled", first.Type)
	body := fmt.Sprintf("%d event(s) for %s starting %s", len(created), group.Name, first.StartsAt.Format("2006-01-02 15:04"))
	a.notifier.Notify(ctx, recipients, title, body, fmt.Sprintf("/events/%s", first.ID))
}

func validateActorType(actor ActorType) error {
	switch actor {
	case ActorTypePlayer, ActorTypeCoach:
		return nil
	default:
		return &ValidationError{Msg: fmt.Sprintf("unknown actor type %q", actor)}
	}
}
