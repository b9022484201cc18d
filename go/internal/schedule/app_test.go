package schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/clubdesk/clubdesk/go/internal/auth"
	"github.com/clubdesk/clubdesk/go/internal/events"
	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attKey struct {
	event uuid.UUID
	user  uuid.UUID
}

type linkKey struct {
	group uuid.UUID
	user  uuid.UUID
}

// engineState is an in-memory stand-in for the persistence layer. It
// implements the orchestrator's store and reader interfaces with the same
// insert-if-absent semantics the SQL layer has.
type engineState struct {
	groups       map[uuid.UUID]*models.Group
	groupPlayers map[uuid.UUID][]uuid.UUID
	orgMembers   map[models.Role][]uuid.UUID
	guardians    map[uuid.UUID][]uuid.UUID

	events      []*models.Event
	series      []*models.EventSeries
	attendees   map[attKey]models.AttendanceStatus
	coachRows   map[attKey]bool
	playerLinks map[linkKey]bool
	coachLinks  map[linkKey]bool
}

func newEngineState() *engineState {
	return &engineState{
		groups:       make(map[uuid.UUID]*models.Group),
		groupPlayers: make(map[uuid.UUID][]uuid.UUID),
		orgMembers:   make(map[models.Role][]uuid.UUID),
		guardians:    make(map[uuid.UUID][]uuid.UUID),
		attendees:    make(map[attKey]models.AttendanceStatus),
		coachRows:    make(map[attKey]bool),
		playerLinks:  make(map[linkKey]bool),
		coachLinks:   make(map[linkKey]bool),
	}
}

func (s *engineState) Transact(ctx context.Context, fn func(st Stores) error) error {
	return fn(Stores{Events: s, Attendance: s, Groups: s})
}

func (s *engineState) CreateEvent(ctx context.Context, req events.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		ID:              uuid.New(),
		GroupID:         req.GroupID,
		OrganizationID:  req.OrganizationID,
		Type:            req.Type,
		Title:           req.Title,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		DurationMinutes: req.DurationMinutes,
		SeriesID:        req.SeriesID,
		Status:          models.EventStatusScheduled,
		CreatedBy:       req.CreatedBy,
	}
	s.events = append(s.events, event)
	return event, nil
}

func (s *engineState) CreateEventSeries(ctx context.Context, req events.CreateEventSeriesRequest) (*models.EventSeries, error) {
	series := &models.EventSeries{
		ID:             uuid.New(),
		GroupID:        req.GroupID,
		OrganizationID: req.OrganizationID,
		Type:           req.Type,
		Weekday:        req.Weekday,
		IntervalWeeks:  req.IntervalWeeks,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Active:         true,
		CreatedBy:      req.CreatedBy,
	}
	s.series = append(s.series, series)
	return series, nil
}

func (s *engineState) UpsertAttendee(ctx context.Context, eventID, userID uuid.UUID, status models.AttendanceStatus) error {
	k := attKey{eventID, userID}
	if _, ok := s.attendees[k]; !ok {
		s.attendees[k] = status
	}
	return nil
}

func (s *engineState) UpsertCoachAssignment(ctx context.Context, eventID, coachID uuid.UUID) error {
	s.coachRows[attKey{eventID, coachID}] = true
	return nil
}

func (s *engineState) DeleteFutureAttendees(ctx context.Context, groupID, userID uuid.UUID, after time.Time) error {
	for _, e := range s.eventsOfGroupAfter(groupID, after) {
		delete(s.attendees, attKey{e.ID, userID})
	}
	return nil
}

func (s *engineState) DeleteFutureCoachAssignments(ctx context.Context, groupID, coachID uuid.UUID, after time.Time) error {
	for _, e := range s.eventsOfGroupAfter(groupID, after) {
		delete(s.coachRows, attKey{e.ID, coachID})
	}
	return nil
}

func (s *engineState) LinkPlayer(ctx context.Context, groupID, playerID uuid.UUID) error {
	s.playerLinks[linkKey{groupID, playerID}] = true
	return nil
}

func (s *engineState) UnlinkPlayer(ctx context.Context, groupID, playerID uuid.UUID) error {
	delete(s.playerLinks, linkKey{groupID, playerID})
	return nil
}

func (s *engineState) LinkCoach(ctx context.Context, groupID, coachID uuid.UUID, isHead bool) error {
	s.coachLinks[linkKey{groupID, coachID}] = true
	return nil
}

func (s *engineState) UnlinkCoach(ctx context.Context, groupID, coachID uuid.UUID) error {
	delete(s.coachLinks, linkKey{groupID, coachID})
	return nil
}

func (s *engineState) GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	group, ok := s.groups[id]
	if !ok {
		return nil, fmt.Errorf("no such group")
	}
	return group, nil
}

func (s *engineState) PlayersOfGroup(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	return s.groupPlayers[groupID], nil
}

func (s *engineState) CoachesOfGroup(ctx context.Context, group *models.Group) ([]uuid.UUID, error) {
	var coaches []uuid.UUID
	for k := range s.coachLinks {
		if k.group == group.ID {
			coaches = append(coaches, k.user)
		}
	}
	if group.HeadCoachID != nil {
		found := false
		for _, id := range coaches {
			if id == *group.HeadCoachID {
				found = true
			}
		}
		if !found {
			coaches = append(coaches, *group.HeadCoachID)
		}
	}
	return coaches, nil
}

func (s *engineState) ListActiveMemberIDsByRole(ctx context.Context, orgID uuid.UUID, role models.Role) ([]uuid.UUID, error) {
	return s.orgMembers[role], nil
}

func (s *engineState) ViewingGuardiansForPlayers(ctx context.Context, playerIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	out := make(map[uuid.UUID][]uuid.UUID)
	for _, id := range playerIDs {
		if g, ok := s.guardians[id]; ok {
			out[id] = g
		}
	}
	return out, nil
}

func (s *engineState) ListFutureEvents(ctx context.Context, groupID uuid.UUID, after time.Time) ([]models.Event, error) {
	var out []models.Event
	for _, e := range s.eventsOfGroupAfter(groupID, after) {
		out = append(out, *e)
	}
	return out, nil
}

func (s *engineState) eventsOfGroupAfter(groupID uuid.UUID, after time.Time) []*models.Event {
	var out []*models.Event
	for _, e := range s.events {
		if e.GroupID == groupID && e.StartsAt.After(after) && e.Status == models.EventStatusScheduled {
			out = append(out, e)
		}
	}
	return out
}

type fakeAuthorizer struct {
	allow bool
}

func (f fakeAuthorizer) RequireManager(ctx context.Context, caller auth.Caller, orgID uuid.UUID) error {
	if !f.allow {
		return auth.ErrNotAuthorized
	}
	return nil
}

type notifyCall struct {
	recipients []uuid.UUID
	title      string
}

type fakeNotifier struct {
	calls []notifyCall
}

func (f *fakeNotifier) Notify(ctx context.Context, recipients []uuid.UUID, title, body, link string) {
	f.calls = append(f.calls, notifyCall{recipients: recipients, title: title})
}

var testNow = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	app      *App
	state    *engineState
	notifier *fakeNotifier
	caller   auth.Caller
	orgID    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	state := newEngineState()
	notifier := &fakeNotifier{}
	app := NewApp(state, state, state, state, fakeAuthorizer{allow: true}, notifier, clockwork.NewFakeClockAt(testNow))
	return &fixture{
		app:      app,
		state:    state,
		notifier: notifier,
		caller:   auth.Caller{UserID: uuid.New()},
		orgID:    uuid.New(),
	}
}

func (f *fixture) addGroup(name string, headCoach *uuid.UUID) *models.Group {
	group := &models.Group{
		ID:             uuid.New(),
		OrganizationID: f.orgID,
		Name:           name,
		Active:         true,
		HeadCoachID:    headCoach,
	}
	f.state.groups[group.ID] = group
	return group
}

func (f *fixture) addEvent(groupID uuid.UUID, startsAt time.Time) *models.Event {
	event := &models.Event{
		ID:             uuid.New(),
		GroupID:        groupID,
		OrganizationID: f.orgID,
		Type:           models.EventTypeTraining,
		StartsAt:       startsAt,
		EndsAt:         startsAt.Add(time.Hour),
		Status:         models.EventStatusScheduled,
	}
	f.state.events = append(f.state.events, event)
	return event
}

func TestCreateEvents_Series(t *testing.T) {
	f := newFixture(t)
	headCoach := uuid.New()
	group := f.addGroup("Juniors A", &headCoach)
	player1, player2, guardian := uuid.New(), uuid.New(), uuid.New()
	f.state.groupPlayers[group.ID] = []uuid.UUID{player1, player2}
	f.state.orgMembers[models.RoleParent] = []uuid.UUID{guardian}
	f.state.guardians[player1] = []uuid.UUID{guardian}

	result, err := f.app.CreateEvents(context.Background(), f.caller, CreateEventsRequest{
		OrganizationID:  f.orgID,
		GroupIDs:        []uuid.UUID{group.ID},
		Mode:            EventModeSeries,
		Type:            models.EventTypeTraining,
		DurationMinutes: 90,
		Recurrence: RecurrenceRule{
			Weekday:       3,
			Hour:          16,
			IntervalWeeks: 1,
			StartDate:     time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		Scopes: AudienceScopes{
			Players: ScopeAll(),
			Parents: ScopeAll(),
		},
	})
	require.NoError(t, err)

	// February 2024 has Wednesdays on the 7th, 14th, 21st and 28th.
	assert.Len(t, result.CreatedEventIDs, 4)
	require.Len(t, result.CreatedSeriesIDs, 1)
	require.Len(t, f.state.series, 1)
	assert.Equal(t, group.ID, f.state.series[0].GroupID)

	for _, event := range f.state.events {
		require.NotNil(t, event.SeriesID)
		assert.Equal(t, result.CreatedSeriesIDs[0], *event.SeriesID)
		for _, userID := range []uuid.UUID{player1, player2, guardian} {
			assert.Equal(t, models.AttendanceStatusPresent, f.state.attendees[attKey{event.ID, userID}])
		}
		// Default coach scope staffs the group's own coaches, here just
		// the head coach.
		assert.True(t, f.state.coachRows[attKey{event.ID, headCoach}])
	}

	require.Len(t, f.notifier.calls, 1)
	assert.ElementsMatch(t, []uuid.UUID{player1, player2, guardian, headCoach}, f.notifier.calls[0].recipients)
}

func TestCreateEvents_SingleClampsDuration(t *testing.T) {
	f := newFixture(t)
	group := f.addGroup("Juniors A", nil)
	startsAt := testNow.Add(48 * time.Hour)

	result, err := f.app.CreateEvents(context.Background(), f.caller, CreateEventsRequest{
		OrganizationID:  f.orgID,
		GroupIDs:        []uuid.UUID{group.ID},
		Mode:            EventModeSingle,
		Type:            models.EventTypeCamp,
		DurationMinutes: 999,
		StartsAt:        startsAt,
	})
	require.NoError(t, err)
	require.Len(t, result.CreatedEventIDs, 1)

	event := f.state.events[0]
	assert.Equal(t, models.MaxEventDurationMinutes, event.DurationMinutes)
	assert.Equal(t, startsAt.Add(240*time.Minute), event.EndsAt)
}

func TestCreateEvents_Rejections(t *testing.T) {
	f := newFixture(t)
	group := f.addGroup("Juniors A", nil)
	archive := f.addGroup(models.ArchiveGroupName, nil)

	valid := func() CreateEventsRequest {
		return CreateEventsRequest{
			OrganizationID:  f.orgID,
			GroupIDs:        []uuid.UUID{group.ID},
			Mode:            EventModeSingle,
			Type:            models.EventTypeTraining,
			DurationMinutes: 60,
			StartsAt:        testNow.Add(time.Hour),
		}
	}

	t.Run("no target groups", func(t *testing.T) {
		req := valid()
		req.GroupIDs = nil
		_, err := f.app.CreateEvents(context.Background(), f.caller, req)
		assert.ErrorIs(t, err, ErrNoTargetGroups)
	})

	t.Run("unknown event type", func(t *testing.T) {
		req := valid()
		req.Type = "GALA"
		_, err := f.app.CreateEvents(context.Background(), f.caller, req)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("archive group", func(t *testing.T) {
		req := valid()
		req.GroupIDs = []uuid.UUID{archive.ID}
		_, err := f.app.CreateEvents(context.Background(), f.caller, req)
		assert.ErrorIs(t, err, ErrArchivedGroup)
	})

	t.Run("group of another organization", func(t *testing.T) {
		other := f.addGroup("Foreign", nil)
		other.OrganizationID = uuid.New()
		req := valid()
		req.GroupIDs = []uuid.UUID{other.ID}
		_, err := f.app.CreateEvents(context.Background(), f.caller, req)
		var notFoundErr *NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
		assert.Empty(t, f.state.events)
	})

	t.Run("unauthorized caller", func(t *testing.T) {
		app := NewApp(f.state, f.state, f.state, f.state, fakeAuthorizer{allow: false}, f.notifier, clockwork.NewFakeClockAt(testNow))
		_, err := app.CreateEvents(context.Background(), f.caller, valid())
		var authErr *AuthorizationError
		assert.ErrorAs(t, err, &authErr)
	})
}

func TestMoveMember_Player(t *testing.T) {
	f := newFixture(t)
	from := f.addGroup("Juniors A", nil)
	to := f.addGroup("Juniors B", nil)
	player := uuid.New()
	f.state.playerLinks[linkKey{from.ID, player}] = true

	past := f.addEvent(from.ID, testNow.Add(-24*time.Hour))
	futureFrom := f.addEvent(from.ID, testNow.Add(24*time.Hour))
	futureTo := f.addEvent(to.ID, testNow.Add(48*time.Hour))
	excusedTo := f.addEvent(to.ID, testNow.Add(72*time.Hour))

	f.state.attendees[attKey{past.ID, player}] = models.AttendanceStatusAbsent
	f.state.attendees[attKey{futureFrom.ID, player}] = models.AttendanceStatusPresent
	f.state.attendees[attKey{excusedTo.ID, player}] = models.AttendanceStatusExcused

	err := f.app.MoveMember(context.Background(), f.caller, MoveMemberRequest{
		ActorType:        ActorTypePlayer,
		UserID:           player,
		ToGroupID:        to.ID,
		FromGroupID:      &from.ID,
		RemoveFromSource: true,
	})
	require.NoError(t, err)

	// Link table reflects the move.
	assert.True(t, f.state.playerLinks[linkKey{to.ID, player}])
	assert.False(t, f.state.playerLinks[linkKey{from.ID, player}])

	// History is untouched; future source rows are gone; future target
	// rows exist, and a manually set status survives the cascade.
	assert.Equal(t, models.AttendanceStatusAbsent, f.state.attendees[attKey{past.ID, player}])
	_, ok := f.state.attendees[attKey{futureFrom.ID, player}]
	assert.False(t, ok)
	assert.Equal(t, models.AttendanceStatusPresent, f.state.attendees[attKey{futureTo.ID, player}])
	assert.Equal(t, models.AttendanceStatusExcused, f.state.attendees[attKey{excusedTo.ID, player}])
}

func TestMoveMember_Rejections(t *testing.T) {
	f := newFixture(t)
	to := f.addGroup("Juniors B", nil)
	player := uuid.New()

	t.Run("cross organization source", func(t *testing.T) {
		foreign := f.addGroup("Foreign", nil)
		foreign.OrganizationID = uuid.New()
		err := f.app.MoveMember(context.Background(), f.caller, MoveMemberRequest{
			ActorType:        ActorTypePlayer,
			UserID:           player,
			ToGroupID:        to.ID,
			FromGroupID:      &foreign.ID,
			RemoveFromSource: true,
		})
		assert.ErrorIs(t, err, ErrCrossOrganizationTarget)
	})

	t.Run("archive target", func(t *testing.T) {
		archive := f.addGroup(models.ArchiveGroupName, nil)
		err := f.app.MoveMember(context.Background(), f.caller, MoveMemberRequest{
			ActorType: ActorTypePlayer,
			UserID:    player,
			ToGroupID: archive.ID,
		})
		assert.ErrorIs(t, err, ErrArchivedGroup)
	})

	t.Run("unknown actor type", func(t *testing.T) {
		err := f.app.MoveMember(context.Background(), f.caller, MoveMemberRequest{
			ActorType: "MASCOT",
			UserID:    player,
			ToGroupID: to.ID,
		})
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestRemoveMember_Coach(t *testing.T) {
	f := newFixture(t)
	headCoach := uuid.New()
	assistant := uuid.New()
	group := f.addGroup("Juniors A", &headCoach)
	f.state.coachLinks[linkKey{group.ID, headCoach}] = true
	f.state.coachLinks[linkKey{group.ID, assistant}] = true

	future := f.addEvent(group.ID, testNow.Add(24*time.Hour))
	past := f.addEvent(group.ID, testNow.Add(-24*time.Hour))
	f.state.coachRows[attKey{future.ID, assistant}] = true
	f.state.coachRows[attKey{past.ID, assistant}] = true

	t.Run("head coach is protected", func(t *testing.T) {
		err := f.app.RemoveMember(context.Background(), f.caller, RemoveMemberRequest{
			ActorType: ActorTypeCoach,
			UserID:    headCoach,
			GroupID:   group.ID,
		})
		assert.ErrorIs(t, err, ErrHeadCoachRemovalForbidden)
		assert.True(t, f.state.coachLinks[linkKey{group.ID, headCoach}])
	})

	t.Run("assistant is removed from future events only", func(t *testing.T) {
		err := f.app.RemoveMember(context.Background(), f.caller, RemoveMemberRequest{
			ActorType: ActorTypeCoach,
			UserID:    assistant,
			GroupID:   group.ID,
		})
		require.NoError(t, err)
		assert.False(t, f.state.coachLinks[linkKey{group.ID, assistant}])
		assert.False(t, f.state.coachRows[attKey{future.ID, assistant}])
		assert.True(t, f.state.coachRows[attKey{past.ID, assistant}])
	})
}
