package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/clubdesk/clubdesk/go/internal/auth"
	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MoveMember links a player or coach to a target group and reconciles the
// attendance footprint of every future event involved. The whole cascade
// runs in one transaction.
func (a *App) MoveMember(ctx context.Context, caller auth.Caller, req MoveMemberRequest) error {
	if err := validateActorType(req.ActorType); err != nil {
		return err
	}
	if req.UserID == uuid.Nil {
		return &ValidationError{Msg: "user_id is required"}
	}

	toGroup, err := a.groups.GetGroup(ctx, req.ToGroupID)
	if err != nil {
		return &NotFoundError{Kind: "group", Msg: req.ToGroupID.String()}
	}
	if toGroup.IsArchive() {
		return ErrArchivedGroup
	}
	if err := a.auth.RequireManager(ctx, caller, toGroup.OrganizationID); err != nil {
		return &AuthorizationError{Msg: err.Error()}
	}

	var fromGroup *models.Group
	if req.FromGroupID != nil && *req.FromGroupID != req.ToGroupID {
		fromGroup, err = a.groups.GetGroup(ctx, *req.FromGroupID)
		if err != nil {
			return &NotFoundError{Kind: "group", Msg: req.FromGroupID.String()}
		}
		if fromGroup.OrganizationID != toGroup.OrganizationID {
			return ErrCrossOrganizationTarget
		}
	}

	now := a.clock.Now()
	futureEvents, err := a.events.ListFutureEvents(ctx, toGroup.ID, now)
	if err != nil {
		return fmt.Errorf("failed to list future events of target group: %w", err)
	}

	err = a.stores.Transact(ctx, func(s Stores) error {
		if err := a.link(ctx, s, req.ActorType, toGroup.ID, req.UserID); err != nil {
			return err
		}
		if req.RemoveFromSource && fromGroup != nil {
			if err := a.unlinkAndCascade(ctx, s, req.ActorType, fromGroup.ID, req.UserID, now); err != nil {
				return err
			}
		}
		for _, event := range futureEvents {
			if err := a.attach(ctx, s, req.ActorType, event.ID, req.UserID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to move member: %w", err)
	}

	a.notifier.Notify(ctx, []uuid.UUID{req.UserID},
		"Group change",
		fmt.Sprintf("You were added to %s", toGroup.Name),
		fmt.Sprintf("/groups/%s", toGroup.ID))

	log.Info().
		Str("actor_type", string(req.ActorType)).
		Str("user_id", req.UserID.String()).
		Str("to_group", toGroup.ID.String()).
		Bool("removed_from_source", req.RemoveFromSource && fromGroup != nil).
		Msg("moved member")
	return nil
}

// RemoveMember unlinks a player or coach from a group and deletes their
// attendance rows on the group's future events. Past events keep their
// recorded attendance. Removing a group's head coach is refused outright.
func (a *App) RemoveMember(ctx context.Context, caller auth.Caller, req RemoveMemberRequest) error {
	if err := validateActorType(req.ActorType); err != nil {
		return err
	}
	if req.UserID == uuid.Nil {
		return &ValidationError{Msg: "user_id is required"}
	}

	group, err := a.groups.GetGroup(ctx, req.GroupID)
	if err != nil {
		return &NotFoundError{Kind: "group", Msg: req.GroupID.String()}
	}
	if err := a.auth.RequireManager(ctx, caller, group.OrganizationID); err != nil {
		return &AuthorizationError{Msg: err.Error()}
	}
	if req.ActorType == ActorTypeCoach && group.HeadCoachID != nil && *group.HeadCoachID == req.UserID {
		return ErrHeadCoachRemovalForbidden
	}

	now := a.clock.Now()
	err = a.stores.Transact(ctx, func(s Stores) error {
		return a.unlinkAndCascade(ctx, s, req.ActorType, group.ID, req.UserID, now)
	})
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	log.Info().
		Str("actor_type", string(req.ActorType)).
		Str("user_id", req.UserID.String()).
		Str("group_id", group.ID.String()).
		Msg("removed member")
	return nil
}

func (a *App) link(ctx context.Context, s Stores, actor ActorType, groupID, userID uuid.UUID) error {
	if actor == ActorTypeCoach {
		return s.Groups.LinkCoach(ctx, groupID, userID, false)
	}
	return s.Groups.LinkPlayer(ctx, groupID, userID)
}

func (a *App) attach(ctx context.Context, s Stores, actor ActorType, eventID, userID uuid.UUID) error {
	if actor == ActorTypeCoach {
		return s.Attendance.UpsertCoachAssignment(ctx, eventID, userID)
	}
	return s.Attendance.UpsertAttendee(ctx, eventID, userID, models.AttendanceStatusPresent)
}

func (a *App) unlinkAndCascade(ctx context.Context, s Stores, actor ActorType, groupID, userID uuid.UUID, now time.Time) error {
	if actor == ActorTypeCoach {
		if err := s.Groups.UnlinkCoach(ctx, groupID, userID); err != nil {
			return err
		}
		return s.Attendance.DeleteFutureCoachAssignments(ctx, groupID, userID, now)
	}
	if err := s.Groups.UnlinkPlayer(ctx, groupID, userID); err != nil {
		return err
	}
	return s.Attendance.DeleteFutureAttendees(ctx, groupID, userID, now)
}
