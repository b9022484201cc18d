package gateway

import (
	"net/http"
	"time"

	"github.com/clubdesk/clubdesk/go/internal/auth"
	"github.com/clubdesk/clubdesk/go/internal/groups"
	"github.com/clubdesk/clubdesk/go/internal/members"
	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/clubdesk/clubdesk/go/internal/schedule"
	"github.com/google/uuid"
)

func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	return id, err == nil
}

type createOrganizationRequest struct {
	Name string `json:"name" validate:"required"`
}

func (g *Gateway) handleCreateOrganization(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	var req createOrganizationRequest
	if err := g.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	org, err := g.orgs.CreateOrganization(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, org)
}

func (g *Gateway) handleListOrganizations(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	list, err := g.orgs.ListOrganizations(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (g *Gateway) handleGetOrganization(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed organization id")
		return
	}
	org, err := g.orgs.GetOrganization(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "organization not found")
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (g *Gateway) handleCreateUser(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	var req members.CreateUserRequest
	if err := g.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := g.members.CreateUser(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

type addMemberRequest struct {
	UserID uuid.UUID   `json:"user_id" validate:"required"`
	Role   models.Role `json:"role" validate:"required"`
}

func (g *Gateway) handleAddMember(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	orgID, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed organization id")
		return
	}
	var req addMemberRequest
	if err := g.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	membership, err := g.members.AddMember(r.Context(), orgID, req.UserID, req.Role)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, membership)
}

func (g *Gateway) handleLinkGuardian(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	var req members.CreateGuardianLinkRequest
	if err := g.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	link, err := g.members.LinkGuardian(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (g *Gateway) handleCreateGroup(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	var req groups.CreateGroupRequest
	if err := g.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	group, err := g.groups.CreateGroup(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

func (g *Gateway) handleListGroups(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	orgID, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed organization id")
		return
	}
	list, err := g.groups.ListGroups(r.Context(), orgID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (g *Gateway) handleGetGroup(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed group id")
		return
	}
	group, err := g.groups.GetGroup(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "group not found")
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (g *Gateway) handleCreateEvents(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	var req schedule.CreateEventsRequest
	if err := g.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := g.schedule.CreateEvents(r.Context(), caller, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (g *Gateway) handleGetEvent(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed event id")
		return
	}
	event, err := g.events.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (g *Gateway) handleListGroupEvents(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	groupID, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed group id")
		return
	}
	after := time.Now()
	if raw := r.URL.Query().Get("after"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "after must be RFC 3339")
			return
		}
		after = parsed
	}
	list, err := g.events.ListFutureEvents(r.Context(), groupID, after)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (g *Gateway) handleListAttendees(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	eventID, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed event id")
		return
	}
	list, err := g.attendance.AttendeesOfEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (g *Gateway) handleListEventCoaches(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	eventID, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "malformed event id")
		return
	}
	list, err := g.attendance.CoachesOfEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (g *Gateway) handleMoveMember(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	var req schedule.MoveMemberRequest
	if err := g.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := g.schedule.MoveMember(r.Context(), caller, req); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (g *Gateway) handleRemoveMember(w http.ResponseWriter, r *http.Request, caller auth.Caller) {
	var req schedule.RemoveMemberRequest
	if err := g.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := g.schedule.RemoveMember(r.Context(), caller, req); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
