package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/clubdesk/clubdesk/go/internal/attendance"
	"github.com/clubdesk/clubdesk/go/internal/auth"
	"github.com/clubdesk/clubdesk/go/internal/events"
	"github.com/clubdesk/clubdesk/go/internal/groups"
	"github.com/clubdesk/clubdesk/go/internal/members"
	"github.com/clubdesk/clubdesk/go/internal/orgs"
	"github.com/clubdesk/clubdesk/go/internal/schedule"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// TokenResolver exchanges a bearer token for a caller identity
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (auth.Caller, error)
}

// Gateway exposes the platform over JSON HTTP
type Gateway struct {
	orgs       *orgs.App
	members    *members.App
	groups     *groups.App
	events     *events.App
	attendance *attendance.App
	schedule   *schedule.App
	identity   TokenResolver
	validate   *validator.Validate
}

// New creates the HTTP gateway
func New(orgsApp *orgs.App, membersApp *members.App, groupsApp *groups.App, eventsApp *events.App, attendanceApp *attendance.App, scheduleApp *schedule.App, identity TokenResolver) *Gateway {
	return &Gateway{
		orgs:       orgsApp,
		members:    membersApp,
		groups:     groupsApp,
		events:     eventsApp,
		attendance: attendanceApp,
		schedule:   scheduleApp,
		identity:   identity,
		validate:   validator.New(),
	}
}

// Register mounts every route on the mux
func (g *Gateway) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/organizations", g.withCaller(g.handleCreateOrganization))
	mux.HandleFunc("GET /v1/organizations", g.withCaller(g.handleListOrganizations))
	mux.HandleFunc("GET /v1/organizations/{id}", g.withCaller(g.handleGetOrganization))

	mux.HandleFunc("POST /v1/users", g.withCaller(g.handleCreateUser))
	mux.HandleFunc("POST /v1/organizations/{id}/members", g.withCaller(g.handleAddMember))
	mux.HandleFunc("POST /v1/guardians", g.withCaller(g.handleLinkGuardian))

	mux.HandleFunc("POST /v1/groups", g.withCaller(g.handleCreateGroup))
	mux.HandleFunc("GET /v1/organizations/{id}/groups", g.withCaller(g.handleListGroups))
	mux.HandleFunc("GET /v1/groups/{id}", g.withCaller(g.handleGetGroup))

	mux.HandleFunc("POST /v1/events", g.withCaller(g.handleCreateEvents))
	mux.HandleFunc("GET /v1/events/{id}", g.withCaller(g.handleGetEvent))
	mux.HandleFunc("GET /v1/groups/{id}/events", g.withCaller(g.handleListGroupEvents))
	mux.HandleFunc("GET /v1/events/{id}/attendees", g.withCaller(g.handleListAttendees))
	mux.HandleFunc("GET /v1/events/{id}/coaches", g.withCaller(g.handleListEventCoaches))

	mux.HandleFunc("POST /v1/members/move", g.withCaller(g.handleMoveMember))
	mux.HandleFunc("POST /v1/members/remove", g.withCaller(g.handleRemoveMember))
}

type callerHandler func(w http.ResponseWriter, r *http.Request, caller auth.Caller)

// withCaller resolves the bearer token and logs the request. Requests
// without a valid credential are rejected before any handler runs.
func (g *Gateway) withCaller(next callerHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		token := bearerToken(r)
		caller, err := g.identity.ResolveToken(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		next(w, r, caller)

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("handled request")
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func (g *Gateway) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return g.validate.Struct(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps engine errors onto HTTP status codes
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		validationErr *schedule.ValidationError
		authErr       *schedule.AuthorizationError
		notFoundErr   *schedule.NotFoundError
		conflictErr   *schedule.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &authErr), errors.Is(err, auth.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, "not authorized")
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &conflictErr):
		writeError(w, http.StatusConflict, conflictErr.Error())
	default:
		log.Error().Err(err).Msg("internal error")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
