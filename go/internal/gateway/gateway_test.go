package gateway

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/clubdesk/clubdesk/go/internal/schedule"
	"github.com/stretchr/testify/assert"
)

func TestWriteDomainError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", schedule.ErrNoTargetGroups, 400},
		{"invalid range", schedule.ErrInvalidRange, 400},
		{"authorization", &schedule.AuthorizationError{Msg: "nope"}, 403},
		{"not found", &schedule.NotFoundError{Kind: "group", Msg: "x"}, 404},
		{"head coach conflict", schedule.ErrHeadCoachRemovalForbidden, 409},
		{"cross organization conflict", schedule.ErrCrossOrganizationTarget, 409},
		{"wrapped conflict", fmt.Errorf("failed to move member: %w", schedule.ErrArchivedGroup), 409},
		{"unknown", fmt.Errorf("boom"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeDomainError(rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestBearerToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/organizations", nil)
	assert.Empty(t, bearerToken(r))

	r.Header.Set("Authorization", "Bearer secret-token")
	assert.Equal(t, "secret-token", bearerToken(r))

	r.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, bearerToken(r))
}
