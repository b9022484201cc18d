package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
)

// ErrNotAuthorized is returned when the caller lacks the rights for an
// operation on an organization.
var ErrNotAuthorized = errors.New("caller is not authorized for this organization")

// Caller is the resolved identity behind a request
type Caller struct {
	UserID     uuid.UUID `json:"user_id"`
	Superadmin bool      `json:"superadmin"`
}

// Authorizer decides whether a caller may manage an organization
type Authorizer interface {
	RequireManager(ctx context.Context, caller Caller, orgID uuid.UUID) error
}

// MembershipChecker is the slice of the members app the authorizer needs
type MembershipChecker interface {
	HasActiveRole(ctx context.Context, orgID, userID uuid.UUID, role models.Role) (bool, error)
}

// MembershipAuthorizer authorizes callers against active manager memberships.
// Platform superadmins bypass the membership check.
type MembershipAuthorizer struct {
	members MembershipChecker
}

// NewMembershipAuthorizer creates an authorizer backed by membership data
func NewMembershipAuthorizer(members MembershipChecker) *MembershipAuthorizer {
	return &MembershipAuthorizer{members: members}
}

// RequireManager returns ErrNotAuthorized unless the caller is a superadmin
// or holds an active manager membership in the organization.
func (a *MembershipAuthorizer) RequireManager(ctx context.Context, caller Caller, orgID uuid.UUID) error {
	if caller.Superadmin {
		return nil
	}
	if caller.UserID == uuid.Nil {
		return ErrNotAuthorized
	}
	ok, err := a.members.HasActiveRole(ctx, orgID, caller.UserID, models.RoleManager)
	if err != nil {
		return fmt.Errorf("failed to check manager membership: %w", err)
	}
	if !ok {
		return ErrNotAuthorized
	}
	return nil
}
