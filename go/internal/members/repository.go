package members

import (
	"context"
	"fmt"

	"github.com/clubdesk/clubdesk/go/internal/members/db"
	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (db.User, error)
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
	UpsertMembership(ctx context.Context, arg db.UpsertMembershipParams) (db.Membership, error)
	DeactivateMembership(ctx context.Context, arg db.DeactivateMembershipParams) error
	GetActiveMembership(ctx context.Context, arg db.GetActiveMembershipParams) (db.Membership, error)
	ListActiveMemberIDsByRole(ctx context.Context, arg db.ListActiveMemberIDsByRoleParams) ([]uuid.UUID, error)
	CreateGuardianLink(ctx context.Context, arg db.CreateGuardianLinkParams) (db.Guardian, error)
	ListViewingGuardiansForPlayers(ctx context.Context, playerIds []uuid.UUID) ([]db.Guardian, error)
}

// Repository implements user, membership and guardian data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new members repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateUser creates a new user account
func (r *Repository) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	user, err := r.queries.CreateUser(ctx, db.CreateUserParams{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return r.dbUserToModel(user), nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := r.queries.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.dbUserToModel(user), nil
}

// GetUserByEmail retrieves a user by email address
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return r.dbUserToModel(user), nil
}

// UpsertMembership creates a role membership, reactivating a soft-disabled one
func (r *Repository) UpsertMembership(ctx context.Context, orgID, userID uuid.UUID, role models.Role) (*models.Membership, error) {
	m, err := r.queries.UpsertMembership(ctx, db.UpsertMembershipParams{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           db.MemberRole(role),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert membership: %w", err)
	}
	return r.dbMembershipToModel(m), nil
}

// DeactivateMembership soft-disables a role membership
func (r *Repository) DeactivateMembership(ctx context.Context, orgID, userID uuid.UUID, role models.Role) error {
	if err := r.queries.DeactivateMembership(ctx, db.DeactivateMembershipParams{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           db.MemberRole(role),
	}); err != nil {
		return fmt.Errorf("failed to deactivate membership: %w", err)
	}
	return nil
}

// GetActiveMembership retrieves an active membership for (org, user, role)
func (r *Repository) GetActiveMembership(ctx context.Context, orgID, userID uuid.UUID, role models.Role) (*models.Membership, error) {
	m, err := r.queries.GetActiveMembership(ctx, db.GetActiveMembershipParams{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           db.MemberRole(role),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get active membership: %w", err)
	}
	return r.dbMembershipToModel(m), nil
}

// ListActiveMemberIDsByRole lists active member user ids for one role of an organization
func (r *Repository) ListActiveMemberIDsByRole(ctx context.Context, orgID uuid.UUID, role models.Role) ([]uuid.UUID, error) {
	ids, err := r.queries.ListActiveMemberIDsByRole(ctx, db.ListActiveMemberIDsByRoleParams{
		OrganizationID: orgID,
		Role:           db.MemberRole(role),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list active members by role: %w", err)
	}
	return ids, nil
}

// CreateGuardianLink ties a guardian account to a player account
func (r *Repository) CreateGuardianLink(ctx context.Context, req CreateGuardianLinkRequest) (*models.GuardianLink, error) {
	g, err := r.queries.CreateGuardianLink(ctx, db.CreateGuardianLinkParams{
		PlayerID:   req.PlayerID,
		GuardianID: req.GuardianID,
		CanView:    req.CanView,
		CanEdit:    req.CanEdit,
		IsPrimary:  req.IsPrimary,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create guardian link: %w", err)
	}
	return r.dbGuardianToModel(g), nil
}

// ListViewingGuardiansForPlayers returns the can_view guardian links for the given players
func (r *Repository) ListViewingGuardiansForPlayers(ctx context.Context, playerIDs []uuid.UUID) ([]models.GuardianLink, error) {
	rows, err := r.queries.ListViewingGuardiansForPlayers(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list guardians for players: %w", err)
	}
	links := make([]models.GuardianLink, len(rows))
	for i, g := range rows {
		links[i] = *r.dbGuardianToModel(g)
	}
	return links, nil
}

func (r *Repository) dbUserToModel(u db.User) *models.User {
	return &models.User{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func (r *Repository) dbMembershipToModel(m db.Membership) *models.Membership {
	return &models.Membership{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		UserID:         m.UserID,
		Role:           models.Role(m.Role),
		Active:         m.Active,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *Repository) dbGuardianToModel(g db.Guardian) *models.GuardianLink {
	return &models.GuardianLink{
		ID:         g.ID,
		PlayerID:   g.PlayerID,
		GuardianID: g.GuardianID,
		CanView:    g.CanView,
		CanEdit:    g.CanEdit,
		IsPrimary:  g.IsPrimary,
		CreatedAt:  g.CreatedAt,
	}
}
