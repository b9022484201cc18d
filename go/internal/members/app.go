package members

import (
	"context"
	"fmt"
	"log"

	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
)

// MembersRepository defines what the app layer needs from the repository
type MembersRepository interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertMembership(ctx context.Context, orgID, userID uuid.UUID, role models.Role) (*models.Membership, error)
	DeactivateMembership(ctx context.Context, orgID, userID uuid.UUID, role models.Role) error
	GetActiveMembership(ctx context.Context, orgID, userID uuid.UUID, role models.Role) (*models.Membership, error)
	ListActiveMemberIDsByRole(ctx context.Context, orgID uuid.UUID, role models.Role) ([]uuid.UUID, error)
	CreateGuardianLink(ctx context.Context, req CreateGuardianLinkRequest) (*models.GuardianLink, error)
	ListViewingGuardiansForPlayers(ctx context.Context, playerIDs []uuid.UUID) ([]models.GuardianLink, error)
}

// OrgsRepository defines what the app layer needs from the orgs repository for validation
type OrgsRepository interface {
	GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error)
}

// App handles user, membership and guardian business logic
type App struct {
	repo     MembersRepository
	orgsRepo OrgsRepository
}

// NewApp creates a new members App
func NewApp(repo MembersRepository, orgsRepo OrgsRepository) *App {
	return &App{
		repo:     repo,
		orgsRepo: orgsRepo,
	}
}

// CreateUser creates a new user account with validation
func (a *App) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("validation failed: full_name is required")
	}
	if req.Email == "" {
		return nil, fmt.Errorf("validation failed: email is required")
	}

	user, err := a.repo.CreateUser(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("Created user: %s (%s)", user.FullName, user.Email)
	return user, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// AddMember grants a role membership in an organization, reactivating a
// previously soft-disabled one.
func (a *App) AddMember(ctx context.Context, orgID, userID uuid.UUID, role models.Role) (*models.Membership, error) {
	if err := a.validateRole(role); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Verify organization and user exist
	if _, err := a.orgsRepo.GetOrganization(ctx, orgID); err != nil {
		return nil, fmt.Errorf("organization not found: %w", err)
	}
	if _, err := a.repo.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	m, err := a.repo.UpsertMembership(ctx, orgID, userID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	log.Printf("Added member %s to organization %s as %s", userID, orgID, role)
	return m, nil
}

// DisableMember soft-disables a role membership. Membership rows are never
// hard-deleted.
func (a *App) DisableMember(ctx context.Context, orgID, userID uuid.UUID, role models.Role) error {
	if err := a.validateRole(role); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := a.repo.DeactivateMembership(ctx, orgID, userID, role); err != nil {
		return fmt.Errorf("failed to disable member: %w", err)
	}

	log.Printf("Disabled %s membership for %s in organization %s", role, userID, orgID)
	return nil
}

// HasActiveRole reports whether a user holds an active role membership in an
// organization.
func (a *App) HasActiveRole(ctx context.Context, orgID, userID uuid.UUID, role models.Role) (bool, error) {
	_, err := a.repo.GetActiveMembership(ctx, orgID, userID, role)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// ListActiveMemberIDsByRole lists the user ids holding an active role
// membership in an organization.
func (a *App) ListActiveMemberIDsByRole(ctx context.Context, orgID uuid.UUID, role models.Role) ([]uuid.UUID, error) {
	if err := a.validateRole(role); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ids, err := a.repo.ListActiveMemberIDsByRole(ctx, orgID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list members by role: %w", err)
	}
	return ids, nil
}

// LinkGuardian ties a guardian account to a player account
func (a *App) LinkGuardian(ctx context.Context, req CreateGuardianLinkRequest) (*models.GuardianLink, error) {
	if req.PlayerID == uuid.Nil {
		return nil, fmt.Errorf("validation failed: player_id is required")
	}
	if req.GuardianID == uuid.Nil {
		return nil, fmt.Errorf("validation failed: guardian_id is required")
	}
	if req.PlayerID == req.GuardianID {
		return nil, fmt.Errorf("validation failed: a player cannot guard themselves")
	}

	link, err := a.repo.CreateGuardianLink(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to link guardian: %w", err)
	}

	log.Printf("Linked guardian %s to player %s", req.GuardianID, req.PlayerID)
	return link, nil
}

// ViewingGuardiansForPlayers returns, per player, the guardian ids allowed to
// view that player (can_view links only).
func (a *App) ViewingGuardiansForPlayers(ctx context.Context, playerIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	if len(playerIDs) == 0 {
		return map[uuid.UUID][]uuid.UUID{}, nil
	}

	links, err := a.repo.ListViewingGuardiansForPlayers(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list guardians: %w", err)
	}

	out := make(map[uuid.UUID][]uuid.UUID, len(playerIDs))
	for _, l := range links {
		out[l.PlayerID] = append(out[l.PlayerID], l.GuardianID)
	}
	return out, nil
}

// validateRole validates a membership role
func (a *App) validateRole(role models.Role) error {
	switch role {
	case models.RoleManager, models.RoleCoach, models.RolePlayer, models.RoleParent:
		return nil
	default:
		return fmt.Errorf("invalid role: %s", role)
	}
}
