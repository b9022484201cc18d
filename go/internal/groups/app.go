package groups

import (
	"context"
	"fmt"
	"log"

	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
)

// GroupsRepository defines what the app layer needs from the repository
type GroupsRepository interface {
	CreateGroup(ctx context.Context, req CreateGroupRequest) (*models.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error)
	ListGroupsByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Group, error)
	SetHeadCoach(ctx context.Context, groupID uuid.UUID, coachID *uuid.UUID) (*models.Group, error)
	LinkPlayer(ctx context.Context, groupID, playerID uuid.UUID) error
	UnlinkPlayer(ctx context.Context, groupID, playerID uuid.UUID) error
	ListPlayerIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
	LinkCoach(ctx context.Context, groupID, coachID uuid.UUID, isHead bool) error
	UnlinkCoach(ctx context.Context, groupID, coachID uuid.UUID) error
	ListCoachLinks(ctx context.Context, groupID uuid.UUID) ([]models.GroupCoachLink, error)
}

// OrgsRepository defines what the app layer needs from the orgs repository for validation
type OrgsRepository interface {
	GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error)
}

// App handles group business logic
type App struct {
	repo     GroupsRepository
	orgsRepo OrgsRepository
}

// NewApp creates a new groups App
func NewApp(repo GroupsRepository, orgsRepo OrgsRepository) *App {
	return &App{
		repo:     repo,
		orgsRepo: orgsRepo,
	}
}

// CreateGroup creates a new group with validation
func (a *App) CreateGroup(ctx context.Context, req CreateGroupRequest) (*models.Group, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("validation failed: name is required")
	}
	if req.OrganizationID == uuid.Nil {
		return nil, fmt.Errorf("validation failed: organization_id is required")
	}

	// Verify organization exists
	if _, err := a.orgsRepo.GetOrganization(ctx, req.OrganizationID); err != nil {
		return nil, fmt.Errorf("organization not found: %w", err)
	}

	group, err := a.repo.CreateGroup(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	log.Printf("Created group: %s in organization %s", group.Name, group.OrganizationID)
	return group, nil
}

// GetGroup retrieves a group by ID
func (a *App) GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	group, err := a.repo.GetGroup(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// ListGroups lists the active groups of an organization. The archive bucket
// never appears in listings.
func (a *App) ListGroups(ctx context.Context, orgID uuid.UUID) ([]models.Group, error) {
	groups, err := a.repo.ListGroupsByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// SetHeadCoach updates the head coach of a group
func (a *App) SetHeadCoach(ctx context.Context, groupID uuid.UUID, coachID *uuid.UUID) (*models.Group, error) {
	// Verify group exists
	if _, err := a.repo.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("group not found: %w", err)
	}

	group, err := a.repo.SetHeadCoach(ctx, groupID, coachID)
	if err != nil {
		return nil, fmt.Errorf("failed to set head coach: %w", err)
	}

	log.Printf("Set head coach of group %s", groupID)
	return group, nil
}

// PlayersOfGroup lists the player ids linked to a group
func (a *App) PlayersOfGroup(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := a.repo.ListPlayerIDs(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group players: %w", err)
	}
	return ids, nil
}

// CoachesOfGroup returns the coach ids of a group with the head coach
// synthesized in. The head coach counts as a coach of their group even
// without a stored link row; this derived view is the only place that
// union happens.
func (a *App) CoachesOfGroup(ctx context.Context, group *models.Group) ([]uuid.UUID, error) {
	links, err := a.repo.ListCoachLinks(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group coaches: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(links)+1)
	coaches := make([]uuid.UUID, 0, len(links)+1)
	for _, l := range links {
		if !seen[l.CoachID] {
			seen[l.CoachID] = true
			coaches = append(coaches, l.CoachID)
		}
	}
	if group.HeadCoachID != nil && !seen[*group.HeadCoachID] {
		coaches = append(coaches, *group.HeadCoachID)
	}
	return coaches, nil
}
