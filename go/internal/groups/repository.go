package groups

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clubdesk/clubdesk/go/internal/groups/db"
	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/clubdesk/clubdesk/go/internal/sqlutil"
	"github.com/google/uuid"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateGroup(ctx context.Context, arg db.CreateGroupParams) (db.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (db.Group, error)
	ListGroupsByOrganization(ctx context.Context, arg db.ListGroupsByOrganizationParams) ([]db.Group, error)
	SetHeadCoach(ctx context.Context, arg db.SetHeadCoachParams) (db.Group, error)
	UpsertGroupPlayer(ctx context.Context, arg db.UpsertGroupPlayerParams) error
	DeleteGroupPlayer(ctx context.Context, arg db.DeleteGroupPlayerParams) error
	ListGroupPlayerIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
	UpsertGroupCoach(ctx context.Context, arg db.UpsertGroupCoachParams) error
	DeleteGroupCoach(ctx context.Context, arg db.DeleteGroupCoachParams) error
	ListGroupCoaches(ctx context.Context, groupID uuid.UUID) ([]db.GroupCoach, error)
}

// Repository implements group and group-link data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new groups repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// WithTx returns a repository bound to the given transaction
func (r *Repository) WithTx(tx *sql.Tx) *Repository {
	if q, ok := r.queries.(*db.Queries); ok {
		return &Repository{queries: q.WithTx(tx)}
	}
	return r
}

// CreateGroup creates a new group
func (r *Repository) CreateGroup(ctx context.Context, req CreateGroupRequest) (*models.Group, error) {
	group, err := r.queries.CreateGroup(ctx, db.CreateGroupParams{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		HeadCoachID:    sqlutil.ToNullUUID(req.HeadCoachID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return r.dbGroupToModel(group), nil
}

// GetGroup retrieves a group by ID
func (r *Repository) GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	group, err := r.queries.GetGroup(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return r.dbGroupToModel(group), nil
}

// ListGroupsByOrganization lists the active groups of an organization,
// always excluding the archive bucket.
func (r *Repository) ListGroupsByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Group, error) {
	groups, err := r.queries.ListGroupsByOrganization(ctx, db.ListGroupsByOrganizationParams{
		OrganizationID: orgID,
		ExcludedName:   models.ArchiveGroupName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	out := make([]models.Group, len(groups))
	for i, g := range groups {
		out[i] = *r.dbGroupToModel(g)
	}
	return out, nil
}

// SetHeadCoach updates the head coach of a group
func (r *Repository) SetHeadCoach(ctx context.Context, groupID uuid.UUID, coachID *uuid.UUID) (*models.Group, error) {
	group, err := r.queries.SetHeadCoach(ctx, db.SetHeadCoachParams{
		ID:          groupID,
		HeadCoachID: sqlutil.ToNullUUID(coachID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set head coach: %w", err)
	}
	return r.dbGroupToModel(group), nil
}

// LinkPlayer ensures a player link row exists for (group, player)
func (r *Repository) LinkPlayer(ctx context.Context, groupID, playerID uuid.UUID) error {
	if err := r.queries.UpsertGroupPlayer(ctx, db.UpsertGroupPlayerParams{
		GroupID:  groupID,
		PlayerID: playerID,
	}); err != nil {
		return fmt.Errorf("failed to link player to group: %w", err)
	}
	return nil
}

// UnlinkPlayer removes the player link row for (group, player)
func (r *Repository) UnlinkPlayer(ctx context.Context, groupID, playerID uuid.UUID) error {
	if err := r.queries.DeleteGroupPlayer(ctx, db.DeleteGroupPlayerParams{
		GroupID:  groupID,
		PlayerID: playerID,
	}); err != nil {
		return fmt.Errorf("failed to unlink player from group: %w", err)
	}
	return nil
}

// ListPlayerIDs lists the player ids linked to a group
func (r *Repository) ListPlayerIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListGroupPlayerIDs(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group players: %w", err)
	}
	return ids, nil
}

// LinkCoach ensures a coach link row exists for (group, coach)
func (r *Repository) LinkCoach(ctx context.Context, groupID, coachID uuid.UUID, isHead bool) error {
	if err := r.queries.UpsertGroupCoach(ctx, db.UpsertGroupCoachParams{
		GroupID: groupID,
		CoachID: coachID,
		IsHead:  isHead,
	}); err != nil {
		return fmt.Errorf("failed to link coach to group: %w", err)
	}
	return nil
}

// UnlinkCoach removes the coach link row for (group, coach)
func (r *Repository) UnlinkCoach(ctx context.Context, groupID, coachID uuid.UUID) error {
	if err := r.queries.DeleteGroupCoach(ctx, db.DeleteGroupCoachParams{
		GroupID: groupID,
		CoachID: coachID,
	}); err != nil {
		return fmt.Errorf("failed to unlink coach from group: %w", err)
	}
	return nil
}

// ListCoachLinks lists the stored coach link rows of a group. The head coach
// is not synthesized here; see App.CoachesOfGroup.
func (r *Repository) ListCoachLinks(ctx context.Context, groupID uuid.UUID) ([]models.GroupCoachLink, error) {
	rows, err := r.queries.ListGroupCoaches(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group coaches: %w", err)
	}
	links := make([]models.GroupCoachLink, len(rows))
	for i, c := range rows {
		links[i] = models.GroupCoachLink{
			GroupID:   c.GroupID,
			CoachID:   c.CoachID,
			IsHead:    c.IsHead,
			CreatedAt: c.CreatedAt,
		}
	}
	return links, nil
}

func (r *Repository) dbGroupToModel(g db.Group) *models.Group {
	return &models.Group{
		ID:             g.ID,
		OrganizationID: g.OrganizationID,
		Name:           g.Name,
		Active:         g.Active,
		HeadCoachID:    sqlutil.FromNullUUID(g.HeadCoachID),
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}
