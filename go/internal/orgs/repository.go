package orgs

import (
	"context"
	"fmt"

	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/clubdesk/clubdesk/go/internal/orgs/db"
	"github.com/google/uuid"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateOrganization(ctx context.Context, name string) (db.Organization, error)
	GetOrganization(ctx context.Context, id uuid.UUID) (db.Organization, error)
	ListOrganizations(ctx context.Context) ([]db.Organization, error)
	RenameOrganization(ctx context.Context, arg db.RenameOrganizationParams) (db.Organization, error)
}

// Repository implements organization data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new orgs repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateOrganization creates a new organization
func (r *Repository) CreateOrganization(ctx context.Context, name string) (*models.Organization, error) {
	org, err := r.queries.CreateOrganization(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return r.dbOrganizationToModel(org), nil
}

// GetOrganization retrieves an organization by ID
func (r *Repository) GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	org, err := r.queries.GetOrganization(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return r.dbOrganizationToModel(org), nil
}

// ListOrganizations retrieves all organizations
func (r *Repository) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs, err := r.queries.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	out := make([]models.Organization, len(orgs))
	for i, o := range orgs {
		out[i] = *r.dbOrganizationToModel(o)
	}
	return out, nil
}

// RenameOrganization updates an organization's name
func (r *Repository) RenameOrganization(ctx context.Context, id uuid.UUID, name string) (*models.Organization, error) {
	org, err := r.queries.RenameOrganization(ctx, db.RenameOrganizationParams{
		ID:   id,
		Name: name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rename organization: %w", err)
	}
	return r.dbOrganizationToModel(org), nil
}

// dbOrganizationToModel converts a database organization to domain model
func (r *Repository) dbOrganizationToModel(dbOrg db.Organization) *models.Organization {
	return &models.Organization{
		ID:        dbOrg.ID,
		Name:      dbOrg.Name,
		CreatedAt: dbOrg.CreatedAt,
		UpdatedAt: dbOrg.UpdatedAt,
	}
}
