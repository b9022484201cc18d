package orgs

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
)

// OrgsRepository defines what the app layer needs from the repository
type OrgsRepository interface {
	CreateOrganization(ctx context.Context, name string) (*models.Organization, error)
	GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	ListOrganizations(ctx context.Context) ([]models.Organization, error)
	RenameOrganization(ctx context.Context, id uuid.UUID, name string) (*models.Organization, error)
}

// App handles organization business logic
type App struct {
	repo OrgsRepository
}

// NewApp creates a new orgs App
func NewApp(repo OrgsRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateOrganization creates a new organization with validation
func (a *App) CreateOrganization(ctx context.Context, name string) (*models.Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("validation failed: name is required")
	}

	org, err := a.repo.CreateOrganization(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	log.Printf("Created organization: %s", org.Name)
	return org, nil
}

// GetOrganization retrieves an organization by ID
func (a *App) GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	org, err := a.repo.GetOrganization(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// ListOrganizations retrieves all organizations
func (a *App) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs, err := a.repo.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

// RenameOrganization updates only the name of an organization
func (a *App) RenameOrganization(ctx context.Context, id uuid.UUID, name string) (*models.Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("validation failed: name is required")
	}

	// Verify organization exists
	_, err := a.repo.GetOrganization(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("organization not found: %w", err)
	}

	org, err := a.repo.RenameOrganization(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("failed to rename organization: %w", err)
	}

	log.Printf("Renamed organization %s to %s", id, org.Name)
	return org, nil
}
