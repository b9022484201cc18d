package members

import (
	"context"
	"testing"

	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMembersRepo struct {
	guardianLinks []models.GuardianLink
	memberships   map[models.Role][]uuid.UUID
}

func (f *fakeMembersRepo) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	return &models.User{ID: uuid.New(), FullName: req.FullName, Email: req.Email}, nil
}

func (f *fakeMembersRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return &models.User{ID: id}, nil
}

func (f *fakeMembersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, context.Canceled
}

func (f *fakeMembersRepo) UpsertMembership(ctx context.Context, orgID, userID uuid.UUID, role models.Role) (*models.Membership, error) {
	if f.memberships == nil {
		f.memberships = make(map[models.Role][]uuid.UUID)
	}
	f.memberships[role] = append(f.memberships[role], userID)
	return &models.Membership{OrganizationID: orgID, UserID: userID, Role: role, Active: true}, nil
}

func (f *fakeMembersRepo) DeactivateMembership(ctx context.Context, orgID, userID uuid.UUID, role models.Role) error {
	return nil
}

func (f *fakeMembersRepo) GetActiveMembership(ctx context.Context, orgID, userID uuid.UUID, role models.Role) (*models.Membership, error) {
	return nil, context.Canceled
}

func (f *fakeMembersRepo) ListActiveMemberIDsByRole(ctx context.Context, orgID uuid.UUID, role models.Role) ([]uuid.UUID, error) {
	return f.memberships[role], nil
}

func (f *fakeMembersRepo) CreateGuardianLink(ctx context.Context, req CreateGuardianLinkRequest) (*models.GuardianLink, error) {
	link := models.GuardianLink{
		PlayerID:   req.PlayerID,
		GuardianID: req.GuardianID,
		CanView:    req.CanView,
		CanEdit:    req.CanEdit,
		IsPrimary:  req.IsPrimary,
	}
	f.guardianLinks = append(f.guardianLinks, link)
	return &link, nil
}

func (f *fakeMembersRepo) ListViewingGuardiansForPlayers(ctx context.Context, playerIDs []uuid.UUID) ([]models.GuardianLink, error) {
	wanted := make(map[uuid.UUID]bool, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = true
	}
	var out []models.GuardianLink
	for _, l := range f.guardianLinks {
		if wanted[l.PlayerID] && l.CanView {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeOrgsRepo struct{}

func (fakeOrgsRepo) GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	return &models.Organization{ID: id}, nil
}

func TestLinkGuardian_RejectsSelfLink(t *testing.T) {
	app := NewApp(&fakeMembersRepo{}, fakeOrgsRepo{})
	id := uuid.New()

	_, err := app.LinkGuardian(context.Background(), CreateGuardianLinkRequest{
		PlayerID:   id,
		GuardianID: id,
		CanView:    true,
	})
	assert.Error(t, err)
}

func TestViewingGuardiansForPlayers(t *testing.T) {
	repo := &fakeMembersRepo{}
	app := NewApp(repo, fakeOrgsRepo{})

	player, hiddenPlayer := uuid.New(), uuid.New()
	guardian, blindGuardian := uuid.New(), uuid.New()

	_, err := app.LinkGuardian(context.Background(), CreateGuardianLinkRequest{
		PlayerID: player, GuardianID: guardian, CanView: true,
	})
	require.NoError(t, err)
	_, err = app.LinkGuardian(context.Background(), CreateGuardianLinkRequest{
		PlayerID: hiddenPlayer, GuardianID: blindGuardian, CanView: false,
	})
	require.NoError(t, err)

	got, err := app.ViewingGuardiansForPlayers(context.Background(), []uuid.UUID{player, hiddenPlayer})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{guardian}, got[player])
	assert.Empty(t, got[hiddenPlayer])
}

func TestAddMember_RejectsUnknownRole(t *testing.T) {
	app := NewApp(&fakeMembersRepo{}, fakeOrgsRepo{})

	_, err := app.AddMember(context.Background(), uuid.New(), uuid.New(), "REFEREE")
	assert.Error(t, err)
}
