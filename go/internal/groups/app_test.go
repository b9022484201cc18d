package groups

import (
	"context"
	"fmt"
	"testing"

	"github.com/clubdesk/clubdesk/go/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroupsRepo struct {
	groups     map[uuid.UUID]*models.Group
	coachLinks map[uuid.UUID][]models.GroupCoachLink
	playerIDs  map[uuid.UUID][]uuid.UUID
}

func newFakeGroupsRepo() *fakeGroupsRepo {
	return &fakeGroupsRepo{
		groups:     make(map[uuid.UUID]*models.Group),
		coachLinks: make(map[uuid.UUID][]models.GroupCoachLink),
		playerIDs:  make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeGroupsRepo) CreateGroup(ctx context.Context, req CreateGroupRequest) (*models.Group, error) {
	group := &models.Group{
		ID:             uuid.New(),
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Active:         true,
		HeadCoachID:    req.HeadCoachID,
	}
	f.groups[group.ID] = group
	return group, nil
}

func (f *fakeGroupsRepo) GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	group, ok := f.groups[id]
	if !ok {
		return nil, fmt.Errorf("no such group")
	}
	return group, nil
}

func (f *fakeGroupsRepo) ListGroupsByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Group, error) {
	var out []models.Group
	for _, g := range f.groups {
		if g.OrganizationID == orgID && !g.IsArchive() {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGroupsRepo) SetHeadCoach(ctx context.Context, groupID uuid.UUID, coachID *uuid.UUID) (*models.Group, error) {
	group := f.groups[groupID]
	group.HeadCoachID = coachID
	return group, nil
}

func (f *fakeGroupsRepo) LinkPlayer(ctx context.Context, groupID, playerID uuid.UUID) error {
	f.playerIDs[groupID] = append(f.playerIDs[groupID], playerID)
	return nil
}

func (f *fakeGroupsRepo) UnlinkPlayer(ctx context.Context, groupID, playerID uuid.UUID) error {
	return nil
}

func (f *fakeGroupsRepo) ListPlayerIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	return f.playerIDs[groupID], nil
}

func (f *fakeGroupsRepo) LinkCoach(ctx context.Context, groupID, coachID uuid.UUID, isHead bool) error {
	f.coachLinks[groupID] = append(f.coachLinks[groupID], models.GroupCoachLink{
		GroupID: groupID,
		CoachID: coachID,
		IsHead:  isHead,
	})
	return nil
}

func (f *fakeGroupsRepo) UnlinkCoach(ctx context.Context, groupID, coachID uuid.UUID) error {
	return nil
}

func (f *fakeGroupsRepo) ListCoachLinks(ctx context.Context, groupID uuid.UUID) ([]models.GroupCoachLink, error) {
	return f.coachLinks[groupID], nil
}

type fakeOrgsRepo struct{}

func (fakeOrgsRepo) GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	return &models.Organization{ID: id, Name: "Test Club"}, nil
}

func TestCoachesOfGroup_SynthesizesHeadCoach(t *testing.T) {
	repo := newFakeGroupsRepo()
	app := NewApp(repo, fakeOrgsRepo{})

	headCoach := uuid.New()
	assistant := uuid.New()
	group, err := app.CreateGroup(context.Background(), CreateGroupRequest{
		OrganizationID: uuid.New(),
		Name:           "Juniors A",
		HeadCoachID:    &headCoach,
	})
	require.NoError(t, err)
	require.NoError(t, repo.LinkCoach(context.Background(), group.ID, assistant, false))

	t.Run("head coach appears without a link row", func(t *testing.T) {
		coaches, err := app.CoachesOfGroup(context.Background(), group)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{headCoach, assistant}, coaches)
	})

	t.Run("no duplicate when a link row exists too", func(t *testing.T) {
		require.NoError(t, repo.LinkCoach(context.Background(), group.ID, headCoach, true))
		coaches, err := app.CoachesOfGroup(context.Background(), group)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{headCoach, assistant}, coaches)
	})
}

func TestListGroups_ExcludesArchive(t *testing.T) {
	repo := newFakeGroupsRepo()
	app := NewApp(repo, fakeOrgsRepo{})
	orgID := uuid.New()

	_, err := app.CreateGroup(context.Background(), CreateGroupRequest{OrganizationID: orgID, Name: "Juniors A"})
	require.NoError(t, err)
	_, err = app.CreateGroup(context.Background(), CreateGroupRequest{OrganizationID: orgID, Name: models.ArchiveGroupName})
	require.NoError(t, err)

	list, err := app.ListGroups(context.Background(), orgID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Juniors A", list[0].Name)
}

func TestCreateGroup_Validation(t *testing.T) {
	app := NewApp(newFakeGroupsRepo(), fakeOrgsRepo{})

	_, err := app.CreateGroup(context.Background(), CreateGroupRequest{OrganizationID: uuid.New()})
	assert.Error(t, err)

	_, err = app.CreateGroup(context.Background(), CreateGroupRequest{Name: "Juniors A"})
	assert.Error(t, err)
}
