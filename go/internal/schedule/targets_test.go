package schedule

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	p1 = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	p2 = uuid.MustParse("00000000-0000-4000-8000-000000000002")
	p3 = uuid.MustParse("00000000-0000-4000-8000-000000000003")
	c1 = uuid.MustParse("00000000-0000-4000-8000-000000000011")
	c2 = uuid.MustParse("00000000-0000-4000-8000-000000000012")
	c3 = uuid.MustParse("00000000-0000-4000-8000-000000000013")
	g1 = uuid.MustParse("00000000-0000-4000-8000-000000000021")
	g2 = uuid.MustParse("00000000-0000-4000-8000-000000000022")
)

func testSnapshot() GroupSnapshot {
	return GroupSnapshot{
		GroupPlayerIDs: []uuid.UUID{p1, p2},
		GroupCoachIDs:  []uuid.UUID{c1},
		OrgCoachIDs:    []uuid.UUID{c1, c2, c3},
		OrgParentIDs:   []uuid.UUID{g1, g2},
		Guardians: map[uuid.UUID][]uuid.UUID{
			p1: {g1},
		},
	}
}

func TestResolveTargets_Players(t *testing.T) {
	snap := testSnapshot()

	t.Run("all resolves to group player links", func(t *testing.T) {
		got := ResolveTargets(AudienceScopes{Players: ScopeAll()}, snap)
		assert.ElementsMatch(t, []uuid.UUID{p1, p2}, got.Players)
	})

	t.Run("selected drops ids outside the group", func(t *testing.T) {
		got := ResolveTargets(AudienceScopes{Players: ScopeSelected(p1, p3)}, snap)
		assert.Equal(t, []uuid.UUID{p1}, got.Players)
	})

	t.Run("none and default are empty", func(t *testing.T) {
		assert.Empty(t, ResolveTargets(AudienceScopes{Players: ScopeNone()}, snap).Players)
		assert.Empty(t, ResolveTargets(AudienceScopes{}, snap).Players)
	})
}

func TestResolveTargets_Coaches(t *testing.T) {
	snap := testSnapshot()

	t.Run("all is club wide", func(t *testing.T) {
		got := ResolveTargets(AudienceScopes{Coaches: ScopeAll()}, snap)
		assert.ElementsMatch(t, []uuid.UUID{c1, c2, c3}, got.Coaches)
	})

	t.Run("selected intersects with active coach memberships", func(t *testing.T) {
		unknown := uuid.New()
		got := ResolveTargets(AudienceScopes{Coaches: ScopeSelected(c2, unknown)}, snap)
		assert.Equal(t, []uuid.UUID{c2}, got.Coaches)
	})

	t.Run("default falls back to the group coach set", func(t *testing.T) {
		got := ResolveTargets(AudienceScopes{}, snap)
		assert.Equal(t, []uuid.UUID{c1}, got.Coaches)
	})

	t.Run("none is empty", func(t *testing.T) {
		got := ResolveTargets(AudienceScopes{Coaches: ScopeNone()}, snap)
		assert.Empty(t, got.Coaches)
	})
}

func TestResolveTargets_GuardianExpansion(t *testing.T) {
	snap := testSnapshot()

	t.Run("guardian rides along with selected parent scope", func(t *testing.T) {
		// g1 is not in the selected list but guards the targeted p1.
		got := ResolveTargets(AudienceScopes{
			Players: ScopeAll(),
			Parents: ScopeSelected(g2),
		}, snap)
		assert.ElementsMatch(t, []uuid.UUID{g1, g2}, got.Parents)
	})

	t.Run("no expansion when parent scope is none", func(t *testing.T) {
		got := ResolveTargets(AudienceScopes{
			Players: ScopeAll(),
			Parents: ScopeNone(),
		}, snap)
		assert.Empty(t, got.Parents)
	})

	t.Run("no expansion for untargeted players", func(t *testing.T) {
		got := ResolveTargets(AudienceScopes{
			Players: ScopeSelected(p2),
			Parents: ScopeSelected(g2),
		}, snap)
		assert.Equal(t, []uuid.UUID{g2}, got.Parents)
	})
}

func TestResolveTargets_Deterministic(t *testing.T) {
	snap := testSnapshot()
	scopes := AudienceScopes{
		Players: ScopeSelected(p2, p1, p2),
		Coaches: ScopeAll(),
		Parents: ScopeAll(),
	}

	first := ResolveTargets(scopes, snap)
	second := ResolveTargets(scopes, snap)
	assert.Equal(t, first, second)

	// Sorted and duplicate free regardless of input order.
	assert.Equal(t, sortedUnique(first.Players), first.Players)
	assert.Equal(t, sortedUnique(first.Coaches), first.Coaches)
}

func TestTargetSet_Attendees(t *testing.T) {
	set := TargetSet{
		Players: []uuid.UUID{p1, p2},
		Parents: []uuid.UUID{g1, p1},
	}
	assert.ElementsMatch(t, []uuid.UUID{p1, p2, g1}, set.Attendees())
}
