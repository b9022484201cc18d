package schedule

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// ResolveTargets computes the effective audience of one event for one group.
// It is a pure function of the scopes and the snapshot: re-resolving the
// same inputs always yields the same sorted, duplicate-free sets.
//
// Players resolve against the group's player links; selected ids outside the
// group are silently dropped. Coaches resolve club-wide when targeted
// explicitly and fall back to the group's own coach set by default. Parents
// resolve against the organization's active parent memberships, and every
// guardian with view rights on a resolved player is added whenever the
// parent scope is not NONE, selected or not.
func ResolveTargets(scopes AudienceScopes, snap GroupSnapshot) TargetSet {
	players := resolvePlayers(scopes.Players, snap)
	coaches := resolveCoaches(scopes.Coaches, snap)
	parents := resolveParents(scopes.Parents, players, snap)
	return TargetSet{
		Players: players,
		Coaches: coaches,
		Parents: parents,
	}
}

func resolvePlayers(scope Scope, snap GroupSnapshot) []uuid.UUID {
	switch scope.Mode {
	case ScopeModeAll:
		return sortedUnique(snap.GroupPlayerIDs)
	case ScopeModeSelected:
		return intersect(scope.IDs, snap.GroupPlayerIDs)
	default:
		return nil
	}
}

func resolveCoaches(scope Scope, snap GroupSnapshot) []uuid.UUID {
	switch scope.Mode {
	case ScopeModeAll:
		// Club-wide on purpose; coach targeting is broader than player
		// targeting.
		return sortedUnique(snap.OrgCoachIDs)
	case ScopeModeSelected:
		return intersect(scope.IDs, snap.OrgCoachIDs)
	case ScopeModeNone:
		return nil
	default:
		return sortedUnique(snap.GroupCoachIDs)
	}
}

func resolveParents(scope Scope, players []uuid.UUID, snap GroupSnapshot) []uuid.UUID {
	var parents []uuid.UUID
	switch scope.Mode {
	case ScopeModeAll:
		parents = snap.OrgParentIDs
	case ScopeModeSelected:
		parents = intersect(scope.IDs, snap.OrgParentIDs)
	default:
		return nil
	}

	// Guardian expansion: viewing guardians of targeted players ride along
	// with any non-NONE parent scope.
	for _, playerID := range players {
		parents = append(parents, snap.Guardians[playerID]...)
	}
	return sortedUnique(parents)
}

// intersect keeps the ids present in both slices, sorted and deduplicated
func intersect(ids, allowed []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 || len(allowed) == 0 {
		return nil
	}
	member := make(map[uuid.UUID]bool, len(allowed))
	for _, id := range allowed {
		member[id] = true
	}
	var out []uuid.UUID
	for _, id := range ids {
		if member[id] {
			out = append(out, id)
		}
	}
	return sortedUnique(out)
}

func unionSorted(a, b []uuid.UUID) []uuid.UUID {
	merged := make([]uuid.UUID, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return sortedUnique(merged)
}

func sortedUnique(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	deduped := out[:1]
	for _, id := range out[1:] {
		if id != deduped[len(deduped)-1] {
			deduped = append(deduped, id)
		}
	}
	return deduped
}
