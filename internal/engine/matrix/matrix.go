// Package matrix builds the game-version compatibility matrix for a set of
// fetched projects.
package matrix

import (
	"sort"

	"go.trai.ch/crate/internal/core/domain"
)

// Entry pairs an indexed project with its key.
type Entry struct {
	Key     domain.ProjectKey
	Project *domain.Project
}

// Group is the set of projects declaring support for one canonical game
// version.
type Group struct {
	Version  domain.GameVersion
	Projects map[domain.ProjectKey]struct{}
}

// Contains reports whether the group holds the given project key.
func (g *Group) Contains(key domain.ProjectKey) bool {
	_, ok := g.Projects[key]
	return ok
}

// Coverage is the share of the collection's projects present in the group.
func (g *Group) Coverage(total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(len(g.Projects)) / float64(total)
}

// Build groups project keys by every canonical version their raw labels
// canonicalize to. Labels that fail to parse are silently excluded from that
// version group; the project itself stays in every group it does parse into.
// Groups are ordered by size descending, ties broken by the insertion order
// of the first-seen version so the ranking is stable.
func Build(entries []Entry) []Group {
	byVersion := make(map[domain.GameVersion]int)
	var groups []Group

	for _, e := range entries {
		for _, label := range e.Project.GameVersions {
			version, err := domain.ParseGameVersion(label)
			if err != nil {
				continue
			}

			idx, ok := byVersion[version]
			if !ok {
				idx = len(groups)
				byVersion[version] = idx
				groups = append(groups, Group{
					Version:  version,
					Projects: make(map[domain.ProjectKey]struct{}, 1),
				})
			}
			groups[idx].Projects[e.Key] = struct{}{}
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Projects) > len(groups[j].Projects)
	})

	return groups
}

// Find returns the group for an exact canonical version, if present.
func Find(groups []Group, version domain.GameVersion) (Group, bool) {
	for _, g := range groups {
		if g.Version == version {
			return g, true
		}
	}
	return Group{}, false
}

// Keys returns the group's project keys in ascending key order. Insertion
// order inside a set is meaningless, so a deterministic order keeps output
// and tests stable.
func (g *Group) Keys() []domain.ProjectKey {
	keys := make([]domain.ProjectKey, 0, len(g.Projects))
	for k := range g.Projects {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
