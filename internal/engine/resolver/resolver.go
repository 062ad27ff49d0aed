// Package resolver walks the required-dependency graph of a seed set of
// projects and picks one release per project for a target game version.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolved pairs a project with the release chosen for it.
type Resolved struct {
	Project *domain.Project
	Release domain.Release
}

// Resolver performs the depth-first traversal. It shares the project index
// with other resolutions but owns its per-run state exclusively.
type Resolver struct {
	catalog ports.Catalog
	index   ports.ProjectIndex
	logger  ports.Logger
	tracer  ports.Tracer
}

// New creates a Resolver with the given collaborators.
func New(catalog ports.Catalog, index ports.ProjectIndex, logger ports.Logger, tracer ports.Tracer) *Resolver {
	return &Resolver{
		catalog: catalog,
		index:   index,
		logger:  logger,
		tracer:  tracer,
	}
}

// frame is one pending traversal step. Depth is tracked for diagnostics only.
type frame struct {
	key   domain.ProjectKey
	depth int
}

// Resolve picks the best release for every reachable project that has one.
//
// The traversal is a LIFO work list with a terminal downloaded set, so
// diamond dependencies and cycles are visited at most once. Projects with no
// compatible release are skipped softly and memoized for the rest of the run;
// without the memo a cycle of unresolved projects could be re-queried
// indefinitely. Only catalog errors other than not-found fail the run.
func (r *Resolver) Resolve(ctx context.Context, seeds []domain.ProjectKey, gameVersion domain.GameVersion, loaders []string) ([]Resolved, error) {
	ctx, span := r.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("game_version", gameVersion.String())
	span.SetAttribute("seeds", len(seeds))

	frontier := make([]frame, 0, len(seeds))
	for _, key := range seeds {
		frontier = append(frontier, frame{key: key})
	}

	downloaded := make(map[domain.ProjectID]struct{})
	missing := make(map[domain.ProjectID]struct{})
	gameVersions := []string{gameVersion.String()}

	var out []Resolved

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return nil, err
		}

		f := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		// Copy the project out before any catalog call: holding an index
		// read lock across a call that inserts would deadlock.
		project, ok := r.index.Get(f.key)
		if !ok {
			err := zerr.With(
				zerr.Wrap(domain.ErrProjectNotIndexed, "cannot resolve seed"),
				"key", fmt.Sprintf("%d", int(f.key)),
			)
			span.RecordError(err)
			return nil, err
		}

		if _, done := downloaded[project.ID]; done {
			r.logger.Debug(indent(f.depth) + project.Title + " already downloaded")
			continue
		}
		if _, miss := missing[project.ID]; miss {
			continue
		}

		releases, err := r.catalog.GetProjectVersions(ctx, project.Slug, loaders, gameVersions)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				missing[project.ID] = struct{}{}
				r.logger.Debug(indent(f.depth) + "nothing found for " + project.Title)
				continue
			}
			span.RecordError(err)
			return nil, zerr.Wrap(err, "failed to list versions for "+project.Slug)
		}
		if len(releases) == 0 {
			missing[project.ID] = struct{}{}
			r.logger.Debug(indent(f.depth) + "nothing found for " + project.Title + " (" + gameVersions[0] + ")")
			continue
		}

		best := bestRelease(releases)

		// A chosen release that cannot be materialized breaks the bundle
		// contract, so an empty file list is fatal rather than a skip.
		primary, err := best.PrimaryFile()
		if err != nil {
			err = zerr.Wrap(err, "failed to select a file for "+project.Slug)
			err = zerr.With(err, "release", best.ID)
			span.RecordError(err)
			return nil, err
		}

		r.logger.Debug(indent(f.depth) + project.Title + ": " + best.Name + " -> " + primary.Filename)

		out = append(out, Resolved{Project: project, Release: best})
		downloaded[project.ID] = struct{}{}

		for _, dep := range best.Dependencies {
			if dep.Kind != domain.DependencyRequired {
				continue
			}
			if _, done := downloaded[dep.ProjectID]; done {
				continue
			}
			if _, miss := missing[dep.ProjectID]; miss {
				continue
			}

			key, err := r.ensureIndexed(ctx, dep.ProjectID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					missing[dep.ProjectID] = struct{}{}
					r.logger.Warn("required dependency " + string(dep.ProjectID) + " does not exist, skipping")
					continue
				}
				span.RecordError(err)
				return nil, err
			}

			frontier = append(frontier, frame{key: key, depth: f.depth + 1})
		}
	}

	span.SetAttribute("resolved", len(out))
	return out, nil
}

// ensureIndexed returns the key of an already-indexed project or fetches and
// inserts it. No index lock is held across the fetch.
func (r *Resolver) ensureIndexed(ctx context.Context, id domain.ProjectID) (domain.ProjectKey, error) {
	if key, ok := r.index.Lookup(id); ok {
		return key, nil
	}

	project, err := r.catalog.GetProject(ctx, id)
	if err != nil {
		return 0, err
	}
	return r.index.Insert(project), nil
}

// bestRelease picks the release with the latest publish timestamp. Version
// labels are too inconsistently formatted to order releases by.
func bestRelease(releases []domain.Release) domain.Release {
	best := releases[0]
	for _, rel := range releases[1:] {
		if rel.Published.After(best.Published) {
			best = rel
		}
	}
	return best
}

func indent(depth int) string {
	s := ""
	for range depth {
		s += "  "
	}
	return s
}
