// Package app implements the application layer for crate.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/crate/internal/engine/matrix"
	"go.trai.ch/crate/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// downloadParallelism bounds concurrent file downloads per bundle request.
const downloadParallelism = 4

// App wires the engine to its collaborators and exposes the operations the
// CLI and HTTP server share.
type App struct {
	catalog   ports.Catalog
	index     ports.ProjectIndex
	resolver  *resolver.Resolver
	assembler ports.Assembler
	logger    ports.Logger
	tracer    ports.Tracer
	cfg       *domain.Config
}

// New creates a new App instance.
func New(
	catalog ports.Catalog,
	index ports.ProjectIndex,
	res *resolver.Resolver,
	assembler ports.Assembler,
	log ports.Logger,
	tracer ports.Tracer,
	cfg *domain.Config,
) *App {
	return &App{
		catalog:   catalog,
		index:     index,
		resolver:  res,
		assembler: assembler,
		logger:    log,
		tracer:    tracer,
		cfg:       cfg,
	}
}

// Config exposes the resolved runtime configuration.
func (a *App) Config() *domain.Config {
	return a.cfg
}

// CollectionMatrix is a fetched collection together with its compatibility
// matrix.
type CollectionMatrix struct {
	Collection *domain.Collection
	Entries    []matrix.Entry
	Groups     []matrix.Group
}

// Matrix fetches a collection, indexes its projects and builds the ranked
// version-coverage matrix.
func (a *App) Matrix(ctx context.Context, collectionID string) (*CollectionMatrix, error) {
	ctx, span := a.tracer.Start(ctx, "matrix")
	defer span.End()
	span.SetAttribute("collection", collectionID)

	collection, entries, err := a.loadCollection(ctx, collectionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &CollectionMatrix{
		Collection: collection,
		Entries:    entries,
		Groups:     matrix.Build(entries),
	}, nil
}

// Bundle resolves the collection's projects for the given game version,
// downloads each chosen release's primary file and assembles the archive.
// The returned bundle expires after the configured retention window.
func (a *App) Bundle(ctx context.Context, collectionID string, gameVersion domain.GameVersion) (*domain.Bundle, error) {
	ctx, span := a.tracer.Start(ctx, "bundle")
	defer span.End()
	span.SetAttribute("collection", collectionID)
	span.SetAttribute("game_version", gameVersion.String())

	cm, err := a.Matrix(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	group, ok := matrix.Find(cm.Groups, gameVersion)
	if !ok {
		err := zerr.With(
			zerr.Wrap(domain.ErrVersionNotAvailable, "cannot bundle "+collectionID),
			"game_version", gameVersion.String(),
		)
		span.RecordError(err)
		return nil, err
	}

	resolved, err := a.resolver.Resolve(ctx, group.Keys(), gameVersion, a.cfg.Loaders)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	files, err := a.downloadFiles(ctx, resolved)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	bundle, err := a.assembler.Assemble(ctx, cm.Collection.Name, files)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("assembled bundle %s with %d files", bundle.Name, len(files)))
	return bundle, nil
}

// downloadFiles fetches every resolved release's primary file. Downloads fan
// out with bounded parallelism; archive-entry order stays the resolver's
// emission order regardless of completion order.
func (a *App) downloadFiles(ctx context.Context, resolved []resolver.Resolved) ([]domain.BundleFile, error) {
	files := make([]domain.BundleFile, len(resolved))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(downloadParallelism)

	for i, res := range resolved {
		g.Go(func() error {
			primary, err := res.Release.PrimaryFile()
			if err != nil {
				return zerr.With(
					zerr.Wrap(err, "failed to select a file"),
					"project", res.Project.Slug,
				)
			}

			data, err := a.catalog.DownloadFile(ctx, primary.URL)
			if err != nil {
				return zerr.With(
					zerr.Wrap(err, domain.ErrDownloadFailed.Error()),
					"file", primary.Filename,
				)
			}

			files[i] = domain.BundleFile{Name: primary.Filename, Data: data}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// loadCollection fetches a collection and indexes every project in it,
// reusing index entries from earlier requests.
func (a *App) loadCollection(ctx context.Context, collectionID string) (*domain.Collection, []matrix.Entry, error) {
	collection, err := a.catalog.GetCollection(ctx, collectionID)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]matrix.Entry, 0, len(collection.ProjectIDs))
	for _, id := range collection.ProjectIDs {
		key, ok := a.index.Lookup(id)
		if !ok {
			project, err := a.catalog.GetProject(ctx, id)
			if err != nil {
				return nil, nil, zerr.Wrap(err, "failed to fetch project "+string(id))
			}
			key = a.index.Insert(project)
		}

		project, ok := a.index.Get(key)
		if !ok {
			return nil, nil, zerr.With(
				zerr.Wrap(domain.ErrProjectNotIndexed, "collection entry vanished"),
				"id", string(id),
			)
		}
		entries = append(entries, matrix.Entry{Key: key, Project: project})
	}

	return collection, entries, nil
}
