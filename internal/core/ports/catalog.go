// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/crate/internal/core/domain"
)

// Catalog is the upstream mod catalog. Implementations own transport
// concerns (retries, rate limits, auth); callers only distinguish
// domain.ErrNotFound from other failures.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type Catalog interface {
	// GetCollection fetches a named collection by id.
	// Returns domain.ErrNotFound if the collection does not exist.
	GetCollection(ctx context.Context, id string) (*domain.Collection, error)

	// GetProject fetches a project's metadata by id or slug.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id domain.ProjectID) (*domain.Project, error)

	// GetProjectVersions lists the releases of a project filtered by loaders
	// and game versions. An empty result is not an error.
	GetProjectVersions(ctx context.Context, slug string, loaders, gameVersions []string) ([]domain.Release, error)

	// DownloadFile fetches the raw bytes of a release file.
	DownloadFile(ctx context.Context, url string) ([]byte, error)
}
