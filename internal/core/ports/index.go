package ports

import "go.trai.ch/crate/internal/core/domain"

// ProjectIndex is the append-only, deduplicated store of fetched projects.
// Insert is the only mutator; it must be atomic with respect to concurrent
// reads. Keys are stable and never reused within an index instance.
//
//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type ProjectIndex interface {
	// Insert appends a project and returns its key. Inserting a project whose
	// id is already present returns the existing key without appending.
	Insert(p *domain.Project) domain.ProjectKey

	// Get returns the project for a key. The second result is false when the
	// key was never issued by this index.
	Get(key domain.ProjectKey) (*domain.Project, bool)

	// Lookup returns the key previously issued for a project id, if any.
	Lookup(id domain.ProjectID) (domain.ProjectKey, bool)

	// Len reports how many projects the index holds.
	Len() int
}
