package domain

import "time"

// DependencyKind classifies a dependency edge between a release and a project.
// The set is closed: the catalog only emits these four kinds, and only
// Required affects traversal. The others are preserved so future policy
// changes do not silently mis-filter.
type DependencyKind int

const (
	// DependencyRequired marks a dependency that must be bundled alongside the release.
	DependencyRequired DependencyKind = iota
	// DependencyOptional marks a dependency the release can work without.
	DependencyOptional
	// DependencyIncompatible marks a project the release cannot coexist with.
	DependencyIncompatible
	// DependencyEmbedded marks a dependency already shipped inside the release file.
	DependencyEmbedded
)

// String returns the catalog's wire spelling of the kind.
func (k DependencyKind) String() string {
	switch k {
	case DependencyRequired:
		return "required"
	case DependencyOptional:
		return "optional"
	case DependencyIncompatible:
		return "incompatible"
	case DependencyEmbedded:
		return "embedded"
	default:
		return "unknown"
	}
}

// Dependency is one edge from a release to another project. Version
// constraints on the edge are deliberately ignored; the requirement kind is
// the only input to traversal.
type Dependency struct {
	ProjectID ProjectID
	Kind      DependencyKind
}

// ReleaseFile is one downloadable artifact within a release.
type ReleaseFile struct {
	Filename string
	URL      string
	Primary  bool
}

// Release is a fetched version record for one project.
type Release struct {
	ID            string
	Name          string
	VersionNumber string
	Published     time.Time
	Files         []ReleaseFile
	Dependencies  []Dependency
}

// PrimaryFile selects the distribution file for the release: the file flagged
// primary, falling back to the first file when none is flagged. A release
// with zero files yields ErrReleaseNoFiles.
func (r *Release) PrimaryFile() (ReleaseFile, error) {
	for _, f := range r.Files {
		if f.Primary {
			return f, nil
		}
	}
	if len(r.Files) == 0 {
		return ReleaseFile{}, ErrReleaseNoFiles
	}
	return r.Files[0], nil
}
