// Package domain holds the core types of the crate bundling engine.
package domain

// ProjectID is the catalog's stable identifier for a project.
type ProjectID string

// ProjectKey is an opaque handle into the catalog index, valid for the
// lifetime of one index. Keys are monotonically increasing, never reused for
// a different project and never invalidated; they carry no meaning across
// index instances.
type ProjectKey int

// Project is the catalog metadata for one mod project. The raw game version
// labels are kept as-is; canonicalization happens where they are consumed.
// Projects are immutable once inserted into the catalog index.
type Project struct {
	ID           ProjectID
	Slug         string
	Title        string
	Description  string
	GameVersions []string
}

// Collection is a named set of projects fetched from the catalog.
type Collection struct {
	ID          string
	Name        string
	Description string
	Owner       string
	ProjectIDs  []ProjectID
}
