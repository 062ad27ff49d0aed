package modrinth

import (
	"time"

	"go.trai.ch/crate/internal/core/domain"
)

// Wire DTOs for the Modrinth API. Collections live on the v3 API surface;
// projects and versions on v2. Only the fields the engine consumes are
// decoded.

type collectionDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	User        string   `json:"user"`
	Projects    []string `json:"projects"`
}

type projectDTO struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	GameVersions []string `json:"game_versions"`
}

type versionDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	VersionNumber string          `json:"version_number"`
	DatePublished time.Time       `json:"date_published"`
	Files         []versionFile   `json:"files"`
	Dependencies  []dependencyDTO `json:"dependencies"`
}

type versionFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Primary  bool   `json:"primary"`
}

type dependencyDTO struct {
	ProjectID      string `json:"project_id"`
	DependencyType string `json:"dependency_type"`
}

func (c *collectionDTO) toDomain() *domain.Collection {
	ids := make([]domain.ProjectID, len(c.Projects))
	for i, p := range c.Projects {
		ids[i] = domain.ProjectID(p)
	}
	return &domain.Collection{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Owner:       c.User,
		ProjectIDs:  ids,
	}
}

func (p *projectDTO) toDomain() *domain.Project {
	return &domain.Project{
		ID:           domain.ProjectID(p.ID),
		Slug:         p.Slug,
		Title:        p.Title,
		Description:  p.Description,
		GameVersions: p.GameVersions,
	}
}

func (v *versionDTO) toDomain() domain.Release {
	files := make([]domain.ReleaseFile, len(v.Files))
	for i, f := range v.Files {
		files[i] = domain.ReleaseFile{
			Filename: f.Filename,
			URL:      f.URL,
			Primary:  f.Primary,
		}
	}

	deps := make([]domain.Dependency, 0, len(v.Dependencies))
	for _, d := range v.Dependencies {
		// Edges without a target project carry no traversal information.
		if d.ProjectID == "" {
			continue
		}
		deps = append(deps, domain.Dependency{
			ProjectID: domain.ProjectID(d.ProjectID),
			Kind:      parseDependencyKind(d.DependencyType),
		})
	}

	return domain.Release{
		ID:            v.ID,
		Name:          v.Name,
		VersionNumber: v.VersionNumber,
		Published:     v.DatePublished,
		Files:         files,
		Dependencies:  deps,
	}
}

// parseDependencyKind maps the wire spelling onto the closed domain variant.
// Unknown spellings are treated as optional so they never drag extra projects
// into a bundle.
func parseDependencyKind(s string) domain.DependencyKind {
	switch s {
	case "required":
		return domain.DependencyRequired
	case "optional":
		return domain.DependencyOptional
	case "incompatible":
		return domain.DependencyIncompatible
	case "embedded":
		return domain.DependencyEmbedded
	default:
		return domain.DependencyOptional
	}
}
