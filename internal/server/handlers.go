package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/crate/internal/app"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/engine/matrix"
)

type collectionResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Projects    []projectDTO   `json:"projects"`
	Versions    []versionGroup `json:"versions"`
	Unversioned []string       `json:"unversioned,omitempty"`
}

type projectDTO struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type versionGroup struct {
	Version  string   `json:"version"`
	Coverage float64  `json:"coverage"`
	Projects []string `json:"projects"`
}

type bundleResponse struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	cm, err := s.app.Matrix(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toCollectionResponse(cm))
}

func (s *Server) handleBundle(w http.ResponseWriter, r *http.Request) {
	version, err := domain.ParseGameVersion(r.URL.Query().Get("version"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid version: " + err.Error()})
		return
	}

	bundle, err := s.app.Bundle(r.Context(), r.PathValue("id"), version)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, bundleResponse{
		Name:      bundle.Name,
		URL:       "/bundles/" + bundle.Name,
		ExpiresAt: bundle.ExpiresAt,
	})
}

// bundleFileHandler serves assembled archives from the bundle directory.
// Expired bundles are removed from disk by the assembler, so they naturally
// come back as 404 here.
func (s *Server) bundleFileHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean(r.URL.Path)
		if name == "." || strings.Contains(name, "/") || !strings.HasSuffix(name, domain.BundleExt) {
			http.NotFound(w, r)
			return
		}

		full := filepath.Join(s.cfg.BundleDir, name)
		if _, err := os.Stat(full); err != nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		http.ServeFile(w, r, full)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error(err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrVersionNotAvailable):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		s.logger.Error(err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func toCollectionResponse(cm *app.CollectionMatrix) collectionResponse {
	resp := collectionResponse{
		ID:          cm.Collection.ID,
		Name:        cm.Collection.Name,
		Description: cm.Collection.Description,
		Projects:    make([]projectDTO, 0, len(cm.Entries)),
		Versions:    make([]versionGroup, 0, len(cm.Groups)),
	}

	grouped := map[domain.ProjectKey]struct{}{}
	for _, g := range cm.Groups {
		vg := versionGroup{
			Version:  g.Version.String(),
			Coverage: g.Coverage(len(cm.Entries)),
			Projects: make([]string, 0, len(g.Projects)),
		}
		for _, key := range g.Keys() {
			grouped[key] = struct{}{}
			if p := findEntry(cm.Entries, key); p != nil {
				vg.Projects = append(vg.Projects, p.Slug)
			}
		}
		resp.Versions = append(resp.Versions, vg)
	}

	for _, e := range cm.Entries {
		resp.Projects = append(resp.Projects, projectDTO{
			ID:    string(e.Project.ID),
			Slug:  e.Project.Slug,
			Title: e.Project.Title,
		})
		if _, ok := grouped[e.Key]; !ok {
			resp.Unversioned = append(resp.Unversioned, e.Project.Slug)
		}
	}

	return resp
}

func findEntry(entries []matrix.Entry, key domain.ProjectKey) *domain.Project {
	for _, e := range entries {
		if e.Key == key {
			return e.Project
		}
	}
	return nil
}
