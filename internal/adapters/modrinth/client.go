// Package modrinth implements the catalog port against the Modrinth HTTP API.
package modrinth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.trai.ch/crate/internal/build"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/zerr"
)

// Client implements ports.Catalog with pooled connections and per-request
// timeouts. The API asks integrations to identify themselves, so the
// User-Agent carries the binary name, version and a contact address.
type Client struct {
	v2     string
	v3     string
	client *http.Client
	agent  string
}

// NewClient creates a catalog client from the given configuration.
func NewClient(cfg domain.CatalogConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultCatalogTimeout
	}

	transport := &http.Transport{
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	agent := "crate/" + build.Version
	if cfg.Contact != "" {
		agent += " (" + cfg.Contact + ")"
	}

	return &Client{
		v2: strings.TrimSuffix(cfg.EndpointV2, "/"),
		v3: strings.TrimSuffix(cfg.EndpointV3, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		agent: agent,
	}
}

// GetCollection fetches a collection by id from the v3 API.
func (c *Client) GetCollection(ctx context.Context, id string) (*domain.Collection, error) {
	var dto collectionDTO
	if err := c.getJSON(ctx, c.v3+"/collection/"+url.PathEscape(id), &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// GetProject fetches a project by id or slug from the v2 API.
func (c *Client) GetProject(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	var dto projectDTO
	if err := c.getJSON(ctx, c.v2+"/project/"+url.PathEscape(string(id)), &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// GetProjectVersions lists a project's releases filtered by loaders and game
// versions. The filters are JSON-array query parameters on the v2 API.
func (c *Client) GetProjectVersions(ctx context.Context, slug string, loaders, gameVersions []string) ([]domain.Release, error) {
	q := url.Values{}
	if len(loaders) > 0 {
		q.Set("loaders", jsonStringArray(loaders))
	}
	if len(gameVersions) > 0 {
		q.Set("game_versions", jsonStringArray(gameVersions))
	}

	endpoint := c.v2 + "/project/" + url.PathEscape(slug) + "/version"
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var dtos []versionDTO
	if err := c.getJSON(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}

	releases := make([]domain.Release, len(dtos))
	for i := range dtos {
		releases[i] = dtos[i].toDomain()
	}
	return releases, nil
}

// DownloadFile fetches the raw bytes of a release file from its CDN URL.
func (c *Client) DownloadFile(ctx context.Context, fileURL string) ([]byte, error) {
	resp, err := c.get(ctx, fileURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrDownloadFailed.Error()),
			"url", fileURL,
		)
	}
	return data, nil
}

// getJSON issues a GET and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrCatalogDecodeFailed.Error()),
			"url", endpoint,
		)
	}
	return nil
}

// get issues a GET request and maps status codes onto the error taxonomy:
// 404 is domain.ErrNotFound, any other non-2xx is a catalog request failure.
func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCatalogRequestFailed.Error())
	}
	req.Header.Set("User-Agent", c.agent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrCatalogRequestFailed.Error()),
			"url", endpoint,
		)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, zerr.With(
			zerr.Wrap(domain.ErrNotFound, "catalog lookup failed"),
			"url", endpoint,
		)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		resp.Body.Close()
		err := zerr.Wrap(domain.ErrCatalogRequestFailed, "unexpected response status")
		err = zerr.With(err, "url", endpoint)
		err = zerr.With(err, "status", fmt.Sprintf("%d", resp.StatusCode))
		return nil, err
	}

	return resp, nil
}

// jsonStringArray renders the filter format the API expects: ["a","b"].
func jsonStringArray(values []string) string {
	data, _ := json.Marshal(values)
	return string(data)
}
