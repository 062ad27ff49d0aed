// Package config provides the configuration loader for crate.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader reads crate.yaml and produces a domain.Config.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks upward from cwd looking for crate.yaml and returns the resolved
// configuration. A missing file is not an error: the defaults are returned so
// the service can run unconfigured.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, found := l.findConfiguration(cwd)
	if !found {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrConfigReadFailed.Error()),
			"path", path,
		)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrConfigParseFailed.Error()),
			"path", path,
		)
	}

	return resolve(&file), nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// resolve overlays the parsed file onto the defaults.
func resolve(file *File) *domain.Config {
	cfg := domain.DefaultConfig()

	if file.Listen != "" {
		cfg.ListenAddr = file.Listen
	}
	if file.BundleDir != "" {
		cfg.BundleDir = file.BundleDir
	}
	if file.RetentionSeconds > 0 {
		cfg.Retention = time.Duration(file.RetentionSeconds) * time.Second
	}
	if len(file.Loaders) > 0 {
		cfg.Loaders = file.Loaders
	}
	if file.Catalog.EndpointV2 != "" {
		cfg.Catalog.EndpointV2 = file.Catalog.EndpointV2
	}
	if file.Catalog.EndpointV3 != "" {
		cfg.Catalog.EndpointV3 = file.Catalog.EndpointV3
	}
	if file.Catalog.Contact != "" {
		cfg.Catalog.Contact = file.Catalog.Contact
	}
	if file.Catalog.TimeoutSeconds > 0 {
		cfg.Catalog.Timeout = time.Duration(file.Catalog.TimeoutSeconds) * time.Second
	}

	return cfg
}
