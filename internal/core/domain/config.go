package domain

import "time"

// Default configuration values.
const (
	// DefaultListenAddr is the address the HTTP server binds when unconfigured.
	DefaultListenAddr = ":8080"
	// DefaultBundleDir is the directory bundle archives are written to.
	DefaultBundleDir = "bundles"
	// ConfigFileName is the configuration file crate looks for.
	ConfigFileName = "crate.yaml"
	// DefaultCatalogV2 is the base URL for project and version lookups.
	DefaultCatalogV2 = "https://api.modrinth.com/v2"
	// DefaultCatalogV3 is the base URL for collection lookups.
	DefaultCatalogV3 = "https://api.modrinth.com/v3"
	// DefaultCatalogTimeout bounds a single catalog request.
	DefaultCatalogTimeout = 15 * time.Second
)

// DefaultLoaders are the mod-loader ecosystems releases are filtered by when
// the configuration does not name any.
func DefaultLoaders() []string {
	return []string{"fabric", "quilt"}
}

// Config is the resolved runtime configuration.
type Config struct {
	ListenAddr string
	BundleDir  string
	Retention  time.Duration
	Loaders    []string
	Catalog    CatalogConfig
}

// CatalogConfig configures the upstream catalog client.
type CatalogConfig struct {
	EndpointV2 string
	EndpointV3 string
	Contact    string
	Timeout    time.Duration
}

// DefaultConfig returns the configuration used when no crate.yaml is found.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: DefaultListenAddr,
		BundleDir:  DefaultBundleDir,
		Retention:  DefaultRetention,
		Loaders:    DefaultLoaders(),
		Catalog: CatalogConfig{
			EndpointV2: DefaultCatalogV2,
			EndpointV3: DefaultCatalogV3,
			Timeout:    DefaultCatalogTimeout,
		},
	}
}
