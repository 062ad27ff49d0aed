package config

// File represents the structure of the crate.yaml configuration file.
type File struct {
	Listen           string     `yaml:"listen"`
	BundleDir        string     `yaml:"bundle_dir"`
	RetentionSeconds int        `yaml:"retention_seconds"`
	Loaders          []string   `yaml:"loaders"`
	Catalog          CatalogDTO `yaml:"catalog"`
}

// CatalogDTO configures the upstream catalog client.
type CatalogDTO struct {
	EndpointV2     string `yaml:"endpoint_v2"`
	EndpointV3     string `yaml:"endpoint_v3"`
	Contact        string `yaml:"contact"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}
