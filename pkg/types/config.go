package types

import "time"

// CatalogConfig holds settings for loading the catalog.
type CatalogConfig struct {
	// Path is the CSV file holding one close-approach record per row.
	// An http:// or https:// URL is downloaded before loading.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// Timeout bounds a remote catalog download (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// Retries is the number of retries for throttled or unavailable
	// remote catalogs (default 3).
	Retries int `json:"retries" yaml:"retries" mapstructure:"retries"`
}

// QueryConfig holds defaults applied to queries that do not set them.
type QueryConfig struct {
	// Number is the default maximum number of results (default 10).
	Number int `json:"number" yaml:"number" mapstructure:"number"`

	// ReturnObject is the default projection: NEO or Path.
	ReturnObject string `json:"return_object" yaml:"return_object" mapstructure:"return_object"`
}

// OutputConfig holds settings for writing query results.
type OutputConfig struct {
	// Format selects the writer: display, csv_file, json_file, yaml_file or sqlite_file.
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Path is the target file for the file-based formats.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	// Verbose enables debug-level logs.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

// Config groups all neo-engine settings.
type Config struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Query   QueryConfig   `json:"query" yaml:"query" mapstructure:"query"`
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
