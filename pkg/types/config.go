// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ExtractBackend identifies the PDF text extraction library.
type ExtractBackend string

const (
	BackendLedongthuc ExtractBackend = "ledongthuc"
	BackendDslipak    ExtractBackend = "dslipak"
)

// ParseConfig holds settings for the parse stage.
type ParseConfig struct {
	// InputDir is the directory holding the source manual PDFs.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the destination directory for generated JSON files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Backend selects the text extraction library: ledongthuc or dslipak.
	Backend ExtractBackend `json:"backend" yaml:"backend"`

	// ManifestPath optionally points to a YAML manual-metadata manifest.
	// When empty the built-in metadata for the three known manuals is used.
	ManifestPath string `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`

	// Validate controls whether assembled JSON is checked against the
	// bovest schema before writing.
	Validate bool `json:"validate" yaml:"validate"`

	// ThemeWindow is the number of pages scanned after a theme's anchor
	// page for criteria and tasks (default 40).
	ThemeWindow int `json:"theme_window" yaml:"theme_window"`
}

// FetchConfig holds settings for downloading the hosted manual PDFs.
type FetchConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with download requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// DownloadDelay is the delay between consecutive downloads (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// InputDir is where downloaded PDFs are stored (the parse input dir).
	InputDir string `json:"input_dir" yaml:"input_dir"`
}

// CatalogConfig holds settings for the parse-run catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding the SQLite catalog database.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of listed runs (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
