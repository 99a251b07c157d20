// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the tablegrab pipeline.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "tablegrab/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the download stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ExtractConfig holds settings for table recovery from PDF pages.
type ExtractConfig struct {
	// RowTolerance is the maximum Y distance (in points) between text
	// fragments grouped into the same row (default 2.0).
	RowTolerance float64 `json:"row_tolerance" yaml:"row_tolerance"`

	// MinGapWidth is the minimum horizontal whitespace (in points) that
	// separates two columns (default 10.0).
	MinGapWidth float64 `json:"min_gap_width" yaml:"min_gap_width"`

	// MinColumns is the minimum number of populated columns a row needs
	// before a page is considered to contain a table (default 2).
	MinColumns int `json:"min_columns" yaml:"min_columns"`
}

// OutputConfig holds settings for CSV output.
type OutputConfig struct {
	// WriteManifest controls whether a YAML manifest sidecar is written
	// next to the CSV file.
	WriteManifest bool `json:"write_manifest" yaml:"write_manifest"`
}

// HistoryConfig holds settings for the run-history store.
type HistoryConfig struct {
	// DBPath is the SQLite database location. Empty means the default
	// under the user data directory.
	DBPath string `json:"db_path" yaml:"db_path"`

	// Disabled turns off run recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`

	// MaxResults is the default maximum number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Extract ExtractConfig `json:"extract" yaml:"extract"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	History HistoryConfig `json:"history" yaml:"history"`
}
