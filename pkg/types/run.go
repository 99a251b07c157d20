// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Run records one completed extraction: where the PDF came from, which pages
// were requested, and what was written. The history store persists Runs and
// the manifest sidecar embeds one.
type Run struct {
	// SourceURL is the URL the PDF was downloaded from.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// Pages is the page spec as given on the command line (e.g. "all", "1,3-5").
	Pages string `json:"pages" yaml:"pages"`

	// OutputPath is the CSV file the run produced.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Tables is the number of tables recovered from the requested pages.
	Tables int `json:"tables" yaml:"tables"`

	// Rows is the total number of data rows written (header lines excluded).
	Rows int `json:"rows" yaml:"rows"`

	// HeaderRows is the number of rows per table treated as headers.
	HeaderRows int `json:"header_rows" yaml:"header_rows"`

	// Duration is the wall-clock time of the whole run.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
}
