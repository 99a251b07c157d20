// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/tablegrab/internal/extract"
	"github.com/pdiddy/tablegrab/internal/fetch"
	"github.com/pdiddy/tablegrab/internal/history"
	"github.com/pdiddy/tablegrab/internal/output"
	"github.com/pdiddy/tablegrab/internal/pagespec"
	"github.com/pdiddy/tablegrab/internal/table"
	"github.com/pdiddy/tablegrab/pkg/types"
)

// newExtractor builds the table extractor. Tests swap in one backed by
// synthetic documents.
var newExtractor = func(cfg types.ExtractConfig) *extract.Extractor {
	return extract.New(cfg)
}

// pipelineOptions carries the per-invocation settings shared by the extract
// and dump subcommands.
type pipelineOptions struct {
	pdfURL    string
	pages     string
	outputCSV string

	headerSpec table.HeaderSpec

	timeout  time.Duration
	manifest bool
}

func fetchConfig(timeout time.Duration) types.FetchConfig {
	if timeout == 0 {
		timeout = viper.GetDuration("fetch.timeout")
	}
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: viper.GetString("fetch.user_agent"),
		},
		MaxRetries: viper.GetInt("fetch.max_retries"),
	}
}

func extractConfig() types.ExtractConfig {
	return types.ExtractConfig{
		RowTolerance: viper.GetFloat64("extract.row_tolerance"),
		MinGapWidth:  viper.GetFloat64("extract.min_gap_width"),
		MinColumns:   viper.GetInt("extract.min_columns"),
	}
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		DBPath:     viper.GetString("history.db_path"),
		Disabled:   viper.GetBool("history.disabled"),
		MaxResults: viper.GetInt("history.max_results"),
	}
}

// runPipeline executes one download-extract-normalize-write cycle. Every
// failure is terminal; the run record is best-effort.
func runPipeline(ctx context.Context, opts pipelineOptions, out, errOut io.Writer) error {
	start := time.Now()

	spec, err := pagespec.Parse(opts.pages)
	if err != nil {
		return fmt.Errorf("parsing pages: %w", err)
	}

	cfg := fetchConfig(opts.timeout)
	client := &http.Client{Timeout: cfg.Timeout}

	pdfPath, cleanup, err := fetch.Download(ctx, client, opts.pdfURL, cfg, out)
	if err != nil {
		return fmt.Errorf("downloading PDF: %w", err)
	}
	defer cleanup()

	extractor := newExtractor(extractConfig())
	tables, err := extractor.Tables(pdfPath, spec, out)
	if err != nil {
		return err
	}

	normalized := make([]*table.NormalizedTable, len(tables))
	for i, t := range tables {
		if opts.headerSpec.HeaderRows > 0 {
			fmt.Fprintf(out, "Applying %d header row(s) to table %d (flatten=%v)\n",
				opts.headerSpec.HeaderRows, i+1, opts.headerSpec.Flatten)
		}
		normalized[i] = table.Normalize(t, opts.headerSpec)
	}

	sep := opts.headerSpec.Separator
	if sep == "" {
		sep = table.DefaultSeparator
	}
	rows, err := output.Write(opts.outputCSV, normalized, sep)
	if err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	fmt.Fprintf(out, "Tables extracted and saved to: %s\n", opts.outputCSV)
	fmt.Fprintf(out, "Total rows extracted: %d\n", rows)

	run := types.Run{
		SourceURL:  opts.pdfURL,
		Pages:      opts.pages,
		OutputPath: opts.outputCSV,
		Tables:     len(tables),
		Rows:       rows,
		HeaderRows: opts.headerSpec.HeaderRows,
		Duration:   time.Since(start),
		StartedAt:  start,
	}

	if opts.manifest {
		if err := output.WriteManifest(opts.outputCSV, run, output.Summarize(normalized)); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
	}

	recordRun(run, errOut)
	return nil
}

// recordRun appends the run to the history store. Failures are warnings;
// a finished extraction never fails because bookkeeping did.
func recordRun(run types.Run, errOut io.Writer) {
	cfg := historyConfig()
	if cfg.Disabled {
		return
	}

	store, err := history.Open(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "warning: could not open history store: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(run); err != nil {
		fmt.Fprintf(errOut, "warning: could not record run: %v\n", err)
	}
}
