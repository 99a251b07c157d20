// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the source PDF to a temporary file.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/pdiddy/tablegrab/internal/httputil"
	"github.com/pdiddy/tablegrab/pkg/types"
)

// Download fetches url into a temporary file and returns its path together
// with a cleanup func that removes it. The cleanup func is non-nil on every
// successful return and must be deferred by the caller; on error nothing is
// left behind.
func Download(ctx context.Context, client *http.Client, url string, cfg types.FetchConfig, w io.Writer) (string, func(), error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	fmt.Fprintf(w, "Downloading PDF from: %s\n", url)

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return "", nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp("", "tablegrab-*.pdf")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return "", nil, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return tmpPath, func() { os.Remove(tmpPath) }, nil
}
