// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the hosted manual PDFs into the parse input
// directory.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/meshintel/manual-parser/internal/manifest"
	"github.com/meshintel/manual-parser/pkg/types"
)

// backoffBase controls the delay before a retried download. Tests override
// it to avoid real sleeps.
var backoffBase = 2 * time.Second

const maxRetries = 3

// BatchResult holds the outcome of a batch fetch run.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Total returns the total number of manuals processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any downloads failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// FetchManual downloads one manual's PDF into the input directory. A PDF
// that is already on disk is skipped. The skipped return value reports
// whether the download was skipped.
func FetchManual(client *http.Client, key string, meta manifest.ManualMeta, cfg types.FetchConfig, w io.Writer) (path string, skipped bool, err error) {
	if !strings.HasPrefix(meta.URLBase, "http") {
		return "", false, fmt.Errorf("manual %s has no downloadable URL (%q)", key, meta.URLBase)
	}

	name := manifest.OutputFileName(key)
	pdfPath := filepath.Join(cfg.InputDir, strings.TrimSuffix(name, ".json")+".pdf")

	if _, statErr := os.Stat(pdfPath); statErr == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", key)
		return pdfPath, true, nil
	}

	if err := os.MkdirAll(cfg.InputDir, 0o755); err != nil {
		return "", false, fmt.Errorf("creating input directory: %w", err)
	}

	fmt.Fprintf(w, "downloading: %s\n", key)
	if err := downloadFile(client, meta.URLBase, pdfPath, cfg); err != nil {
		return "", false, fmt.Errorf("downloading %s: %w", key, err)
	}
	return pdfPath, false, nil
}

// FetchAll downloads every manual in the manifest with a hosted URL,
// continuing after individual failures and pausing between downloads.
func FetchAll(client *http.Client, m *manifest.Manifest, cfg types.FetchConfig, w io.Writer) BatchResult {
	keys := make([]string, 0, len(m.Manuals))
	for key := range m.Manuals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var result BatchResult
	for i, key := range keys {
		if i > 0 && cfg.DownloadDelay > 0 {
			time.Sleep(cfg.DownloadDelay)
		}
		_, wasSkipped, err := FetchManual(client, key, m.Manuals[key], cfg, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", key, err)
			result.Failed++
			continue
		}
		if wasSkipped {
			result.Skipped++
		} else {
			result.Downloaded++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}

// downloadFile fetches url to destPath through a temporary file so a
// partial download never leaves a broken PDF behind. Rate-limit and
// server errors are retried with doubling backoff.
func downloadFile(client *http.Client, url, destPath string, cfg types.FetchConfig) error {
	resp, err := getWithRetry(client, url, cfg)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// getWithRetry issues the GET request, retrying HTTP 429 and 5xx responses
// with backoff doubling from backoffBase. The last response is returned
// after retries are exhausted so the caller can report its status.
func getWithRetry(client *http.Client, url string, cfg types.FetchConfig) (*http.Response, error) {
	delay := backoffBase
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		if cfg.UserAgent != "" {
			req.Header.Set("User-Agent", cfg.UserAgent)
		}
		req.Header.Set("Accept", "application/pdf")

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request: %w", err)
		}

		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		if !retryable || attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		time.Sleep(delay)
		delay *= 2
	}
}
