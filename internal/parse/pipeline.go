// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/meshintel/manual-parser/internal/assemble"
	"github.com/meshintel/manual-parser/internal/manifest"
	"github.com/meshintel/manual-parser/internal/pdftext"
	"github.com/meshintel/manual-parser/pkg/types"
)

// defaultThemeWindow is the number of pages scanned after a theme's anchor
// page when the config does not say otherwise.
const defaultThemeWindow = 40

// Result summarizes one parsed manual.
type Result struct {
	Key        string
	Manual     *types.Manual
	SourcePDF  string
	OutputPath string
	ParsedAt   time.Time
	Themes     int
	Criteria   int
	Tasks      int
}

// BatchResult holds the outcome of a batch parse run.
type BatchResult struct {
	Parsed  int
	Failed  int
	Results []*Result
}

// Total returns the total number of PDFs processed.
func (r BatchResult) Total() int {
	return r.Parsed + r.Failed
}

// HasFailures reports whether any manuals failed to parse.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ParseManual runs the full pipeline for one PDF: extract page texts,
// normalize them, locate themes, segment each theme's page window into
// criteria and tasks, and assemble the manual document. Heuristic misses
// fall back to defaults, so the only errors are I/O level: an unreadable
// file or a PDF the backend cannot open.
func ParseManual(ex pdftext.Extractor, pdfPath string, meta manifest.ManualMeta, cfg types.ParseConfig, w io.Writer) (*Result, error) {
	fmt.Fprintf(w, "parsing %s (%s)\n", filepath.Base(pdfPath), ex.Name())

	raw, err := ex.ExtractPages(pdfPath)
	if err != nil {
		return nil, err
	}
	pages := CleanPages(raw)

	var description string
	if len(pages) > 0 {
		description = ExtractDescription(pages[0])
	}

	pageTables := extractPageTables(ex, pdfPath)

	themePages := FindThemePages(pages, w)

	window := cfg.ThemeWindow
	if window <= 0 {
		window = defaultThemeWindow
	}

	result := &Result{
		Key:       manifest.MatchKey(pdfPath),
		SourcePDF: pdfPath,
		ParsedAt:  time.Now().UTC(),
	}

	themes := make([]types.Theme, 0, len(themePages))
	for i, tp := range themePages {
		start := tp.Page + 1
		chunk := joinWindow(pages, start, window)
		theme := BuildTheme(chunk, tp.Title, meta.URLBase, start, pageTables)
		theme.SortOrder = i + 1
		themes = append(themes, theme)

		result.Themes++
		for _, c := range theme.Items {
			result.Criteria++
			for _, g := range c.Items {
				result.Tasks += len(g.Items)
			}
		}
	}

	result.Manual = assemble.BuildManual(meta, description, themes)

	fmt.Fprintf(w, "parsed %s: %d themes, %d criteria, %d tasks\n",
		filepath.Base(pdfPath), result.Themes, result.Criteria, result.Tasks)
	return result, nil
}

// ParseBatch parses each PDF and writes its JSON document to the output
// directory, continuing after individual failures.
func ParseBatch(ex pdftext.Extractor, pdfPaths []string, m *manifest.Manifest, cfg types.ParseConfig, w io.Writer) BatchResult {
	var batch BatchResult
	for _, pdfPath := range pdfPaths {
		key, meta := m.Match(pdfPath)

		result, err := ParseManual(ex, pdfPath, meta, cfg, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(pdfPath), err)
			batch.Failed++
			continue
		}

		outPath := filepath.Join(cfg.OutputDir, manifest.OutputFileName(key))
		if err := assemble.WriteManual(result.Manual, outPath, cfg.Validate); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(pdfPath), err)
			batch.Failed++
			continue
		}
		result.OutputPath = outPath

		fmt.Fprintf(w, "wrote %s\n", outPath)
		batch.Parsed++
		batch.Results = append(batch.Results, result)
	}
	fmt.Fprintf(w, "\nBatch summary: %d parsed, %d failed (total: %d)\n",
		batch.Parsed, batch.Failed, batch.Total())
	return batch
}

// extractPageTables collects scoring-table enrichment per 1-based page
// number. Backends without positioned text, and any extraction error,
// simply yield no tables.
func extractPageTables(ex pdftext.Extractor, pdfPath string) map[int]TaskDetails {
	fe, ok := ex.(pdftext.FragmentExtractor)
	if !ok {
		return nil
	}
	pages, err := fe.ExtractFragments(pdfPath)
	if err != nil {
		return nil
	}
	tables := make(map[int]TaskDetails)
	for i, frags := range pages {
		if t := ExtractTable(frags); t != nil {
			tables[i+1] = t.Details()
		}
	}
	return tables
}

// joinWindow joins up to window pages starting at 0-based index start into
// one text chunk.
func joinWindow(pages []string, start, window int) string {
	if start < 0 {
		start = 0
	}
	if start >= len(pages) {
		return ""
	}
	end := start + window
	if end > len(pages) {
		end = len(pages)
	}
	return strings.Join(pages[start:end], "\n\n")
}
