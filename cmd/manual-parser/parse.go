// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/meshintel/manual-parser/internal/catalog"
	"github.com/meshintel/manual-parser/internal/manifest"
	"github.com/meshintel/manual-parser/internal/parse"
	"github.com/meshintel/manual-parser/internal/pdftext"
	"github.com/meshintel/manual-parser/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [pdfs...]",
	Short: "Convert manual PDFs to structured JSON",
	Long: `Parse runs the extraction pipeline on each manual PDF: per-page text
extraction, normalization, theme and criterion detection, task segmentation,
and schema-validated JSON assembly. With no arguments every *.pdf under the
input directory is processed.

Detection heuristics fall back to defaults instead of failing, so a damaged
manual produces best-effort output.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("input-dir", "manuals/pdf", "directory with manual PDFs")
	parseCmd.Flags().String("output-dir", "manuals/build", "destination directory for JSON files")
	parseCmd.Flags().String("backend", string(types.BackendLedongthuc), "text extraction backend: ledongthuc or dslipak")
	parseCmd.Flags().String("manifest", "", "YAML manual-metadata manifest (default: built-in metadata)")
	parseCmd.Flags().Bool("validate", true, "validate output against the bovest schema before writing")
	parseCmd.Flags().Int("theme-window", 40, "pages scanned after a theme's anchor page")
	parseCmd.Flags().Bool("catalog", false, "record the run in the parse catalog")
	parseCmd.Flags().String("catalog-dir", "catalog", "directory for the parse catalog database")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := parseConfigFromFlags(cmd)

	ex, err := pdftext.New(cfg.Backend)
	if err != nil {
		return err
	}

	m, err := loadManifest(cfg.ManifestPath)
	if err != nil {
		return err
	}

	pdfs := args
	if len(pdfs) == 0 {
		pdfs, err = globPDFs(cfg.InputDir)
		if err != nil {
			return err
		}
	}
	if len(pdfs) == 0 {
		fmt.Fprintln(os.Stdout, "No PDFs found in input directory.")
		return nil
	}

	batch := parse.ParseBatch(ex, pdfs, m, cfg, os.Stdout)

	if record, _ := cmd.Flags().GetBool("catalog"); record && len(batch.Results) > 0 {
		if err := recordRuns(cmd, batch.Results); err != nil {
			return err
		}
	}

	if batch.HasFailures() {
		return fmt.Errorf("%d manual(s) failed parsing", batch.Failed)
	}
	return nil
}

func parseConfigFromFlags(cmd *cobra.Command) types.ParseConfig {
	inputDir, _ := cmd.Flags().GetString("input-dir")
	if inputDir == "" {
		inputDir = "manuals/pdf"
	}
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = "manuals/build"
	}
	backend, _ := cmd.Flags().GetString("backend")
	manifestPath, _ := cmd.Flags().GetString("manifest")
	validate, _ := cmd.Flags().GetBool("validate")
	themeWindow, _ := cmd.Flags().GetInt("theme-window")

	return types.ParseConfig{
		InputDir:     inputDir,
		OutputDir:    outputDir,
		Backend:      types.ExtractBackend(backend),
		ManifestPath: manifestPath,
		Validate:     validate,
		ThemeWindow:  themeWindow,
	}
}

func loadManifest(path string) (*manifest.Manifest, error) {
	if path == "" {
		return manifest.Default(), nil
	}
	return manifest.Load(path)
}

func globPDFs(dir string) ([]string, error) {
	pdfs, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", dir, err)
	}
	sort.Strings(pdfs)
	return pdfs, nil
}

func recordRuns(cmd *cobra.Command, results []*parse.Result) error {
	catalogDir, _ := cmd.Flags().GetString("catalog-dir")
	store, err := catalog.NewStore(types.CatalogConfig{CatalogDir: catalogDir})
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range results {
		run := catalog.Run{
			ManualID:   r.Manual.ID,
			Key:        r.Key,
			SourcePDF:  r.SourcePDF,
			OutputPath: r.OutputPath,
			Version:    r.Manual.Versions[0].Version,
			ParsedAt:   r.ParsedAt,
			Themes:     r.Themes,
			Criteria:   r.Criteria,
			Tasks:      r.Tasks,
		}
		if err := store.Record(context.Background(), run); err != nil {
			return err
		}
	}
	return nil
}
