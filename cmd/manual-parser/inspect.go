// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshintel/manual-parser/internal/parse"
	"github.com/meshintel/manual-parser/internal/pdftext"
	"github.com/meshintel/manual-parser/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>",
	Short: "Show what the detection heuristics find in a PDF",
	Long: `Inspect extracts and normalizes a manual's page texts and reports the
detection anchors: the overview page, the themes found on it, and per-page
criterion headings and task numbers. Useful when a manual revision shifts
its layout and parse output looks wrong.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("backend", string(types.BackendLedongthuc), "text extraction backend: ledongthuc or dslipak")
	inspectCmd.Flags().Bool("text", false, "also dump the normalized text of every page")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	backend, _ := cmd.Flags().GetString("backend")
	dumpText, _ := cmd.Flags().GetBool("text")

	ex, err := pdftext.New(types.ExtractBackend(backend))
	if err != nil {
		return err
	}

	raw, err := ex.ExtractPages(args[0])
	if err != nil {
		return err
	}
	pages := parse.CleanPages(raw)

	fmt.Printf("%s: %d pages (%s backend)\n\n", args[0], len(pages), ex.Name())

	anchor := parse.FindAnchorPage(pages)
	if anchor == -1 {
		fmt.Println("overview page: not found")
	} else {
		fmt.Printf("overview page: %d\n", anchor)
	}

	themes := parse.FindThemePages(pages, os.Stderr)
	for _, t := range themes {
		fmt.Printf("theme: %-28s (code %s, anchor page %d)\n", t.Title, parse.CodeFromTitle(t.Title), t.Page)
	}
	fmt.Println()

	for i, page := range pages {
		criteria := pageCriteria(page)
		tasks := parse.ExtractTasks(page)
		if len(criteria) == 0 && len(tasks) == 0 && !dumpText {
			continue
		}
		fmt.Printf("page %d:\n", i+1)
		for _, c := range criteria {
			fmt.Printf("  criterion heading: %s\n", c)
		}
		for _, t := range tasks {
			fmt.Printf("  task %s: %s\n", t.Code, t.Title)
		}
		if dumpText {
			for _, line := range strings.Split(page, "\n") {
				fmt.Printf("  | %s\n", line)
			}
		}
	}
	return nil
}

// pageCriteria returns the criterion headings on one page, without the
// whole-window fallback DetectCriteria applies.
func pageCriteria(page string) []string {
	criteria := parse.DetectCriteria(page)
	if len(criteria) == 1 && criteria[0] == parse.DefaultCriterion && !strings.Contains(strings.ToUpper(page), "LIVET MELLEM") {
		return nil
	}
	return criteria
}
