// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/meshintel/manual-parser/internal/catalog"
	"github.com/meshintel/manual-parser/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Query the record of parse runs",
	Long: `Catalog queries the local SQLite record of parse runs written by
"parse --catalog". Use list for recent runs or show for the latest run of
one manual.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent parse runs",
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <manual-key>",
	Short: "Show the latest run for a manual (e.g. NYBYG)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

func init() {
	catalogCmd.PersistentFlags().String("catalog-dir", "catalog", "directory for the parse catalog database")
	catalogCmd.PersistentFlags().Int("max-results", 20, "maximum number of listed runs")
	catalogListCmd.Flags().Bool("json", false, "output runs as JSON")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}

func catalogStore(cmd *cobra.Command) (*catalog.Store, error) {
	catalogDir, _ := cmd.Flags().GetString("catalog-dir")
	if catalogDir == "" {
		catalogDir = "catalog"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return catalog.NewStore(types.CatalogConfig{
		CatalogDir: catalogDir,
		MaxResults: maxResults,
	})
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := catalogStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No parse runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-12s  %-20s  %-7s  %-8s  %-5s  %s\n",
		"Manual", "Parsed", "Themes", "Criteria", "Tasks", "Output")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-12s  %-20s  %-7d  %-8d  %-5d  %s\n",
			r.Key, r.ParsedAt.Format(time.RFC3339), r.Themes, r.Criteria, r.Tasks, r.OutputPath)
	}
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	store, err := catalogStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Show(context.Background(), strings.ToUpper(args[0]))
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no recorded run for manual %q", args[0])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}
