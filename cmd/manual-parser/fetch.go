// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/meshintel/manual-parser/internal/fetch"
	"github.com/meshintel/manual-parser/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the hosted manual PDFs",
	Long: `Fetch downloads the published BO-VEST manual PDFs into the parse input
directory. Manuals already on disk are skipped, so re-running is cheap.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("input-dir", "manuals/pdf", "directory to store downloaded PDFs")
	fetchCmd.Flags().String("manifest", "", "YAML manual-metadata manifest (default: built-in metadata)")
	fetchCmd.Flags().Duration("timeout", 60*time.Second, "HTTP request timeout")
	fetchCmd.Flags().Duration("delay", time.Second, "delay between consecutive downloads")
	fetchCmd.Flags().String("user-agent", "manual-parser/0.1", "User-Agent header for download requests")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	inputDir, _ := cmd.Flags().GetString("input-dir")
	manifestPath, _ := cmd.Flags().GetString("manifest")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	delay, _ := cmd.Flags().GetDuration("delay")
	userAgent, _ := cmd.Flags().GetString("user-agent")

	m, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	cfg := types.FetchConfig{
		Timeout:       timeout,
		UserAgent:     userAgent,
		DownloadDelay: delay,
		InputDir:      inputDir,
	}
	client := &http.Client{Timeout: cfg.Timeout}

	result := fetch.FetchAll(client, m, cfg, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d manual(s) failed to download", result.Failed)
	}
	return nil
}
