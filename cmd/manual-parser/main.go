// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the manual-parser CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the manual-parser CLI.
var rootCmd = &cobra.Command{
	Use:   "manual-parser",
	Short: "Digitize the BO-VEST sustainability manuals",
	Long: `manual-parser converts the BO-VEST sustainability manual PDFs (Nybyg,
Simpel Sag, Renovering) into structured JSON documents matching the bovest
criteria schema: Theme → Criterion → Task Group → Task → Task Item.

Each stage is a subcommand: fetch downloads the hosted PDFs, parse runs the
extraction pipeline, inspect shows what the heuristics detect in a PDF, and
catalog queries the local record of parse runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./manual-parser.yaml or ~/.config/manual-parser/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("manual-parser")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "manual-parser"))
		}
	}

	viper.SetEnvPrefix("MANUAL_PARSER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
