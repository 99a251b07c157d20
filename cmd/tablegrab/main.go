// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tablegrab CLI.
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

// rootCmd is the base command for the tablegrab CLI.
var rootCmd = &cobra.Command{
	Use:   "tablegrab",
	Short: "Extract tables from PDF documents into CSV",
	Long: `tablegrab downloads a PDF from a URL, recovers tabular content from the
requested pages, and writes it to a CSV file. Multi-row table headers can be
kept as multiple header lines or flattened into one.

The extract subcommand carries the full header-handling surface; dump is the
minimal variant for plain tables.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tablegrab.yaml or ~/.config/tablegrab/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tablegrab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tablegrab"))
		}
	}

	viper.SetDefault("fetch.timeout", "30s")
	viper.SetDefault("fetch.user_agent", "tablegrab/0.1")
	viper.SetDefault("fetch.max_retries", 5)
	viper.SetDefault("extract.row_tolerance", 2.0)
	viper.SetDefault("extract.min_gap_width", 10.0)
	viper.SetDefault("extract.min_columns", 2)
	viper.SetDefault("history.db_path", "")
	viper.SetDefault("history.disabled", false)
	viper.SetDefault("history.max_results", 20)

	viper.SetEnvPrefix("TABLEGRAB")
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
