// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the trialscout CLI, a directory of
// clinical-trial RFP listings sourced from the ClinicalTrials.gov v2 API
// and its RSS feed.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/trialscout/internal/registry"
	"github.com/pdiddy/trialscout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "trialscout/0.1"
	defaultPageSize  = 20
)

// rootCmd is the base command for the trialscout CLI.
var rootCmd = &cobra.Command{
	Use:   "trialscout",
	Short: "Browse, filter, bookmark, and export clinical-trial RFP listings",
	Long: `trialscout lists clinical-trial records from the ClinicalTrials.gov v2
registry as RFP-style opportunity cards. Listings can be filtered by
therapeutic area, recruitment status, phase, and free text; paginated with
the registry's continuation tokens; bookmarked locally; and exported to CSV.

The registry's RSS feed is available as an independent path with its own
client-side category and status filters.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./trialscout.yaml or ~/.config/trialscout/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "bookmark database file (default: trialscout.db)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("trialscout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "trialscout"))
		}
	}

	viper.SetEnvPrefix("TRIALSCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// httpTimeout resolves the timeout from the flag, then config, then the
// default.
func httpTimeout(cmd *cobra.Command) time.Duration {
	if t, _ := cmd.Flags().GetDuration("timeout"); t > 0 {
		return t
	}
	if t := viper.GetDuration("http.timeout"); t > 0 {
		return t
	}
	return defaultTimeout
}

// registryClient builds the studies-endpoint client shared by the listing
// commands.
func registryClient(cmd *cobra.Command, pageSize int) *registry.Client {
	cfg := types.RegistryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   httpTimeout(cmd),
			UserAgent: defaultUserAgent,
		},
		PageSize:          pageSize,
		RequestsPerSecond: viper.GetFloat64("registry.requests_per_second"),
		MaxRetries:        viper.GetInt("registry.max_retries"),
	}
	return registry.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg)
}

// bookmarkPath resolves the bookmark database path from the flag, then
// config, then the default.
func bookmarkPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p
	}
	if p := viper.GetString("bookmarks.path"); p != "" {
		return p
	}
	return "trialscout.db"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
