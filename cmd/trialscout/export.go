// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/trialscout/internal/export"
	"github.com/pdiddy/trialscout/internal/session"
	"github.com/pdiddy/trialscout/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recently verified studies to CSV",
	Long: `export queries the registry with the same filters as list, keeps the
studies verified within the trailing window, and writes them to a CSV file
with one row per study.`,
	RunE: runExport,
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().Int("pages", 3, "number of result pages to accumulate before filtering")
	exportCmd.Flags().String("out", "", "output file stem without extension (default rfp-export-<date>)")
	exportCmd.Flags().Duration("window", 0, "trailing verification window (default 720h)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	pageSize := resolvePageSize(cmd)
	client := registryClient(cmd, pageSize)

	s := session.New(client, pageSize)
	s.SetFilter(filter)
	if err := s.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("fetching studies: %w", err)
	}
	pages, _ := cmd.Flags().GetInt("pages")
	for i := 1; i < pages && s.HasNextPage(); i++ {
		if err := s.LoadNext(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "page %d failed, exporting partial results: %v\n", i+1, err)
			break
		}
	}

	now := time.Now()
	stem, _ := cmd.Flags().GetString("out")
	if stem == "" {
		stem = "rfp-export-" + now.Format("2006-01-02")
	}
	cfg := types.ExportConfig{Window: viper.GetDuration("export.window")}
	if w, _ := cmd.Flags().GetDuration("window"); w > 0 {
		cfg.Window = w
	}

	name, err := export.ToFile(s.Studies(), stem, now, cfg.Window)
	if err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Println("Wrote", name)
	return nil
}
