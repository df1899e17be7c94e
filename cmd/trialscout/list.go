// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/trialscout/internal/bookmark"
	"github.com/pdiddy/trialscout/internal/registry"
	"github.com/pdiddy/trialscout/internal/rfp"
	"github.com/pdiddy/trialscout/internal/session"
	"github.com/pdiddy/trialscout/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List clinical-trial RFPs from the registry",
	Long: `list queries the ClinicalTrials.gov v2 studies endpoint and prints the
matching records as RFP rows. Filters combine with AND; statuses and phases
accept comma-separated codes that combine with OR. Additional result pages
are accumulated with --pages.`,
	RunE: runList,
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().Int("pages", 1, "number of result pages to accumulate")
	listCmd.Flags().Bool("json", false, "emit JSON instead of a table")
	listCmd.Flags().Bool("bookmarked", false, "show only bookmarked RFPs")
	listCmd.Flags().String("save", "", "write the filter to a saved-search YAML file")
	listCmd.Flags().String("load", "", "read the filter from a saved-search YAML file")
	rootCmd.AddCommand(listCmd)
}

// addFilterFlags registers the filter flags shared by list and export.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("query", "", "free-text search term")
	cmd.Flags().String("area", "", "therapeutic area code (see 'trialscout filters')")
	cmd.Flags().String("status", "", "comma-separated recruitment status codes")
	cmd.Flags().String("phase", "", "comma-separated phase codes")
	cmd.Flags().Bool("asc", false, "sort by last update date ascending instead of descending")
	cmd.Flags().Int("page-size", 0, "records per page (default 20)")
}

// filterFromFlags builds a registry filter from the shared flags, rejecting
// codes that are not in the published filter sets.
func filterFromFlags(cmd *cobra.Command) (registry.Filter, error) {
	var f registry.Filter

	f.FreeText, _ = cmd.Flags().GetString("query")
	asc, _ := cmd.Flags().GetBool("asc")
	f.SortDesc = !asc

	if area, _ := cmd.Flags().GetString("area"); area != "" {
		if !types.ValidValue(types.TherapeuticAreas, area) {
			return f, fmt.Errorf("unknown therapeutic area %q", area)
		}
		f.Area = area
	}
	if statuses, _ := cmd.Flags().GetString("status"); statuses != "" {
		for _, s := range strings.Split(statuses, ",") {
			s = strings.TrimSpace(s)
			if !types.ValidValue(types.StudyStatuses, s) {
				return f, fmt.Errorf("unknown study status %q", s)
			}
			f.Statuses = append(f.Statuses, s)
		}
	}
	if phases, _ := cmd.Flags().GetString("phase"); phases != "" {
		for _, p := range strings.Split(phases, ",") {
			p = strings.TrimSpace(p)
			if !types.ValidValue(types.StudyPhases, p) {
				return f, fmt.Errorf("unknown study phase %q", p)
			}
			f.Phases = append(f.Phases, p)
		}
	}
	return f, nil
}

// resolvePageSize resolves the page size from the flag, then config, then
// the default.
func resolvePageSize(cmd *cobra.Command) int {
	if n, _ := cmd.Flags().GetInt("page-size"); n > 0 {
		return n
	}
	if n := viper.GetInt("registry.page_size"); n > 0 {
		return n
	}
	return defaultPageSize
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("load"); path != "" {
		sf, err := registry.ReadSearchFile(path)
		if err != nil {
			return fmt.Errorf("loading saved search: %w", err)
		}
		return printRows(cmd, sf.Rows, sf.Summary.TotalCount)
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
			fmt.Fprintf(os.Stderr, "page %d failed, showing partial results: %v\n", i+1, err)
			break
		}
	}

	rows, skipped := s.Rows()
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d malformed records\n", skipped)
	}

	if only, _ := cmd.Flags().GetBool("bookmarked"); only {
		store, err := bookmark.Open(types.BookmarkConfig{Path: bookmarkPath(cmd)})
		if err != nil {
			return fmt.Errorf("opening bookmark store: %w", err)
		}
		defer store.Close()

		kept := rows[:0]
		for _, r := range rows {
			if store.IsBookmarked(r.NCTID) {
				kept = append(kept, r)
			}
		}
		rows = kept
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := registry.WriteSearchFile(path, filter, rows, s.TotalCount()); err != nil {
			return fmt.Errorf("saving search: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Saved search to", path)
	}

	return printRows(cmd, rows, s.TotalCount())
}

func printRows(cmd *cobra.Command, rows []types.RfpRow, totalCount int) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return rfp.FormatJSON(rows, os.Stdout)
	}
	rfp.FormatTable(rows, totalCount, os.Stdout)
	return nil
}
