// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/trialscout/internal/feed"
	"github.com/pdiddy/trialscout/pkg/types"
)

var rssCmd = &cobra.Command{
	Use:   "rss",
	Short: "Show recent trial updates from the registry RSS feed",
	Long: `rss fetches the ClinicalTrials.gov RSS feed and prints recent trial
updates. Each item is assigned a therapeutic category and a recruitment
status at fetch time; category, status, and text filters are then applied
locally without re-fetching.`,
	RunE: runRSS,
}

func init() {
	rssCmd.Flags().String("category", "", "filter by assigned category")
	rssCmd.Flags().String("status", "", "filter by extracted recruitment status")
	rssCmd.Flags().String("search", "", "filter by title/description substring")
	rssCmd.Flags().Bool("asc", false, "sort oldest first instead of newest first")
	rssCmd.Flags().Int("page", 1, "page of filtered items to show")
	rssCmd.Flags().Int("page-size", 0, "items per page (default 10)")
	rssCmd.Flags().Bool("json", false, "emit JSON instead of a table")
	rootCmd.AddCommand(rssCmd)
}

func runRSS(cmd *cobra.Command, args []string) error {
	cfg := types.FeedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   httpTimeout(cmd),
			UserAgent: defaultUserAgent,
		},
		Location:  viper.GetString("feed.location"),
		Country:   viper.GetString("feed.country"),
		DateField: viper.GetString("feed.date_field"),
		PageSize:  viper.GetInt("feed.page_size"),
	}

	items, err := feed.Fetch(cmd.Context(), &http.Client{Timeout: cfg.Timeout}, cfg)
	if err != nil {
		p := feed.NewFailedPipeline("Failed to fetch RSS feed. Please try again later.")
		feed.FormatTable(p, os.Stderr)
		return fmt.Errorf("fetching RSS feed: %w", err)
	}

	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize <= 0 {
		pageSize = cfg.PageSize
	}
	p := feed.NewPipeline(items, pageSize)

	if category, _ := cmd.Flags().GetString("category"); category != "" {
		p.SetCategory(category)
	}
	if status, _ := cmd.Flags().GetString("status"); status != "" {
		p.SetStatus(status)
	}
	if search, _ := cmd.Flags().GetString("search"); search != "" {
		p.SetSearch(search)
	}
	if asc, _ := cmd.Flags().GetBool("asc"); asc {
		p.ToggleSort()
	}
	if page, _ := cmd.Flags().GetInt("page"); page > 1 {
		p.SetPage(page)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return feed.FormatJSON(p, os.Stdout)
	}
	feed.FormatTable(p, os.Stdout)
	return nil
}
