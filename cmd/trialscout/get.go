// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trialscout/internal/bookmark"
	"github.com/pdiddy/trialscout/internal/rfp"
	"github.com/pdiddy/trialscout/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <nct-id>",
	Short: "Show one study as a detailed RFP card",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().Bool("json", false, "emit JSON instead of a labeled block")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	client := registryClient(cmd, defaultPageSize)

	study, err := client.FetchStudy(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching study %s: %w", args[0], err)
	}

	row, err := rfp.Transform(study)
	if err != nil {
		return fmt.Errorf("study %s: %w", args[0], err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return rfp.FormatJSON([]types.RfpRow{row}, os.Stdout)
	}

	rfp.FormatDetail(row, os.Stdout)

	// Bookmark state is advisory here; a missing store just omits the line.
	if store, err := bookmark.Open(types.BookmarkConfig{Path: bookmarkPath(cmd)}); err == nil {
		defer store.Close()
		if store.IsBookmarked(row.NCTID) {
			fmt.Println("Bookmarked: yes")
		}
	}
	return nil
}
