// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trialscout/internal/bookmark"
	"github.com/pdiddy/trialscout/pkg/types"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage bookmarked studies",
}

var bookmarkToggleCmd = &cobra.Command{
	Use:   "toggle <nct-id>",
	Short: "Bookmark a study, or remove an existing bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := bookmark.Open(types.BookmarkConfig{Path: bookmarkPath(cmd)})
		if err != nil {
			return fmt.Errorf("opening bookmark store: %w", err)
		}
		defer store.Close()

		on, err := store.Toggle(args[0])
		if err != nil {
			return fmt.Errorf("saving bookmark: %w", err)
		}
		if on {
			fmt.Println("Bookmarked", args[0])
		} else {
			fmt.Println("Removed bookmark for", args[0])
		}
		return nil
	},
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarked study identifiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := bookmark.Open(types.BookmarkConfig{Path: bookmarkPath(cmd)})
		if err != nil {
			return fmt.Errorf("opening bookmark store: %w", err)
		}
		defer store.Close()

		ids := store.List()
		if len(ids) == 0 {
			fmt.Println("No bookmarks.")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	bookmarkCmd.AddCommand(bookmarkToggleCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)
	rootCmd.AddCommand(bookmarkCmd)
}
