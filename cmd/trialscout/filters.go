// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trialscout/internal/feed"
	"github.com/pdiddy/trialscout/pkg/types"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Print the accepted filter codes and labels",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

		fmt.Fprintln(w, "THERAPEUTIC AREAS")
		for _, o := range types.TherapeuticAreas {
			fmt.Fprintf(w, "  %s\t%s\n", o.Value, o.Label)
		}
		fmt.Fprintln(w, "\nSTUDY STATUSES")
		for _, o := range types.StudyStatuses {
			fmt.Fprintf(w, "  %s\t%s\n", o.Value, o.Label)
		}
		fmt.Fprintln(w, "\nSTUDY PHASES")
		for _, o := range types.StudyPhases {
			fmt.Fprintf(w, "  %s\t%s\n", o.Value, o.Label)
		}

		fmt.Fprintln(w, "\nRSS CATEGORIES")
		for _, c := range feed.Categories() {
			fmt.Fprintf(w, "  %s\n", c)
		}
		fmt.Fprintln(w, "\nRSS STATUSES")
		for _, s := range feed.Statuses() {
			fmt.Fprintf(w, "  %s\n", s)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}
