// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the trialscout version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("trialscout", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
