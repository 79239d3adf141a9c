package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"redpoint/internal/application/commands"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the redpoint tree",
	Long: `Display every node with its aggregated total.

Example:
  redpoint-cli tree`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dump, err := commands.NewDumpTreeCommand(GetBadges()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), dump)
		return nil
	},
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List every known node path",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range GetBadges().Paths() {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

var snapshotJSON bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the total of every node",
	Long: `Print every node path with its current total.

Examples:
  redpoint-cli snapshot
  redpoint-cli snapshot --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := commands.NewSnapshotCommand(GetBadges()).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if snapshotJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		}
		for _, pc := range snap {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", pc.Path, pc.Total)
		}
		return nil
	},
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "print as JSON")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(snapshotCmd)
}
