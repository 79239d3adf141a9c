package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"redpoint/internal/adapters/editor"
	"redpoint/internal/application/commands"
)

var errNoStore = errors.New("catalog store disabled by --no-store")

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage node paths registered on top of the static catalog",
	Long: `Registered paths are stored in the catalog database and are built
into the tree, with any missing ancestors, every time a command starts.

Examples:
  redpoint-cli catalog add AllRoot/Root/ModelB/ModelB_Sub_1
  redpoint-cli catalog list`,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <path>...",
	Short: "Register node paths",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetStore()
		if store == nil {
			return errNoStore
		}

		for _, path := range args {
			result, err := commands.NewRegisterPathCommand(store, GetBadges().RootName(), path).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered node paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetStore()
		if store == nil {
			return errNoStore
		}

		paths, err := store.Paths()
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

var catalogEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Register node paths in $EDITOR",
	Long: `Open the registered paths in $VISUAL or $EDITOR. Lines added in the
editor are registered; removing a line does not unregister it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetStore()
		if store == nil {
			return errNoStore
		}

		existing, err := store.Paths()
		if err != nil {
			return err
		}
		edited, err := editor.NewLines().EditLines(cmd.Context(),
			"One node path per line, e.g. "+GetBadges().RootName()+"/Root/ModelB\nRemoving a line does not unregister it.",
			existing)
		if err != nil {
			return err
		}

		for _, path := range edited {
			result, err := commands.NewRegisterPathCommand(store, GetBadges().RootName(), path).Execute(cmd.Context())
			if err != nil {
				return err
			}
			if result.Created {
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogEditCmd)
}
