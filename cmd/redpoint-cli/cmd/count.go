package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"redpoint/internal/application/commands"
)

var getOwn bool

var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Show the count of a node",
	Long: `Show the aggregated total of a node, or its own count with --own.
Unknown paths report 0.

Examples:
  redpoint-cli get AllRoot/Root/ModelA
  redpoint-cli get AllRoot/Root/ModelA --own`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewGetCountCommand(GetBadges(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		count := result.Total
		if getOwn {
			count = result.OwnCount
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", result.Path, count)
		return nil
	},
}

var (
	noPropagate bool
	watchPaths  []string
	showTree    bool
)

var setCmd = &cobra.Command{
	Use:   "set <path> <count>",
	Short: "Set the own count of a node",
	Long: `Set the own count of a node and recalculate its ancestors.
Negative counts are clamped to 0.

Examples:
  redpoint-cli set AllRoot/Root/ModelA/ModelA_Sub_1 2 --tree
  redpoint-cli set AllRoot/Root/ModelA/ModelA_Sub_1 2 --no-propagate`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[1], err)
		}

		return withWatch(cmd, func() error {
			c := commands.NewSetCountCommand(GetBadges(), args[0], count)
			c.Propagate = !noPropagate
			result, err := c.Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		})
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <path=count>...",
	Short: "Apply several count assignments in order",
	Long: `Apply path=count assignments in order against one tree, printing the
notifications received by watched nodes.

Example:
  redpoint-cli apply \
    AllRoot/Root/ModelA/ModelA_Sub_1=2 \
    AllRoot/Root/ModelA/ModelA_Sub_2=3 \
    AllRoot/Root/ModelA/ModelA_Sub_1=0 \
    --watch AllRoot/Root/ModelA --tree`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withWatch(cmd, func() error {
			results, err := commands.NewApplyCommand(GetBadges(), args).Execute(cmd.Context())
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r.Message)
			}
			return err
		})
	},
}

// withWatch subscribes the --watch paths around fn and prints what they
// received, then the tree when --tree is set
func withWatch(cmd *cobra.Command, fn func() error) error {
	watch := commands.NewWatchCommand(GetBadges(), "cli", watchPaths)
	if err := watch.Execute(cmd.Context()); err != nil {
		return err
	}
	defer watch.Stop()

	if err := fn(); err != nil {
		return err
	}

	for _, n := range watch.Notifications() {
		fmt.Fprintf(cmd.OutOrStdout(), "notify %s %d\n", n.Path, n.Total)
	}
	if showTree {
		fmt.Fprint(cmd.OutOrStdout(), GetBadges().Dump())
	}
	return nil
}

func init() {
	getCmd.Flags().BoolVar(&getOwn, "own", false, "show the node's own count instead of its total")

	for _, c := range []*cobra.Command{setCmd, applyCmd} {
		c.Flags().StringSliceVarP(&watchPaths, "watch", "w", nil, "node paths to print notifications for")
		c.Flags().BoolVar(&showTree, "tree", false, "print the tree afterwards")
	}
	setCmd.Flags().BoolVar(&noPropagate, "no-propagate", false, "leave ancestor totals untouched")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(applyCmd)
}
