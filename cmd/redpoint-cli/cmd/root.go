package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"redpoint/internal/adapters/sqlite"
	"redpoint/internal/application"
	"redpoint/internal/catalog"
	"redpoint/internal/config"
	"redpoint/internal/logging"
	"redpoint/internal/ports"
)

var (
	dbPath   string
	logLevel string
	noStore  bool

	logger *slog.Logger
	store  *sqlite.CatalogStore
	badges *application.Badges
)

var rootCmd = &cobra.Command{
	Use:   "redpoint-cli",
	Short: "CLI for hierarchical redpoint counters",
	Long: `redpoint-cli builds the redpoint tree from the path catalog and runs
count operations against it.

Counts live only for the duration of one command; the catalog of extra
node paths registered with "catalog add" is kept in a SQLite database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		logger = logging.New(os.Stderr, logLevel)

		sources := []ports.CatalogSource{catalog.NewStatic()}
		if !noStore {
			store = sqlite.NewCatalogStore()
			if err := store.Open(dbPath); err != nil {
				return fmt.Errorf("failed to open catalog store: %w", err)
			}
			sources = append(sources, store)
		}

		badges = application.NewBadges(catalog.NewMulti(sources...), application.WithLogger(logger))
		return badges.Initialize(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.CatalogDBPath(), "path to the catalog database")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.LogLevel(), "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noStore, "no-store", false, "build the tree from the static catalog only")
}

// GetBadges returns the initialized access point
func GetBadges() *application.Badges {
	return badges
}

// GetStore returns the opened catalog store, or nil with --no-store
func GetStore() ports.CatalogStore {
	if store == nil {
		return nil
	}
	return store
}
