package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"redpoint/internal/adapters/sqlite"
	"redpoint/internal/adapters/tui"
	"redpoint/internal/application"
	"redpoint/internal/catalog"
	"redpoint/internal/config"
	"redpoint/internal/logging"
	"redpoint/internal/ports"
)

func main() {
	dbFlag := flag.String("db", config.CatalogDBPath(), "path to the catalog database")
	logFlag := flag.String("log-file", "", "write logs to this file instead of discarding them")
	levelFlag := flag.String("log-level", config.LogLevel(), "log level (debug, info, warn, error)")
	flag.Parse()

	if err := run(*dbFlag, *logFlag, *levelFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath, logPath, level string) error {
	// The alternate screen owns the terminal, so logs go to a file or nowhere
	logger := logging.Discard()
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger = logging.New(f, level)
	}

	sources := []ports.CatalogSource{catalog.NewStatic()}
	store := sqlite.NewCatalogStore()
	if err := store.Open(dbPath); err != nil {
		logger.Warn("catalog store unavailable, using static catalog", "path", dbPath, "error", err)
	} else {
		defer store.Close()
		sources = append(sources, store)
	}

	badges := application.NewBadges(catalog.NewMulti(sources...), application.WithLogger(logger))
	if err := badges.Initialize(context.Background()); err != nil {
		return err
	}
	if err := seed(badges, logger); err != nil {
		return err
	}

	app := tui.NewApp(badges)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// seed sets the starting counts of the sample scene
func seed(badges *application.Badges, logger *slog.Logger) error {
	for path, count := range map[string]int{
		catalog.ModelASub1: 2,
		catalog.ModelASub2: 3,
	} {
		if err := badges.SetRedpoint(path, count); err != nil {
			return err
		}
	}
	logger.Debug("sample counts seeded", "total", badges.GetRedpoint(catalog.AllRoot, true))
	return nil
}
