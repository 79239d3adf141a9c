package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "redpoint/internal/adapters/mcp"
	"redpoint/internal/adapters/sqlite"
	"redpoint/internal/application"
	"redpoint/internal/catalog"
	"redpoint/internal/config"
	"redpoint/internal/logging"
)

func main() {
	dbFlag := flag.String("db", config.CatalogDBPath(), "path to the catalog database")
	levelFlag := flag.String("log-level", config.LogLevel(), "log level (debug, info, warn, error)")
	flag.Parse()

	// stdout carries the protocol
	logger := logging.New(os.Stderr, *levelFlag)

	store := sqlite.NewCatalogStore()
	if err := store.Open(*dbFlag); err != nil {
		log.Fatalf("redpoint-mcp: %v", err)
	}
	defer store.Close()

	badges := application.NewBadges(
		catalog.NewMulti(catalog.NewStatic(), store),
		application.WithLogger(logger),
	)
	if err := badges.Initialize(context.Background()); err != nil {
		log.Fatalf("redpoint-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"redpoint-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	sess := mcpadapter.NewSession(badges)
	mcpadapter.RegisterReadTools(mcpServer, sess)
	mcpadapter.RegisterWriteTools(mcpServer, sess)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("redpoint-mcp: %v", err)
	}
}
