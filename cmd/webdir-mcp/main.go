package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "webdir/internal/adapters/mcp"
	"webdir/internal/application"
	"webdir/internal/application/commands"
	"webdir/internal/config"
)

func main() {
	cfg := config.Load()
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding the cache")
	flag.StringVar(&cfg.Seed, "seed", cfg.Seed, "seed document: http(s) URL or file path")
	flag.StringVar(&cfg.Cache, "cache", cfg.Cache, "cache backend: sqlite or diskv")
	flag.Parse()

	// stdout carries the protocol
	logger := cfg.NewLogger(os.Stderr)

	cache, err := cfg.OpenCache(logger)
	if err != nil {
		log.Fatalf("webdir-mcp: %v", err)
	}
	defer cache.Close()

	store := application.NewEntryStore(cache, cfg.SeedSource(logger), logger)
	if _, err := commands.NewLoadCommand(store).Execute(context.Background()); err != nil {
		// serve an empty directory; add still works
		logger.Error("load failed", "err", err)
	}

	mcpServer := server.NewMCPServer(
		"webdir-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("webdir-mcp: %v", err)
	}
}
