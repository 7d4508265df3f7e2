// Package mcp implements the Model Context Protocol server, exposing
// topic hierarchy validation to LLMs and other MCP hosts. This is the
// host-plugin surface: it forwards calls into the engine and contains no
// validation logic of its own.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/wistopics/internal/bundle"
	"github.com/jpl-au/wistopics/internal/topics"
	"github.com/jpl-au/wistopics/internal/version"
)

// msgNotSynced is returned by tools when the reference tables are not
// available. The client should run "wistopics bundle sync" first.
const msgNotSynced = "topic hierarchy tables not synced - run: wistopics bundle sync"

// Serve starts the MCP server over stdio. Uses stdio transport for
// compatibility with Claude Desktop and other MCP clients.
//
// Design: The server starts successfully even if the bundle has not been
// synced. Tools that need the tables return an error result with clear
// guidance instead of the whole server failing with an opaque error.
func Serve(store *bundle.Store) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{store: store}

	tables, err := store.Load()
	switch {
	case err == nil:
		h.hierarchy = topics.New(tables)
	case errors.Is(err, bundle.ErrNotSynced):
		slog.Info("tables not synced, starting without them - run bundle sync and restart")
	default:
		slog.Error("failed to load tables", "error", err)
		return err
	}

	s := server.NewMCPServer(
		"wistopics",
		version.Short(),
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("wistopics MCP server ready", "version", version.Short(), "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the loaded
// hierarchy. The hierarchy field is nil when the bundle is not synced.
type handlers struct {
	store     *bundle.Store
	hierarchy *topics.Hierarchy
}
