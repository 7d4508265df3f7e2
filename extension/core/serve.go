// serve.go implements the "wistopics serve" command for MCP server
// operation.
//
// Separated from extension.go because serve has unique lifecycle
// requirements. Unlike other commands that run and exit, serve blocks
// indefinitely handling MCP requests over stdio.
//
// Design: Serve is a NoTablesCommand - it loads the tables itself so it
// can start in unsynced mode and return a helpful error from each tool
// instead of refusing to start.

package core

import (
	"github.com/jpl-au/wistopics/cmd"
	"github.com/jpl-au/wistopics/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM
integration. Exposes topic validation, child listing and centre-id
validation as tools.`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	store, _, err := cmd.NewBundleStore()
	if err != nil {
		return err
	}
	return mcp.Serve(store)
}
