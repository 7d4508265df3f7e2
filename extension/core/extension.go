// Package core provides the core extension for wistopics.
// It registers commands: config, guide, serve, version.
package core

import (
	"github.com/jpl-au/wistopics/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build
// time rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension  = (*Extension)(nil)
	_ extension.TablesFree = (*Extension)(nil)
)

// Name returns "core" - this extension provides fundamental commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// NoTablesCommands returns commands that manage their own lifecycle.
// serve: long-running MCP server loads (or skips) the tables itself.
func (e *Extension) NoTablesCommands() []string {
	return []string{"serve"}
}
