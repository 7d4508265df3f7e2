// Package extension provides the plugin architecture for wistopics.
// Extensions encapsulate related functionality and register at init time,
// enabling modular feature development without touching core code.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for wistopics extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}

// TablesFree is an optional interface for extensions with commands that
// don't require the loaded reference tables. Commands returned by
// NoTablesCommands() will not trigger table loading in
// PersistentPreRunE.
//
// Use cases:
// 1. Bootstrap commands (like bundle sync) that run before tables exist
// 2. Commands that manage their own lifecycle (serve)
// 3. Utility commands that don't need the tables (version, guide)
type TablesFree interface {
	NoTablesCommands() []string
}
