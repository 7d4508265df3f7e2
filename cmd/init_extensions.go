/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command
// registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config, locates the bundle, and wires up extensions.
//
// Design: Extensions register during init() but the tables aren't loaded
// until first command execution. This two-phase pattern allows extensions
// to declare commands before a synced bundle exists. The hierarchy is
// created once and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/wistopics/extension"
	"github.com/jpl-au/wistopics/internal/bundle"
	"github.com/jpl-au/wistopics/internal/config"
	"github.com/jpl-au/wistopics/internal/log"
	"github.com/jpl-au/wistopics/internal/topics"
)

// noTablesCommands lists commands that bypass automatic table loading.
// Built dynamically from bootstrap commands plus extension-declared
// tables-free commands.
var noTablesCommands map[string]bool

// buildNoTablesCommands creates the set of commands that skip table
// loading.
//
// There are two categories:
//
//  1. Bootstrap commands (guide, config, version) - These help users set
//     up or learn about wistopics before a bundle exists. Running
//     "wistopics guide" shouldn't fail just because you haven't run
//     "wistopics bundle sync" yet.
//
//  2. Extension-declared tables-free commands - Extensions can implement
//     the TablesFree interface to declare commands that manage their own
//     lifecycle. For example, "bundle sync" must work without tables and
//     "serve" loads them itself.
func buildNoTablesCommands() map[string]bool {
	cmds := map[string]bool{
		"guide":   true,
		"config":  true,
		"version": true,
	}

	for _, ext := range extension.All() {
		if tf, ok := ext.(extension.TablesFree); ok {
			for _, name := range tf.NoTablesCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// NewBundleStore builds a bundle store from the CLI flags and the loaded
// config, without touching the tables themselves. Used directly by
// commands that manage their own lifecycle (bundle sync, serve).
func NewBundleStore() (*bundle.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	dir := Tables()
	if dir == "" {
		dir = cfg.TablesDir()
	}

	store := bundle.NewStore(bundle.Options{
		Dir:      dir,
		TopicURL: cfg.TopicURL(),
		TLDURL:   cfg.TLDURL(),
	})
	return store, cfg, nil
}

// Ctx returns the shared extension context. Only valid for commands that
// trigger table loading; tables-free commands get nil.
func Ctx() extension.Context {
	return extContext
}

// initExtensions loads the reference tables and injects them into the
// shared extension context.
//
// Why sync.Once: the tables are loaded from seven CSV files and shared
// read-only across all extensions, so a single load per process is
// enough even if multiple commands somehow trigger it.
func initExtensions() error {
	initOnce.Do(func() {
		store, cfg, err := NewBundleStore()
		if err != nil {
			initErr = err
			return
		}

		// Identify the bundle in audit log entries
		log.SetTables(store.Dir())

		t, err := store.Load()
		if err != nil {
			initErr = fmt.Errorf("%w\n\nRun: wistopics bundle sync", err)
			return
		}

		extContext = extension.NewContext(topics.New(t), store, cfg)
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build noTablesCommands after all extensions are registered
		noTablesCommands = buildNoTablesCommands()
	})
}
