// context.go defines the Context interface for extension access to
// wistopics internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions: they can
// reach the loaded hierarchy and the bundle store without constructing
// either themselves.
//
// Design: Context uses an interface to enable testing with mock
// implementations. Extensions look it up at command run time, not at
// registration, because the tables are only loaded for commands that
// need them.

package extension

import (
	"github.com/jpl-au/wistopics/internal/bundle"
	"github.com/jpl-au/wistopics/internal/config"
	"github.com/jpl-au/wistopics/internal/topics"
)

// Context provides extensions controlled access to wistopics internals.
type Context interface {
	// Hierarchy returns the engine loaded from the synced tables.
	Hierarchy() *topics.Hierarchy

	// Store returns the bundle store, for access to the TLD registry.
	Store() *bundle.Store

	// Config returns user configuration.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	hierarchy *topics.Hierarchy
	store     *bundle.Store
	cfg       *config.Config
}

// NewContext creates a new extension context.
func NewContext(h *topics.Hierarchy, store *bundle.Store, cfg *config.Config) Context {
	return &extContext{hierarchy: h, store: store, cfg: cfg}
}

func (c *extContext) Hierarchy() *topics.Hierarchy { return c.hierarchy }
func (c *extContext) Store() *bundle.Store         { return c.store }
func (c *extContext) Config() *config.Config       { return c.cfg }
