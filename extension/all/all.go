// Package all imports all built-in wistopics extensions.
// Import this package to register all built-in commands.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/jpl-au/wistopics/extension/bundle"
	_ "github.com/jpl-au/wistopics/extension/centreid"
	_ "github.com/jpl-au/wistopics/extension/core"
	_ "github.com/jpl-au/wistopics/extension/topic"
)
