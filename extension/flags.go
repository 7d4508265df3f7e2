// flags.go defines constants for CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.

package extension

// Flag name constants for CLI commands.
const (
	FlagLocal    = "local"     // Use local scope config
	FlagNoStrict = "no-strict" // Lenient validation (wildcards allowed)
)
