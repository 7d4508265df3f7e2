// baseline.go implements the lexical pre-checks applied to any topic string
// before structural validation.
//
// Separated from topics.go because the baseline rules operate on the raw
// string only and are also used directly by the centre-id validator.

package topics

import "strings"

// ValidateBaseline checks a topic string against the WIS2 baseline
// conventions. It rejects:
//
//   - any '.' character (topics are '/'-delimited, never dotted)
//   - any uppercase character
//   - any character outside the printable ASCII range
//   - a '#' anywhere except as the final character
//
// It operates purely on the raw string and performs no table lookups.
func ValidateBaseline(topic string) bool {
	if strings.Contains(topic, ".") {
		return false
	}

	for i := 0; i < len(topic); i++ {
		c := topic[i]
		if c >= 'A' && c <= 'Z' {
			return false
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
		if c == '#' && i != len(topic)-1 {
			return false
		}
	}

	return true
}
