// Package topics implements validation and enumeration of WIS2 topic
// hierarchies.
//
// A topic is a '/'-delimited string whose first six segments map
// one-to-one to the fixed levels channel, version, system, centre-id,
// notification-type and data-policy. Any further segments form the
// earth-system-discipline subtopic, a variable-depth path matched against
// the level-6 reference table as a whole.
//
// # Modes
//
// Strict mode rejects the MQTT wildcards '+' and '#' and requires every
// token to be a literal member of its level's table. Lenient mode permits
// wildcards and skips centre-id membership, which is what subscription
// topics need.
//
// # Error Handling
//
// Validate never returns an error for a well-formed but incorrect topic;
// it returns false. Only structurally malformed input (an empty topic or
// the bare "/" hierarchy) produces ErrInvalidArgument. ListChildren
// returns ErrInvalidTopic or ErrNoMatch rather than an empty list, so
// callers must handle both explicitly:
//
//	if errors.Is(err, topics.ErrNoMatch) {
//	    // valid prefix, nothing beneath it
//	}
package topics

import (
	"fmt"
	"sort"
	"strings"
)

// coreLevels is the number of fixed single-segment levels before the
// earth-system-discipline tail.
const coreLevels = 6

// Hierarchy validates topics against a loaded reference table snapshot.
// It holds no other state and performs no I/O; a single value is safe for
// concurrent use.
type Hierarchy struct {
	tables *Tables
}

// New creates a Hierarchy over the given tables.
func New(tables *Tables) *Hierarchy {
	return &Hierarchy{tables: tables}
}

// Tables returns the snapshot this hierarchy was built from.
func (h *Hierarchy) Tables() *Tables {
	return h.tables
}

// split separates a topic into its core tokens (at most coreLevels of
// them) and the earth-system-discipline remainder, empty when the topic
// has six segments or fewer.
func split(topic string) (core []string, esd string) {
	tokens := strings.SplitN(topic, "/", coreLevels+1)
	if len(tokens) > coreLevels {
		return tokens[:coreLevels], tokens[coreLevels]
	}
	return tokens, ""
}

// Validate checks a full topic string against the loaded tables.
//
// It returns ErrInvalidArgument for an empty topic or the bare "/"
// hierarchy. Any other topic yields a plain verdict: the baseline checks
// must pass, every core token must satisfy its level's rule, and a
// non-empty earth-system-discipline subtopic must match the level-6 table.
func (h *Hierarchy) Validate(topic string, strict bool) (bool, error) {
	if topic == "" || topic == "/" {
		return false, fmt.Errorf("%w: topic hierarchy is empty", ErrInvalidArgument)
	}

	if !ValidateBaseline(topic) {
		return false, nil
	}

	core, esd := split(topic)

	for i, token := range core {
		if !h.validToken(i, token, strict) {
			return false, nil
		}
	}

	if esd != "" && !h.matchESD(esd, strict) {
		return false, nil
	}

	return true, nil
}

// validToken applies the core-token rule for the level at position i.
// A token passes when it is empty, when lenient mode skips the level
// (centre-id), when it is a wildcard and mode is lenient, or when it is a
// literal member of the level's table.
func (h *Hierarchy) validToken(i int, token string, strict bool) bool {
	if token == "" {
		return true
	}
	if !strict && i == LevelCentreID {
		return true
	}
	if token == "+" || token == "#" {
		return !strict
	}
	return h.tables.Contains(i, token)
}

// ListChildren returns the distinct immediate children of a topic.
//
// The root "/" returns the full channel table without validation. Any
// other topic is validated strictly first; failure yields ErrInvalidTopic.
// Results are set-semantic: duplicates are removed and callers must not
// rely on a particular order (the slice is sorted only to keep output
// stable). An empty result yields ErrNoMatch.
func (h *Hierarchy) ListChildren(topic string) ([]string, error) {
	if topic == "/" {
		return append([]string(nil), h.tables.Level(LevelChannel)...), nil
	}

	ok, err := h.Validate(topic, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTopic, topic)
	}

	tokens := strings.SplitN(topic, "/", coreLevels+1)

	children := make(map[string]struct{})
	switch {
	case len(tokens) < coreLevels:
		for _, tok := range h.tables.Level(len(tokens)) {
			children[tok] = struct{}{}
		}
	case len(tokens) == coreLevels:
		for _, entry := range h.tables.Level(LevelEarthSystemDiscipline) {
			children[firstSegment(entry)] = struct{}{}
		}
	default:
		esd := tokens[coreLevels]
		for _, entry := range h.tables.Level(LevelEarthSystemDiscipline) {
			if rest, ok := strings.CutPrefix(entry, esd+"/"); ok && rest != "" {
				children[firstSegment(rest)] = struct{}{}
			}
		}
	}

	if len(children) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, topic)
	}

	out := make([]string, 0, len(children))
	for child := range children {
		out = append(out, child)
	}
	sort.Strings(out)
	return out, nil
}

// firstSegment returns the path up to the first '/'.
func firstSegment(path string) string {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
