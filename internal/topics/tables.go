// tables.go defines the reference table snapshot the hierarchy is built from.
//
// Separated from topics.go to isolate the data model from the validation
// logic. Tables are constructed once by the bundle loader and injected into
// the Hierarchy; nothing mutates them afterwards, so a single snapshot can
// be shared across concurrent validation calls without locking.

package topics

import "fmt"

// NumLevels is the number of fixed levels in the WIS2 topic hierarchy.
const NumLevels = 7

// Level indices into a Tables snapshot.
const (
	LevelChannel = iota
	LevelVersion
	LevelSystem
	LevelCentreID
	LevelNotificationType
	LevelDataPolicy
	LevelEarthSystemDiscipline
)

// LevelNames holds the canonical level names, in hierarchy order. These
// match the file names of the WTH bundle tables.
var LevelNames = [NumLevels]string{
	"channel",
	"version",
	"system",
	"centre-id",
	"notification-type",
	"data-policy",
	"earth-system-discipline",
}

// Tables is an immutable snapshot of the per-level token sets.
//
// Levels 0-5 hold single-segment literal tokens. Level 6
// (earth-system-discipline) holds full slash-joined subtopic paths, because
// the discipline portion of a topic has variable depth.
type Tables struct {
	levels [NumLevels][]string
	sets   [NumLevels]map[string]struct{}
}

// NewTables builds a snapshot from the per-level token lists. Exactly
// NumLevels lists must be given, in hierarchy order. The input slices are
// copied; callers may reuse them afterwards.
func NewTables(levels [][]string) (*Tables, error) {
	if len(levels) != NumLevels {
		return nil, fmt.Errorf("%w: expected %d levels, got %d", ErrInvalidArgument, NumLevels, len(levels))
	}

	t := &Tables{}
	for i, tokens := range levels {
		t.levels[i] = append([]string(nil), tokens...)
		t.sets[i] = make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			t.sets[i][tok] = struct{}{}
		}
	}
	return t, nil
}

// Level returns the token list for a level, in table order.
// The returned slice must not be modified.
func (t *Tables) Level(i int) []string {
	return t.levels[i]
}

// Contains reports whether token is a member of the level's token set.
func (t *Tables) Contains(level int, token string) bool {
	_, ok := t.sets[level][token]
	return ok
}
