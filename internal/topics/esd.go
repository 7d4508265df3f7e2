// esd.go implements matching of earth-system-discipline subtopics against
// the level-6 reference table.
//
// Separated from topics.go because this is the only place wildcard
// semantics apply to whole paths rather than single tokens. The matcher
// works segment-wise: both the candidate and each table entry are split on
// '/' and compared position by position. Matching whole segments directly
// (rather than simulating wildcards with text patterns) means a candidate
// ending in "observations" can never match an entry ending in
// "observations1": segments are compared for equality, not prefix.

package topics

import "strings"

// experimentalSegment marks a discipline subtree that is not governed by
// the reference tables. Any subtopic whose second segment is this literal
// is accepted without a table lookup, in both strict and lenient mode.
const experimentalSegment = "experimental"

// matchESD reports whether the earth-system-discipline portion of a topic
// is valid against the level-6 table.
//
// In strict mode the subtopic must be an exact member of the table. In
// lenient mode it may contain '+' (exactly one segment) and a trailing '#'
// (the remainder of the path, zero or more segments), and is valid when at
// least one table entry matches.
func (h *Hierarchy) matchESD(subtopic string, strict bool) bool {
	segments := strings.Split(subtopic, "/")

	if len(segments) > 1 && segments[1] == experimentalSegment {
		return true
	}

	if h.tables.Contains(LevelEarthSystemDiscipline, subtopic) {
		return true
	}
	if strict {
		return false
	}

	for _, entry := range h.tables.Level(LevelEarthSystemDiscipline) {
		if matchSegments(segments, strings.Split(entry, "/")) {
			return true
		}
	}
	return false
}

// matchSegments evaluates a segment-wise wildcard pattern against a literal
// entry path. '+' matches exactly one segment. '#' matches the remainder of
// the entry, zero or more segments, and is honoured only in the final
// position. Without a trailing '#', the pattern and entry must have the
// same number of segments, so the final segments are compared for exact
// equality like any other position.
func matchSegments(pattern, entry []string) bool {
	for i, p := range pattern {
		if p == "#" {
			return i == len(pattern)-1
		}
		if i >= len(entry) {
			return false
		}
		if p != "+" && p != entry[i] {
			return false
		}
	}
	return len(pattern) == len(entry)
}
