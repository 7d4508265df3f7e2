// errors.go defines sentinel errors for topic hierarchy operations.
//
// Separated to centralise error definitions. These errors are used with
// errors.Is() for type-safe error checking. Each error represents a
// distinct failure category.
//
// Design: Sentinel errors (not error types) because callers only branch on
// the category. Detailed messages are provided by wrapping these with
// fmt.Errorf in the functions that return them.

package topics

import "errors"

var (
	// ErrInvalidArgument is returned for structurally malformed input:
	// an empty topic, the bare "/" hierarchy, or a centre-id with no
	// TLD separator. Well-formed-but-incorrect topics do not produce an
	// error; Validate returns false for those.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidTopic is returned by ListChildren when the given topic
	// fails validation.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrNoMatch is returned by ListChildren when a valid topic has no
	// children in the loaded tables.
	ErrNoMatch = errors.New("no matching topics")
)
