// Package log provides centralised audit logging for wistopics operations.
// Logs are stored in ~/.wistopics/log/wistopics-log.db and track CLI
// commands and MCP tool invocations.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("topic:validate", "validate").
//		Topic(topic).
//		Detail("strict", strict).
//		Detail("valid", valid).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "topic:list",
// "bundle:sync", "mcp:validate".
package log

import (
	"sync"
	"time"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "topic:validate", "mcp:list"
	Action string // verb: validate, list, sync, etc.
	Topic  string // input: topic or centre-id being checked

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call
// [Builder.Write] to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "topic:validate")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:list")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Topic sets the topic or centre-id this operation checked.
// Leave unset for operations that don't target one (e.g., sync).
func (b *Builder) Topic(topic string) *Builder {
	b.entry.Topic = topic
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// validation mode, verdicts, child counts, bundle URLs. Can be called
// multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure
// from err. A nil err logs the entry as successful; a non-nil err logs it
// as failed with the error message. Note that an invalid topic is still a
// successful validate operation: the verdict travels in Detail, not in
// the error column.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// SetTables sets the tables-directory identifier for subsequent log
// entries, so runs against different bundles can be told apart.
func SetTables(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.tables = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
