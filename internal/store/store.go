// Package store provides session-history persistence for minforth.
// The history is a transcript of evaluated lines; dictionary contents
// are never persisted and every process starts with a fresh dictionary.
package store

// Entry is one recorded REPL line.
type Entry struct {
	Seq    int
	Line   string
	Result string
	Err    string
	Ts     string
}

// Store is the interface for history persistence.
type Store interface {
	// Append records one evaluated line with its output and, when the
	// line failed, the error text.
	Append(line, result, errText string) error
	// Recent returns up to limit entries, newest first. limit <= 0
	// returns everything.
	Recent(limit int) ([]Entry, error)
	// Clear removes all recorded history.
	Clear() error
	// Close releases resources.
	Close() error
}
