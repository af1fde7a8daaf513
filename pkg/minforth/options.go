// Package minforth provides the public API for the minforth interpreter.
package minforth

import (
	"io"

	"nickandperla.net/minforth/internal/store"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithSQLiteHistory records the session transcript to a SQLite
// database at the given path.
func WithSQLiteHistory(path string) Option {
	return func(r *Runtime) {
		s, err := store.NewSQLite(path)
		if err == nil {
			r.history = s
		}
	}
}

// WithMemoryHistory records the session transcript in memory (for
// testing).
func WithMemoryHistory() Option {
	return func(r *Runtime) {
		r.history = store.NewMemory()
	}
}

// WithHistory sets a custom history store.
func WithHistory(s Store) Option {
	return func(r *Runtime) {
		r.history = s
	}
}

// WithOutput streams engine output to w as it is emitted, in addition
// to the per-call capture Eval returns.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) {
		r.out = w
	}
}

// WithStackCapacity sets the value stack's maximum depth.
func WithStackCapacity(n int) Option {
	return func(r *Runtime) {
		r.stackCap = n
	}
}

// WithRecursionLimit bounds nested user-word calls.
func WithRecursionLimit(n int) Option {
	return func(r *Runtime) {
		r.rlimit = n
	}
}

// WithPrelude sets a custom prelude source to be loaded on startup.
// If not set, DefaultPrelude is used.
func WithPrelude(source string) Option {
	return func(r *Runtime) {
		r.prelude = source
	}
}

// WithNoPrelude disables loading the prelude.
func WithNoPrelude() Option {
	return func(r *Runtime) {
		r.noPrelude = true
	}
}

// Store is the interface for custom history stores.
type Store = store.Store

// HistoryEntry is one recorded transcript line.
type HistoryEntry = store.Entry
