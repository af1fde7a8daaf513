// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package dict implements the minforth dictionary: the mapping from
// word name to either a built-in action or a compiled user definition.
package dict

import (
	"sort"
	"sync"

	"nickandperla.net/minforth/internal/token"
)

// EntryKind distinguishes fixed built-ins from user definitions.
type EntryKind int

const (
	Builtin EntryKind = iota
	User
)

// Op identifies a compiled body instruction.
type Op int

const (
	// OpLiteral pushes Value onto the value stack.
	OpLiteral Op = iota
	// OpBuiltin runs the built-in identified by Builtin.
	OpBuiltin
	// OpCall invokes the dictionary entry named Name, resolved at
	// execution time so redefinition shadows and forward references
	// work.
	OpCall
	// OpBranchZero pops one value and jumps to Target when it is zero;
	// any non-zero value falls through.
	OpBranchZero
	// OpJump jumps unconditionally to Target.
	OpJump
)

// Unresolved marks a branch whose target has not been patched yet.
// A finalized body never contains it.
const Unresolved = -1

// Instr is one compiled body instruction. Only the field selected by
// Op is meaningful.
type Instr struct {
	Op      Op
	Value   int
	Builtin token.Kind
	Name    string
	Target  int
}

// Entry is one dictionary entry. A user entry's Body is immutable once
// the entry has been defined.
type Entry struct {
	Name string
	Kind EntryKind
	Body []Instr
}

// Dict maps case-normalized names to entries. Redefinition replaces the
// entry atomically; a body already executing keeps its original slice.
type Dict struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// New creates a dictionary pre-seeded with the fixed built-in words.
func New() *Dict {
	d := &Dict{entries: make(map[string]*Entry)}
	for _, name := range token.BuiltinNames() {
		d.entries[name] = &Entry{Name: name, Kind: Builtin}
	}
	return d
}

// Lookup returns the entry for a name.
func (d *Dict) Lookup(name string) (*Entry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.entries[name]
	return e, ok
}

// IsBuiltin reports whether a name belongs to the fixed vocabulary.
func (d *Dict) IsBuiltin(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.entries[name]
	return ok && e.Kind == Builtin
}

// Define installs or replaces an entry under its name.
func (d *Dict) Define(e *Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[e.Name] = e
}

// Names returns every defined name in sorted order.
func (d *Dict) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UserNames returns the sorted names of user-defined entries only.
func (d *Dict) UserNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.entries))
	for name, e := range d.entries {
		if e.Kind == User {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
