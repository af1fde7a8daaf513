// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval implements the minforth interpreter: the two-mode
// state machine that executes tokens immediately or compiles them into
// dictionary entries, backpatching conditional branches at definition
// time.
package eval

import (
	"fmt"

	"nickandperla.net/minforth/internal/dict"
	"nickandperla.net/minforth/internal/scanner"
	"nickandperla.net/minforth/internal/stack"
	"nickandperla.net/minforth/internal/token"
)

// DefaultRecursionLimit bounds nested user-word invocation. User
// definitions may be self-referential, so the host call stack is never
// trusted to absorb them.
const DefaultRecursionLimit = 64

// OutputWriter receives everything the engine emits: the text of `.`
// and nothing else.
type OutputWriter func(text string) error

type mode int

const (
	modeExecute mode = iota
	modeCompile
)

// Evaluator owns the dictionary and the value stack for the life of
// the process. Both persist across lines; the stack is deliberately a
// persistent accumulator and is never cleared between lines.
type Evaluator struct {
	dict  *dict.Dict
	stack *stack.Stack
	out   OutputWriter

	mode     mode
	def      *dict.Entry // entry under construction, COMPILE mode only
	patches  []int       // body indexes of unresolved forward branches
	maxDepth int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithOutputWriter sets the writer for `.` output.
func WithOutputWriter(w OutputWriter) Option {
	return func(e *Evaluator) { e.out = w }
}

// WithStackCapacity sets the value stack's maximum depth.
func WithStackCapacity(n int) Option {
	return func(e *Evaluator) { e.stack = stack.New(n) }
}

// WithRecursionLimit bounds nested user-word calls.
func WithRecursionLimit(n int) Option {
	return func(e *Evaluator) { e.maxDepth = n }
}

// New creates an Evaluator with a fresh dictionary and value stack.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		dict:     dict.New(),
		stack:    stack.New(stack.DefaultCapacity),
		maxDepth: DefaultRecursionLimit,
		out: func(text string) error {
			fmt.Print(text)
			return nil
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.maxDepth <= 0 {
		e.maxDepth = DefaultRecursionLimit
	}
	return e
}

// EvalLine lexes one raw input line and interprets it.
func (e *Evaluator) EvalLine(line string) error {
	return e.EvalTokens(scanner.ScanLine(line))
}

// EvalTokens interprets one line's token sequence. Any failure aborts
// the line immediately: the pending definition (if any) is discarded,
// the mode is forced back to EXECUTE, and the value stack is left
// exactly as it was at the point of failure.
func (e *Evaluator) EvalTokens(toks []token.Token) error {
	for i := 0; i < len(toks); i++ {
		var err error
		if e.mode == modeCompile {
			err = e.compileToken(toks[i])
		} else if toks[i].Kind == token.COLON {
			// The definition-start consumes the following token as
			// the new entry's name.
			if i+1 == len(toks) {
				err = fmt.Errorf("':' with no name: %w", ErrInvalidDefinition)
			} else {
				i++
				err = e.beginDefinition(toks[i])
			}
		} else {
			err = e.executeToken(toks[i])
		}
		if err != nil {
			e.reset()
			return err
		}
	}
	if e.mode == modeCompile {
		name := e.def.Name
		e.reset()
		return fmt.Errorf("unterminated definition of %s: %w", name, ErrInvalidDefinition)
	}
	return nil
}

// beginDefinition validates the name token after ':' and enters
// COMPILE mode with an empty body. Built-in names lex as built-in
// tokens, never as word references, so they are rejected here.
func (e *Evaluator) beginDefinition(name token.Token) error {
	if name.Kind != token.WORD {
		return fmt.Errorf("cannot redefine %s: %w", name, ErrInvalidDefinition)
	}
	e.def = &dict.Entry{Name: name.Word, Kind: dict.User}
	e.patches = e.patches[:0]
	e.mode = modeCompile
	return nil
}

// reset discards any in-progress definition and returns to EXECUTE
// mode. The dictionary and value stack are untouched.
func (e *Evaluator) reset() {
	e.mode = modeExecute
	e.def = nil
	e.patches = e.patches[:0]
}

// Stack exposes the value stack for inspection by the surrounding REPL.
func (e *Evaluator) Stack() *stack.Stack { return e.stack }

// Dict exposes the dictionary for inspection by the surrounding REPL.
func (e *Evaluator) Dict() *dict.Dict { return e.dict }
