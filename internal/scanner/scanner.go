// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides the per-line minforth lexer.
package scanner

import (
	"strconv"
	"strings"

	"nickandperla.net/minforth/internal/token"
)

// Capacities inherited from the original line-buffered engine. Input
// beyond them is clipped, not reported: truncation is the outer layer's
// concern, never the interpreter's.
const (
	LineBufferSize = 256
	MaxLineTokens  = 128
)

// Scanner tokenizes a single input line. Tokens are produced fresh per
// line and do not outlive it.
type Scanner struct {
	line []rune
	pos  int
}

// New creates a Scanner over one raw input line.
func New(line string) *Scanner {
	runes := []rune(line)
	if len(runes) > LineBufferSize {
		runes = runes[:LineBufferSize]
	}
	return &Scanner{line: runes}
}

// Next returns the next token on the line. The second result is false
// once the line holds no further non-whitespace input; that is the sole
// termination signal.
func (s *Scanner) Next() (token.Token, bool) {
	for {
		s.skipSpaces()
		if s.pos >= len(s.line) {
			return token.Token{Kind: token.EOF}, false
		}

		r := s.line[s.pos]

		if isDigit(r) || (isSign(r) && s.digitFollows()) {
			return s.scanInt(), true
		}
		if isAlpha(r) {
			return s.scanWord(), true
		}
		if k, ok := token.FromRune(r); ok {
			s.pos++
			return token.Token{Kind: k}, true
		}

		// Anything else is malformed punctuation: consume and move on.
		s.pos++
	}
}

// ScanLine tokenizes a whole line, clipped to MaxLineTokens.
func ScanLine(line string) []token.Token {
	s := New(line)
	toks := make([]token.Token, 0, 16)
	for len(toks) < MaxLineTokens {
		tok, ok := s.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

// scanInt consumes an optional sign and a maximal digit run. A run that
// does not parse as an integer (out of range) degrades to a WORD token,
// leaving the dictionary to reject it.
func (s *Scanner) scanInt() token.Token {
	start := s.pos
	if isSign(s.line[s.pos]) {
		s.pos++
	}
	for s.pos < len(s.line) && isDigit(s.line[s.pos]) {
		s.pos++
	}
	text := string(s.line[start:s.pos])
	v, err := strconv.Atoi(text)
	if err != nil {
		return token.Token{Kind: token.WORD, Word: text}
	}
	return token.Token{Kind: token.INT, Int: v}
}

// scanWord consumes a maximal alphanumeric run, normalizes it to upper
// case, and classifies it against the built-in name table before
// falling back to a generic word reference.
func (s *Scanner) scanWord() token.Token {
	start := s.pos
	for s.pos < len(s.line) && isAlphaNum(s.line[s.pos]) {
		s.pos++
	}
	name := strings.ToUpper(string(s.line[start:s.pos]))
	if k, ok := token.FromWord(name); ok {
		return token.Token{Kind: k}
	}
	return token.Token{Kind: token.WORD, Word: name}
}

func (s *Scanner) skipSpaces() {
	for s.pos < len(s.line) && isSpace(s.line[s.pos]) {
		s.pos++
	}
}

func (s *Scanner) digitFollows() bool {
	return s.pos+1 < len(s.line) && isDigit(s.line[s.pos+1])
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isSign(r rune) bool  { return r == '+' || r == '-' }

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphaNum(r rune) bool { return isAlpha(r) || isDigit(r) }
