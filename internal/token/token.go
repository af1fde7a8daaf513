// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines minforth token kinds and the fixed built-in word set.
package token

import "strconv"

// Kind identifies a minforth token.
type Kind int

const (
	EOF Kind = iota
	INT
	WORD

	// Named built-ins.
	DUP
	DROP
	SWAP
	CL
	ABS
	IF
	ELSE
	THEN

	// Single-character operators.
	PLUS
	MINUS
	MUL
	DIV
	MOD
	DOT
	EQ
	LESS
	MORE
	COLON
	SEMICOLON
)

// Token is a lexed token. Int carries the INT payload, Word the
// case-normalized WORD payload; both are zero otherwise.
type Token struct {
	Kind Kind
	Int  int
	Word string
}

// builtinWords maps the fixed alphabetic vocabulary to token kinds.
// MOD appears here as well as in the operator table: the engine accepts
// both the word MOD and the % character.
var builtinWords = map[string]Kind{
	"DUP":  DUP,
	"DROP": DROP,
	"SWAP": SWAP,
	"CL":   CL,
	"ABS":  ABS,
	"IF":   IF,
	"ELSE": ELSE,
	"THEN": THEN,
	"MOD":  MOD,
}

// FromWord returns the built-in kind for a case-normalized word name.
func FromWord(name string) (Kind, bool) {
	k, ok := builtinWords[name]
	return k, ok
}

// FromRune returns the built-in kind for a single-character operator.
func FromRune(r rune) (Kind, bool) {
	switch r {
	case '+':
		return PLUS, true
	case '-':
		return MINUS, true
	case '*':
		return MUL, true
	case '/':
		return DIV, true
	case '%':
		return MOD, true
	case '.':
		return DOT, true
	case '=':
		return EQ, true
	case '<':
		return LESS, true
	case '>':
		return MORE, true
	case ':':
		return COLON, true
	case ';':
		return SEMICOLON, true
	}
	return EOF, false
}

// IsControlFlow returns true for IF, ELSE and THEN, which only have
// meaning while compiling a definition.
func (k Kind) IsControlFlow() bool {
	switch k {
	case IF, ELSE, THEN:
		return true
	}
	return false
}

// IsOperation returns true for kinds that act directly on the value
// stack in either mode: arithmetic, comparison, stack manipulation and
// print.
func (k Kind) IsOperation() bool {
	switch k {
	case DUP, DROP, SWAP, CL, ABS, PLUS, MINUS, MUL, DIV, MOD, DOT, EQ, LESS, MORE:
		return true
	}
	return false
}

// String returns the canonical spelling of a token kind.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case INT:
		return "INT"
	case WORD:
		return "WORD"
	case DUP:
		return "DUP"
	case DROP:
		return "DROP"
	case SWAP:
		return "SWAP"
	case CL:
		return "CL"
	case ABS:
		return "ABS"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case THEN:
		return "THEN"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case MOD:
		return "MOD"
	case DOT:
		return "."
	case EQ:
		return "="
	case LESS:
		return "<"
	case MORE:
		return ">"
	case COLON:
		return ":"
	case SEMICOLON:
		return ";"
	}
	return "UNKNOWN"
}

// String returns the source spelling of a token.
func (t Token) String() string {
	switch t.Kind {
	case INT:
		return strconv.Itoa(t.Int)
	case WORD:
		return t.Word
	}
	return t.Kind.String()
}

// BuiltinNames returns the spellings of every fixed built-in word,
// including the single-character operators.
func BuiltinNames() []string {
	return []string{
		"DUP", "DROP", "SWAP", "CL", "ABS", "IF", "ELSE", "THEN",
		"+", "-", "*", "/", "MOD", ".", "=", "<", ">", ":", ";",
	}
}
