package scanner

import (
	"strings"
	"testing"

	"nickandperla.net/minforth/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestIntegerLiterals(t *testing.T) {
	toks := ScanLine("1 42 -5 +7")
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(toks))
	}
	want := []int{1, 42, -5, 7}
	for i, w := range want {
		if toks[i].Kind != token.INT {
			t.Errorf("token %d: expected INT, got %v", i, toks[i].Kind)
		}
		if toks[i].Int != w {
			t.Errorf("token %d: expected %d, got %d", i, w, toks[i].Int)
		}
	}
}

func TestSignWithoutDigitIsOperator(t *testing.T) {
	toks := ScanLine("- + -x")
	got := kinds(toks)
	want := []token.Kind{token.MINUS, token.PLUS, token.MINUS, token.WORD}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if toks[3].Word != "X" {
		t.Errorf("expected word X, got %q", toks[3].Word)
	}
}

func TestBuiltinWordsAndCase(t *testing.T) {
	toks := ScanLine("dup DROP Swap cl abs if else then mod")
	want := []token.Kind{
		token.DUP, token.DROP, token.SWAP, token.CL, token.ABS,
		token.IF, token.ELSE, token.THEN, token.MOD,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestWordReferencesNormalized(t *testing.T) {
	toks := ScanLine("square x2 Foo")
	for _, tok := range toks {
		if tok.Kind != token.WORD {
			t.Fatalf("expected WORD, got %v", tok.Kind)
		}
	}
	if toks[0].Word != "SQUARE" || toks[1].Word != "X2" || toks[2].Word != "FOO" {
		t.Errorf("unexpected words: %v %v %v", toks[0].Word, toks[1].Word, toks[2].Word)
	}
}

func TestSingleCharOperators(t *testing.T) {
	toks := ScanLine("+ - * / % . : ; = < >")
	want := []token.Kind{
		token.PLUS, token.MINUS, token.MUL, token.DIV, token.MOD,
		token.DOT, token.COLON, token.SEMICOLON, token.EQ, token.LESS, token.MORE,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestMalformedPunctuationSkipped(t *testing.T) {
	toks := ScanLine("1 @#$ 2 ~`? 3")
	got := kinds(toks)
	want := []token.Kind{token.INT, token.INT, token.INT}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
}

func TestEmptyLine(t *testing.T) {
	if toks := ScanLine(""); len(toks) != 0 {
		t.Errorf("expected no tokens, got %d", len(toks))
	}
	if toks := ScanLine("   \t  "); len(toks) != 0 {
		t.Errorf("expected no tokens from whitespace, got %d", len(toks))
	}
}

func TestOverlongLiteralDegradesToWord(t *testing.T) {
	toks := ScanLine("99999999999999999999999")
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}
	if toks[0].Kind != token.WORD {
		t.Errorf("expected WORD for out-of-range literal, got %v", toks[0].Kind)
	}
}

func TestTokenLimit(t *testing.T) {
	line := strings.Repeat("1 ", MaxLineTokens+40)
	toks := ScanLine(line)
	if len(toks) != MaxLineTokens {
		t.Errorf("expected %d tokens, got %d", MaxLineTokens, len(toks))
	}
}

func TestLineClipped(t *testing.T) {
	// 300 chars; only the first LineBufferSize runes are lexed.
	line := strings.Repeat("11 ", 100)
	toks := ScanLine(line)
	// 256 runes of "11 " hold 85 full literals plus a clipped "1".
	if len(toks) != 86 {
		t.Errorf("expected 86 tokens from clipped line, got %d", len(toks))
	}
}

func TestNextTermination(t *testing.T) {
	s := New("1 2")
	if _, ok := s.Next(); !ok {
		t.Fatal("expected first token")
	}
	if _, ok := s.Next(); !ok {
		t.Fatal("expected second token")
	}
	if tok, ok := s.Next(); ok {
		t.Fatalf("expected end of line, got %v", tok)
	}
	// Termination is stable.
	if _, ok := s.Next(); ok {
		t.Fatal("expected end of line to persist")
	}
}
