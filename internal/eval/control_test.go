package eval

import (
	"errors"
	"testing"
)

func TestConditionalWithoutElse(t *testing.T) {
	e, out := newTestEval()
	mustEval(t, e, ": ABSIFY DUP 0 < IF 0 SWAP - THEN ;")

	mustEval(t, e, "-5 ABSIFY .")
	if out.String() != "5\n" {
		t.Fatalf("expected '5' for negative input, got %q", out.String())
	}
	out.Reset()

	mustEval(t, e, "5 ABSIFY .")
	if out.String() != "5\n" {
		t.Errorf("expected '5' for positive input, got %q", out.String())
	}
}

func TestConditionalWithElse(t *testing.T) {
	e, out := newTestEval()
	mustEval(t, e, ": PICK 0 > IF 111 ELSE 222 THEN ;")

	mustEval(t, e, "9 PICK .")
	mustEval(t, e, "-9 PICK .")
	if out.String() != "111\n222\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestNestedConditionals(t *testing.T) {
	e, out := newTestEval()
	mustEval(t, e, ": SIGN DUP 0 = IF DROP 0 ELSE DUP 0 < IF DROP -1 ELSE DROP 1 THEN THEN ;")

	mustEval(t, e, "0 SIGN .")
	mustEval(t, e, "-7 SIGN .")
	mustEval(t, e, "7 SIGN .")
	if out.String() != "0\n-1\n1\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestZeroIsFalseNonZeroIsTrue(t *testing.T) {
	e, out := newTestEval()
	mustEval(t, e, ": CHECK IF 1 ELSE 0 THEN . ;")

	mustEval(t, e, "0 CHECK")
	mustEval(t, e, "1 CHECK")
	mustEval(t, e, "-37 CHECK")
	if out.String() != "0\n1\n1\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestControlFlowOutsideDefinition(t *testing.T) {
	for _, line := range []string{"1 IF", "ELSE", "THEN"} {
		e, _ := newTestEval()
		err := e.EvalLine(line)
		if !errors.Is(err, ErrMisplacedControlFlow) {
			t.Errorf("EvalLine(%q): expected misplaced control flow, got %v", line, err)
		}
	}
}

func TestSemicolonWithoutColon(t *testing.T) {
	e, _ := newTestEval()
	err := e.EvalLine(";")
	if !errors.Is(err, ErrMisplacedControlFlow) {
		t.Errorf("expected misplaced control flow, got %v", err)
	}
}

func TestUnbalancedControlFlow(t *testing.T) {
	cases := []string{
		": X 1 IF 2 ;",
		": X ELSE ;",
		": X THEN ;",
	}
	for _, line := range cases {
		e, _ := newTestEval()
		err := e.EvalLine(line)
		if !errors.Is(err, ErrUnbalancedControlFlow) {
			t.Errorf("EvalLine(%q): expected unbalanced control flow, got %v", line, err)
			continue
		}
		// The failed definition must not corrupt the dictionary.
		if err := e.EvalLine("X"); !errors.Is(err, ErrUnknownWord) {
			t.Errorf("EvalLine(%q): X should not be defined, got %v", line, err)
		}
	}
}

func TestNestedDefinitionRejected(t *testing.T) {
	e, _ := newTestEval()
	err := e.EvalLine(": OUTER : INNER ;")
	if !errors.Is(err, ErrNestedDefinition) {
		t.Fatalf("expected nested definition, got %v", err)
	}
	// The failure resets to EXECUTE mode.
	if err := e.EvalLine("OUTER"); !errors.Is(err, ErrUnknownWord) {
		t.Errorf("OUTER should not be defined, got %v", err)
	}
	mustEval(t, e, "1 2 + .")
}

func TestInvalidDefinitionName(t *testing.T) {
	cases := []string{
		":",
		": 5 1 + ;",
		": DUP 1 ;",
		": ; ",
	}
	for _, line := range cases {
		e, _ := newTestEval()
		err := e.EvalLine(line)
		if !errors.Is(err, ErrInvalidDefinition) {
			t.Errorf("EvalLine(%q): expected invalid definition, got %v", line, err)
		}
	}
}

func TestUnterminatedDefinition(t *testing.T) {
	e, _ := newTestEval()
	err := e.EvalLine(": HALF 2 /")
	if !errors.Is(err, ErrInvalidDefinition) {
		t.Fatalf("expected invalid definition, got %v", err)
	}
	if err := e.EvalLine("HALF"); !errors.Is(err, ErrUnknownWord) {
		t.Errorf("HALF should not be defined, got %v", err)
	}
}

func TestFailureKeepsStack(t *testing.T) {
	e, _ := newTestEval()
	mustEval(t, e, "1 2 3")
	if err := e.EvalLine("NOPE"); err == nil {
		t.Fatal("expected error")
	}
	if got := e.Stack().Snapshot(); len(got) != 3 {
		t.Errorf("expected stack preserved at failure point, got %v", got)
	}
}

func TestCompiledTokensNotExecuted(t *testing.T) {
	e, out := newTestEval()
	// Nothing runs and nothing prints while compiling.
	mustEval(t, e, ": NOISY 1 2 + . ;")
	if out.String() != "" {
		t.Fatalf("compilation must not execute, got output %q", out.String())
	}
	if e.Stack().Depth() != 0 {
		t.Fatalf("compilation must not touch the stack, depth %d", e.Stack().Depth())
	}
	mustEval(t, e, "NOISY")
	if out.String() != "3\n" {
		t.Errorf("expected '3', got %q", out.String())
	}
}
