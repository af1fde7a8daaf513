package eval

import (
	"fmt"

	"nickandperla.net/minforth/internal/dict"
	"nickandperla.net/minforth/internal/token"
)

// compileToken appends one token to the body under construction
// (COMPILE mode). IF/ELSE/THEN and ';' act immediately instead: they
// are the compile-time words that resolve forward branches.
//
// The patch stack holds body indexes of branches whose targets are not
// known yet. IF pushes one unresolved site; ELSE resolves it to the
// instruction after the unconditional jump it appends and pushes that
// jump's site in its place; THEN resolves the top site to the current
// end of body. Single-pass, no second sweep.
func (e *Evaluator) compileToken(tok token.Token) error {
	body := &e.def.Body

	switch {
	case tok.Kind == token.INT:
		*body = append(*body, dict.Instr{Op: dict.OpLiteral, Value: tok.Int})

	case tok.Kind == token.WORD:
		// Resolved by name at execution time: forward references and
		// recursion compile fine.
		*body = append(*body, dict.Instr{Op: dict.OpCall, Name: tok.Word})

	case tok.Kind.IsOperation():
		*body = append(*body, dict.Instr{Op: dict.OpBuiltin, Builtin: tok.Kind})

	case tok.Kind == token.IF:
		e.patches = append(e.patches, len(*body))
		*body = append(*body, dict.Instr{Op: dict.OpBranchZero, Target: dict.Unresolved})

	case tok.Kind == token.ELSE:
		if len(e.patches) == 0 {
			return fmt.Errorf("ELSE in %s: %w", e.def.Name, ErrUnbalancedControlFlow)
		}
		site := e.patches[len(e.patches)-1]
		jump := len(*body)
		*body = append(*body, dict.Instr{Op: dict.OpJump, Target: dict.Unresolved})
		(*body)[site].Target = jump + 1
		e.patches[len(e.patches)-1] = jump

	case tok.Kind == token.THEN:
		if len(e.patches) == 0 {
			return fmt.Errorf("THEN in %s: %w", e.def.Name, ErrUnbalancedControlFlow)
		}
		site := e.patches[len(e.patches)-1]
		e.patches = e.patches[:len(e.patches)-1]
		(*body)[site].Target = len(*body)

	case tok.Kind == token.SEMICOLON:
		if len(e.patches) > 0 {
			return fmt.Errorf("IF without THEN in %s: %w", e.def.Name, ErrUnbalancedControlFlow)
		}
		e.dict.Define(e.def)
		e.def = nil
		e.mode = modeExecute

	case tok.Kind == token.COLON:
		return fmt.Errorf("':' inside %s: %w", e.def.Name, ErrNestedDefinition)
	}
	return nil
}
