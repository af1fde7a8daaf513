package eval

import (
	"fmt"
	"strconv"

	"nickandperla.net/minforth/internal/dict"
	"nickandperla.net/minforth/internal/stack"
	"nickandperla.net/minforth/internal/token"
)

// executeToken acts on one token immediately (EXECUTE mode).
func (e *Evaluator) executeToken(tok token.Token) error {
	switch {
	case tok.Kind == token.INT:
		return e.stack.Push(tok.Int)

	case tok.Kind.IsOperation():
		return e.operation(tok.Kind)

	case tok.Kind == token.WORD:
		return e.call(tok.Word, 0)

	case tok.Kind.IsControlFlow():
		return fmt.Errorf("%s outside a definition: %w", tok.Kind, ErrMisplacedControlFlow)

	case tok.Kind == token.SEMICOLON:
		return fmt.Errorf("';' with no matching ':': %w", ErrMisplacedControlFlow)
	}
	return nil
}

// call resolves a word reference by name and executes its stored body,
// recursively, against the shared value stack. depth counts nested
// user-word invocations.
func (e *Evaluator) call(name string, depth int) error {
	if depth >= e.maxDepth {
		return fmt.Errorf("calling %s at depth %d: %w", name, depth, ErrRecursionLimit)
	}
	entry, ok := e.dict.Lookup(name)
	if !ok || entry.Kind != dict.User {
		return fmt.Errorf("%s: %w", name, ErrUnknownWord)
	}
	// Holding entry.Body means a redefinition of this word mid-flight
	// leaves the running invocation on its original body.
	return e.runBody(entry.Body, depth)
}

// runBody executes one finalized body. Branch targets were resolved at
// definition time and always land inside [0, len(body)].
func (e *Evaluator) runBody(body []dict.Instr, depth int) error {
	for pc := 0; pc < len(body); {
		in := body[pc]
		switch in.Op {
		case dict.OpLiteral:
			if err := e.stack.Push(in.Value); err != nil {
				return err
			}
		case dict.OpBuiltin:
			if err := e.operation(in.Builtin); err != nil {
				return err
			}
		case dict.OpCall:
			if err := e.call(in.Name, depth+1); err != nil {
				return err
			}
		case dict.OpBranchZero:
			v, err := e.stack.Pop()
			if err != nil {
				return fmt.Errorf("IF: %w", err)
			}
			if v == 0 {
				pc = in.Target
				continue
			}
		case dict.OpJump:
			pc = in.Target
			continue
		}
		pc++
	}
	return nil
}

// operation runs one stack-effect built-in. Operations never partially
// apply: on any failure the stack is exactly as it was beforehand.
func (e *Evaluator) operation(k token.Kind) error {
	switch k {
	case token.DUP:
		v, err := e.stack.Peek()
		if err != nil {
			return fmt.Errorf("DUP: %w", err)
		}
		if err := e.stack.Push(v); err != nil {
			return fmt.Errorf("DUP: %w", err)
		}
		return nil

	case token.DROP:
		if _, err := e.stack.Pop(); err != nil {
			return fmt.Errorf("DROP: %w", err)
		}
		return nil

	case token.SWAP:
		if e.stack.Depth() < 2 {
			return fmt.Errorf("SWAP: %w", stack.ErrUnderflow)
		}
		b, _ := e.stack.Pop()
		a, _ := e.stack.Pop()
		e.stack.Push(b)
		e.stack.Push(a)
		return nil

	case token.CL:
		e.stack.Clear()
		return nil

	case token.ABS:
		v, err := e.stack.Pop()
		if err != nil {
			return fmt.Errorf("ABS: %w", err)
		}
		if v < 0 {
			v = -v
		}
		e.stack.Push(v)
		return nil

	case token.DOT:
		v, err := e.stack.Pop()
		if err != nil {
			return fmt.Errorf("'.': %w", err)
		}
		return e.out(strconv.Itoa(v) + "\n")

	case token.PLUS:
		return e.binop("+", func(a, b int) (int, error) { return a + b, nil })
	case token.MINUS:
		return e.binop("-", func(a, b int) (int, error) { return a - b, nil })
	case token.MUL:
		return e.binop("*", func(a, b int) (int, error) { return a * b, nil })
	case token.DIV:
		return e.binop("/", func(a, b int) (int, error) {
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			return a / b, nil
		})
	case token.MOD:
		return e.binop("MOD", func(a, b int) (int, error) {
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			return a % b, nil
		})

	case token.EQ:
		return e.binop("=", func(a, b int) (int, error) { return boolCell(a == b), nil })
	case token.LESS:
		return e.binop("<", func(a, b int) (int, error) { return boolCell(a < b), nil })
	case token.MORE:
		return e.binop(">", func(a, b int) (int, error) { return boolCell(a > b), nil })
	}
	return nil
}

// binop pops b then a (postfix order: `a b -` computes a-b), pushes one
// result. Operands are restored if the operation itself fails.
func (e *Evaluator) binop(name string, fn func(a, b int) (int, error)) error {
	if e.stack.Depth() < 2 {
		return fmt.Errorf("%s: %w", name, stack.ErrUnderflow)
	}
	b, _ := e.stack.Pop()
	a, _ := e.stack.Pop()
	v, err := fn(a, b)
	if err != nil {
		e.stack.Push(a)
		e.stack.Push(b)
		return fmt.Errorf("%s: %w", name, err)
	}
	e.stack.Push(v)
	return nil
}

func boolCell(b bool) int {
	if b {
		return 1
	}
	return 0
}
