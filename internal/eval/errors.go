package eval

import "errors"

// Interpreter failure kinds. Stack overflow/underflow live in the
// stack package; everything here is classified with errors.Is and
// wrapped with the offending word for context.
var (
	ErrUnknownWord           = errors.New("unknown word")
	ErrInvalidDefinition     = errors.New("invalid definition")
	ErrNestedDefinition      = errors.New("nested definition")
	ErrMisplacedControlFlow  = errors.New("misplaced control flow")
	ErrUnbalancedControlFlow = errors.New("unbalanced control flow")
	ErrRecursionLimit        = errors.New("recursion limit exceeded")
	ErrDivisionByZero        = errors.New("division by zero")
)
