// Package stack implements the fixed-capacity integer value stack.
package stack

import "errors"

// DefaultCapacity is used when no explicit capacity is configured.
const DefaultCapacity = 128

var (
	// ErrOverflow is returned by Push when the stack is full.
	ErrOverflow = errors.New("stack overflow")
	// ErrUnderflow is returned by Pop and Peek when the stack is empty.
	ErrUnderflow = errors.New("stack underflow")
)

// Stack is a LIFO of signed integers with a fixed maximum depth. It is
// the sole data space for computation and is owned exclusively by one
// interpreter for the life of the process.
type Stack struct {
	cells []int
	limit int
}

// New creates a Stack with the given capacity. Non-positive capacities
// fall back to DefaultCapacity.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{
		cells: make([]int, 0, capacity),
		limit: capacity,
	}
}

// Push appends a value. On overflow the value is not stored.
func (s *Stack) Push(v int) error {
	if len(s.cells) == s.limit {
		return ErrOverflow
	}
	s.cells = append(s.cells, v)
	return nil
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (int, error) {
	if len(s.cells) == 0 {
		return 0, ErrUnderflow
	}
	v := s.cells[len(s.cells)-1]
	s.cells = s.cells[:len(s.cells)-1]
	return v, nil
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (int, error) {
	if len(s.cells) == 0 {
		return 0, ErrUnderflow
	}
	return s.cells[len(s.cells)-1], nil
}

// Depth returns the current height.
func (s *Stack) Depth() int { return len(s.cells) }

// Cap returns the configured maximum depth.
func (s *Stack) Cap() int { return s.limit }

// Clear empties the stack.
func (s *Stack) Clear() { s.cells = s.cells[:0] }

// Snapshot returns a bottom-first copy of the current cells.
func (s *Stack) Snapshot() []int {
	out := make([]int, len(s.cells))
	copy(out, s.cells)
	return out
}
