package sieve

import "fmt"

// ParseError reports an input token that could not be read as a
// non-negative weight.
type ParseError struct {
	Token string
	Index int // zero-based position in the input list
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid weight value %q at position %d: expected a non-negative number", e.Token, e.Index+1)
}

// CountMismatchError reports a weight list whose length does not match
// the sieve stack.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("expected exactly %d weight values (one per sieve, including pan), got %d", e.Expected, e.Got)
}

// DegenerateInputError reports a sample with zero total mass. No table
// can be computed since every percentage would be undefined.
type DegenerateInputError struct{}

func (e *DegenerateInputError) Error() string {
	return "total retained weight is zero: at least one sieve must retain mass"
}

// StackError reports an invalid sieve stack definition.
type StackError struct {
	msg string
}

func (e *StackError) Error() string {
	return e.msg
}
