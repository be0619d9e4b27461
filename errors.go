package scheme

import (
	"fmt"
)

// SyntaxError covers every reading failure: imbalanced or missing parens,
// malformed define forms, invalid names and literals, and references to
// names with no binding.
type SyntaxError struct {
	err error
}

func newSyntaxError(err error) *SyntaxError {
	return &SyntaxError{err: err}
}

func syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{err: fmt.Errorf(format, args...)}
}

func (e *SyntaxError) Error() string {
	return e.err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.err
}

// ArityError reports a call carrying the wrong number of arguments.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("expected %d args, received %d", e.Want, e.Got)
}

// TypeError reports an operand of the wrong type reaching a builtin.
type TypeError struct {
	Op    string
	Value *Value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("unsupported operand type for %s: %s", e.Op, e.Value.Type)
}
