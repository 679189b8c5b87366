package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArity reports a combinator called with too few operands.
	ErrInvalidArity = errors.New("invalid arity")
	// ErrInvalidBound reports a negative or inverted repetition or range bound.
	ErrInvalidBound = errors.New("invalid bound")
)

// ContractError is the panic value of a constructor given operands that can
// never form a valid node.
type ContractError struct {
	Op     string
	Err    error
	Detail string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("prettyregex: %s: %v: %s", e.Op, e.Err, e.Detail)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func contractf(op string, err error, format string, args ...any) *ContractError {
	return &ContractError{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)}
}
