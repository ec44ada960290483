package eval

import (
	"fmt"

	"github.com/acorn-io/jjay/pkg/token"
)

type ErrVariableNotFound struct {
	Name string
}

func (e *ErrVariableNotFound) Error() string {
	return fmt.Sprintf("variable not found: %s", e.Name)
}

type ErrVariableAlreadyExists struct {
	Name string
}

func (e *ErrVariableAlreadyExists) Error() string {
	return fmt.Sprintf("variable already exists: %s", e.Name)
}

// ErrInvalidLiteral is returned for a number or string literal whose text
// does not decode.
type ErrInvalidLiteral struct {
	Literal string
	Pos     token.Pos
	Err     error
}

func (e *ErrInvalidLiteral) Error() string {
	return fmt.Sprintf("invalid literal %s at %s: %v", e.Literal, e.Pos, e.Err)
}

func (e *ErrInvalidLiteral) Unwrap() error {
	return e.Err
}

// ErrOperator is raised by the builtin operators for operands they do not
// support.
type ErrOperator struct {
	Msg string
}

func (e *ErrOperator) Error() string {
	return e.Msg
}
