package validate

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLiteral = errors.New("invalid literal")
	ErrMissingOperand = errors.New("missing operand")
	ErrZeroDivisor    = errors.New("zero divisor")
)

// LiteralError is returned when a literal is built from something that is not
// a finite number.
type LiteralError struct {
	Value any
}

func NewLiteralError(value any) error {
	return &LiteralError{value}
}

func (err *LiteralError) Error() string {
	return fmt.Sprintf("%v: %#v is not a finite number", ErrInvalidLiteral, err.Value)
}

func (err *LiteralError) Unwrap() error {
	return ErrInvalidLiteral
}

// OperandError is returned when a binary operator is given an operand that
// cannot be evaluated.
type OperandError struct {
	Operator string
}

func NewOperandError(operator string) error {
	return &OperandError{operator}
}

func (err *OperandError) Error() string {
	return fmt.Sprintf("%v: %q needs two expression nodes", ErrMissingOperand, err.Operator)
}

func (err *OperandError) Unwrap() error {
	return ErrMissingOperand
}

// DivisorError is returned when the right operand of a division evaluates to
// zero. Divisor holds the rendered sub-expression.
type DivisorError struct {
	Operator string
	Divisor  string
}

func NewDivisorError(operator string, divisor string) error {
	return &DivisorError{operator, divisor}
}

func (err *DivisorError) Error() string {
	return fmt.Sprintf(
		"%v: Divide (%s) by %s, which evaluates to 0",
		ErrZeroDivisor,
		err.Operator,
		err.Divisor,
	)
}

func (err *DivisorError) Unwrap() error {
	return ErrZeroDivisor
}
