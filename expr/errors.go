package expr

import (
	"errors"

	"github.com/druvisc/solid-abstract-syntax-tree/internal/validate"
)

var (
	// ErrInvalidLiteral is wrapped by *LiteralError.
	ErrInvalidLiteral = validate.ErrInvalidLiteral
	// ErrMissingOperand is wrapped by *OperandError.
	ErrMissingOperand = validate.ErrMissingOperand
	// ErrZeroDivisor is wrapped by *DivisorError.
	ErrZeroDivisor = validate.ErrZeroDivisor
	// ErrMissingApply is returned by Binary when no Apply function is given.
	ErrMissingApply = errors.New("missing apply function")
)

// Error types carried by construction failures. Use errors.As to inspect them.
type (
	LiteralError = validate.LiteralError
	OperandError = validate.OperandError
	DivisorError = validate.DivisorError
)
