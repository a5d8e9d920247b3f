// Package expr builds immutable arithmetic expression trees. Every constructor
// validates its input before a node exists, so a tree that was built can
// always be evaluated and rendered.
package expr

import (
	"fmt"

	"github.com/druvisc/solid-abstract-syntax-tree/internal/render"
	"github.com/druvisc/solid-abstract-syntax-tree/internal/validate"
)

// Node is an expression tree node. Nodes never change after construction and
// may be shared between parents and goroutines.
type Node interface {
	Evaluate() float64
	Render() string
}

// Apply computes the value of a binary operator from its evaluated operands.
type Apply func(left, right float64) float64

// Check validates the operands of a binary operator before the node is built.
type Check func(left, right any, operator string) error

// Binary builds a node for an arbitrary binary operator. New operators are
// written as constructors that call Binary with their own symbol, Apply and
// Check.
//
// Both operands are always checked with CheckOperands first; check adds
// operator specific rules on top and may be nil. A nil apply fails with
// ErrMissingApply.
func Binary(operator string, left, right Node, apply Apply, check Check) (Node, error) {
	if apply == nil {
		return nil, fmt.Errorf("%w for %q", ErrMissingApply, operator)
	}
	if err := CheckOperands(left, right, operator); err != nil {
		return nil, err
	}
	if check != nil {
		if err := check(left, right, operator); err != nil {
			return nil, err
		}
	}
	return binary{
		left:     left,
		right:    right,
		operator: operator,
		apply:    apply,
	}, nil
}

type binary struct {
	left     Node
	right    Node
	operator string
	apply    Apply
}

func (b binary) Evaluate() float64 {
	left := b.left.Evaluate()
	right := b.right.Evaluate()
	return b.apply(left, right)
}

func (b binary) Render() string {
	return render.Binary(b.left, b.right, b.operator)
}

// CheckOperands fails with ErrMissingOperand unless both operands can be
// evaluated.
func CheckOperands(left, right any, operator string) error {
	return validate.Operands(left, right, operator)
}

// CheckDivisor runs CheckOperands, then fails with ErrZeroDivisor when right
// evaluates to zero.
func CheckDivisor(left, right any, operator string) error {
	return validate.Divisor(left, right, operator)
}

// Must returns node, panicking if err is non-nil. It is meant for trees whose
// shape is fixed in source code.
func Must(node Node, err error) Node {
	if err != nil {
		panic(err)
	}
	return node
}
