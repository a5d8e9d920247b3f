package validate

import (
	"fmt"
	"reflect"

	"github.com/druvisc/solid-abstract-syntax-tree/internal/numeric"
	"github.com/druvisc/solid-abstract-syntax-tree/internal/render"
)

// Evaluator is the capability every operand must have.
type Evaluator interface {
	Evaluate() float64
}

// Literal fails with ErrInvalidLiteral unless value is a finite number.
func Literal(value any) error {
	if numeric.IsFinite(value) {
		return nil
	}
	return NewLiteralError(value)
}

// Operands checks that both sides of a binary operator can be evaluated. The
// check looks at what the values can do, not at their concrete types.
func Operands(left any, right any, operator string) error {
	if canEvaluate(left) && canEvaluate(right) {
		return nil
	}
	return NewOperandError(operator)
}

// Divisor runs the operand check and then evaluates right eagerly, failing
// when it is zero.
func Divisor(left any, right any, operator string) error {
	if err := Operands(left, right, operator); err != nil {
		return err
	}
	if right.(Evaluator).Evaluate() != 0 {
		return nil
	}
	return NewDivisorError(operator, text(right))
}

func canEvaluate(value any) bool {
	if _, ok := value.(Evaluator); !ok {
		return false
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !v.IsNil()
	}
	return true
}

func text(value any) string {
	if r, ok := value.(render.Renderer); ok {
		return r.Render()
	}
	return fmt.Sprint(value)
}
