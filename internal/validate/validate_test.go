package validate

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type number float64

func (n number) Evaluate() float64 {
	return float64(n)
}

func (n number) Render() string {
	return "n"
}

type evaluations struct {
	calls int
}

func (e *evaluations) Evaluate() float64 {
	e.calls++
	return 1
}

func TestLiteral(t *testing.T) {
	assert.NoError(t, Literal(7.0))
	assert.NoError(t, Literal(-3))
	assert.NoError(t, Literal(0))

	for _, value := range []any{"abc", math.NaN(), math.Inf(1), math.Inf(-1), nil, true} {
		err := Literal(value)
		assert.ErrorIs(t, err, ErrInvalidLiteral, "%#v", value)

		var literalErr *LiteralError
		if assert.True(t, errors.As(err, &literalErr)) {
			assert.Equal(t, fmt.Sprint(value), fmt.Sprint(literalErr.Value))
		}
	}
}

func TestLiteralMessageNamesValue(t *testing.T) {
	assert.Contains(t, Literal("abc").Error(), `"abc"`)
	assert.Contains(t, Literal(math.NaN()).Error(), "NaN")
	assert.Contains(t, Literal(math.Inf(1)).Error(), "+Inf")
}

func TestOperands(t *testing.T) {
	assert.NoError(t, Operands(number(1), number(2), "+"))
	assert.NoError(t, Operands(&evaluations{}, number(2), "+"))

	var missing *evaluations
	for _, operands := range [][2]any{
		{"abc", number(2)},
		{number(1), "abc"},
		{nil, number(2)},
		{number(1), nil},
		{missing, number(2)},
		{1.0, 2.0},
	} {
		err := Operands(operands[0], operands[1], "+")
		assert.ErrorIs(t, err, ErrMissingOperand)
		assert.Contains(t, err.Error(), `"+"`)
	}
}

func TestOperandsDoNotEvaluate(t *testing.T) {
	left, right := &evaluations{}, &evaluations{}
	assert.NoError(t, Operands(left, right, "x"))
	assert.Equal(t, 0, left.calls)
	assert.Equal(t, 0, right.calls)
}

func TestDivisor(t *testing.T) {
	assert.NoError(t, Divisor(number(1), number(2), "÷"))
	assert.NoError(t, Divisor(number(1), number(-0.5), "÷"))

	err := Divisor(number(1), number(0), "÷")
	assert.ErrorIs(t, err, ErrZeroDivisor)

	var divisorErr *DivisorError
	if assert.True(t, errors.As(err, &divisorErr)) {
		assert.Equal(t, "÷", divisorErr.Operator)
		assert.Equal(t, "n", divisorErr.Divisor)
	}
	assert.Contains(t, err.Error(), "Divide")

	assert.ErrorIs(t, Divisor(number(1), number(math.Copysign(0, -1)), "÷"), ErrZeroDivisor)
}

func TestDivisorChecksOperandsFirst(t *testing.T) {
	assert.ErrorIs(t, Divisor("abc", number(0), "÷"), ErrMissingOperand)
	assert.ErrorIs(t, Divisor(number(1), nil, "÷"), ErrMissingOperand)
}

func TestDivisorEvaluatesRightEagerly(t *testing.T) {
	right := &evaluations{}
	assert.NoError(t, Divisor(number(1), right, "÷"))
	assert.Equal(t, 1, right.calls)
}
