package expr

import (
	"github.com/druvisc/solid-abstract-syntax-tree/internal/numeric"
	"github.com/druvisc/solid-abstract-syntax-tree/internal/render"
	"github.com/druvisc/solid-abstract-syntax-tree/internal/validate"
)

type literal struct {
	value float64
}

// Literal builds a leaf holding value. NaN and infinities fail with
// ErrInvalidLiteral.
func Literal(value float64) (Node, error) {
	return LiteralOf(value)
}

// LiteralOf is Literal for untyped input: any Go integer or float kind is
// accepted, everything else fails with ErrInvalidLiteral. Values are stored as
// float64, so integers beyond 2^53 are rounded to the nearest float64.
func LiteralOf(value any) (Node, error) {
	if err := validate.Literal(value); err != nil {
		return nil, err
	}
	f, _ := numeric.Float(value)
	return literal{f}, nil
}

func (l literal) Evaluate() float64 {
	return l.value
}

func (l literal) Render() string {
	return render.Literal(l.value)
}
