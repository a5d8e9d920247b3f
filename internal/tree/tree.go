// Package tree holds the expression tree the application builds and checks.
package tree

import (
	"errors"
	"fmt"

	"github.com/druvisc/solid-abstract-syntax-tree/expr"
	"github.com/druvisc/solid-abstract-syntax-tree/internal/render"
)

const (
	WantRendered = "((7 + ((3 - 2) x 5)) ÷ 6)"
	WantValue    = 2.0
)

var ErrMismatch = errors.New("tree mismatch")

// Build assembles (7 + (3 - 2) x 5) ÷ 6. Construction errors are returned,
// never a partial tree.
func Build() (node expr.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				node, err = nil, e
			} else {
				panic(r)
			}
		}
	}()

	lit := func(value float64) expr.Node {
		return expr.Must(expr.Literal(value))
	}

	node = expr.Must(expr.Divide(
		expr.Must(expr.Add(
			lit(7),
			expr.Must(expr.Multiply(
				expr.Must(expr.Subtract(lit(3), lit(2))),
				lit(5),
			)),
		)),
		lit(6),
	))
	return node, nil
}

// Report is the outcome of checking a tree.
type Report struct {
	Rendered     string  `json:"rendered"`
	Value        float64 `json:"value"`
	WantRendered string  `json:"want_rendered"`
	WantValue    float64 `json:"want_value"`
	OK           bool    `json:"ok"`
}

// Check evaluates and renders node and compares both against the wanted
// results. A mismatch is returned as an error wrapping ErrMismatch alongside
// the filled report.
func Check(node expr.Node, wantValue float64, wantRendered string) (Report, error) {
	report := Report{
		Rendered:     node.Render(),
		Value:        node.Evaluate(),
		WantRendered: wantRendered,
		WantValue:    wantValue,
	}
	report.OK = report.Rendered == wantRendered && report.Value == wantValue

	if report.Rendered != wantRendered {
		return report, fmt.Errorf("%w: rendered %q, want %q", ErrMismatch, report.Rendered, wantRendered)
	}
	if report.Value != wantValue {
		return report, fmt.Errorf(
			"%w: evaluated %s, want %s",
			ErrMismatch,
			render.Literal(report.Value),
			render.Literal(wantValue),
		)
	}
	return report, nil
}
