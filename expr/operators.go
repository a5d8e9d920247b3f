package expr

// Operator symbols used when rendering. Multiplication is a lowercase "x" and
// division is the Unicode division sign.
const (
	AddSymbol      = "+"
	SubtractSymbol = "-"
	MultiplySymbol = "x"
	DivideSymbol   = "÷"
)

// Add builds left + right.
func Add(left, right Node) (Node, error) {
	return Binary(AddSymbol, left, right, func(l, r float64) float64 {
		return l + r
	}, nil)
}

// Subtract builds left - right.
func Subtract(left, right Node) (Node, error) {
	return Binary(SubtractSymbol, left, right, func(l, r float64) float64 {
		return l - r
	}, nil)
}

// Multiply builds left x right. It renders with a lowercase "x" rather than "*".
func Multiply(left, right Node) (Node, error) {
	return Binary(MultiplySymbol, left, right, func(l, r float64) float64 {
		return l * r
	}, nil)
}

// Divide evaluates right once while building the node and fails with
// ErrZeroDivisor if it is zero.
func Divide(left, right Node) (Node, error) {
	return Binary(DivideSymbol, left, right, func(l, r float64) float64 {
		return l / r
	}, CheckDivisor)
}
