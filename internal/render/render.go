package render

import (
	"math"
	"strconv"
	"strings"
)

// Renderer is anything that renders itself as text.
type Renderer interface {
	Render() string
}

// Literal formats a number the way it is written back to the user: the
// shortest decimal that round-trips, switching to exponent form for very
// large or very small magnitudes.
func Literal(value float64) string {
	if value == 0 {
		return "0"
	}

	abs := math.Abs(value)
	if abs >= 1e21 || abs < 1e-6 {
		return exponent(strconv.FormatFloat(value, 'e', -1, 64))
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// exponent drops the zero padding strconv puts in front of the exponent
// digits ("1e-07" -> "1e-7").
func exponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 > len(s) {
		return s
	}
	mantissa, sign, digits := s[:i], s[i+1:i+2], strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// Binary renders "(left operator right)".
func Binary(left, right Renderer, symbol string) string {
	var builder strings.Builder

	builder.WriteString("(")
	builder.WriteString(left.Render())
	builder.WriteString(" ")
	builder.WriteString(symbol)
	builder.WriteString(" ")
	builder.WriteString(right.Render())
	builder.WriteString(")")

	return builder.String()
}
