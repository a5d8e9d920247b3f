package numeric

import "math"

// Float converts any Go numeric kind to a float64. Non-numeric values report
// false. Integers with a magnitude above 2^53 are rounded to the nearest
// float64.
func Float(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// IsFinite reports whether value is a number that is neither NaN nor infinite.
func IsFinite(value any) bool {
	f, ok := Float(value)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}
