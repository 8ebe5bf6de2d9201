package calc

import (
	"math"
	"strconv"
	"strings"
)

// Plain decimal notation is used for magnitudes in [minPlain, maxPlain);
// anything outside switches to exponent form.
const (
	minPlain = 1e-6
	maxPlain = 1e21
)

// FormatNumber renders v with the fewest digits that parse back to v.
// Non-finite values render as "Infinity", "-Infinity" and "NaN"; negative
// zero renders as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	if abs := math.Abs(v); abs >= minPlain && abs < maxPlain {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))
}

// trimExponent turns "1.5e-07" into "1.5e-7".
func trimExponent(s string) string {
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
