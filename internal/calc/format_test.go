package calc

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{-2, "-2"},
		{3.5, "3.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{math.Copysign(0, -1), "0"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e22, "1.5e+22"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-2.5e-9, "-2.5e-9"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOperator_Known(t *testing.T) {
	for _, op := range []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide} {
		if !op.Known() {
			t.Errorf("%q should be known", op)
		}
	}
	for _, op := range []Operator{OpNone, "%", "+/-", "x"} {
		if op.Known() {
			t.Errorf("%q should not be known", op)
		}
	}
}

func TestOperator_String(t *testing.T) {
	if got := OpNone.String(); got != "none" {
		t.Errorf("OpNone.String() = %q", got)
	}
	if got := OpDivide.String(); got != "/" {
		t.Errorf("OpDivide.String() = %q", got)
	}
}
