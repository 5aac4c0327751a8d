package uncertain

import (
	"fmt"
	"math"
	"strconv"
	"testing"
)

func TestPow10(t *testing.T) {
	// Every table entry must be the correctly rounded float64, which is
	// what strconv produces for a decimal literal.
	for n := minExp10; n <= maxExp10; n++ {
		want, err := strconv.ParseFloat(fmt.Sprintf("1e%d", n), 64)
		if err != nil {
			t.Fatalf("ParseFloat(1e%d) failed: %v", n, err)
		}
		if got := pow10(n); got != want {
			t.Errorf("pow10(%v) = %v, want %v", n, got, want)
		}
	}

	if got := pow10(minExp10 - 1); got != 0 {
		t.Errorf("pow10(%v) = %v, want 0", minExp10-1, got)
	}
	if got := pow10(maxExp10 + 1); !math.IsInf(got, 1) {
		t.Errorf("pow10(%v) = %v, want +Inf", maxExp10+1, got)
	}
}

func TestExp10(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{1, 0},
		{9.999999, 0},
		{10, 1},
		{99.9, 1},
		{100, 2},
		{0.1, -1},
		{0.09, -2},
		{123.456, 2},
		{0.51099895, -1},
		{1e22, 22},
		{1e-300, -300},
		{1.5e-10, -10},
		{math.MaxFloat64, 308},
	}
	for _, tt := range tests {
		if got := exp10(tt.x); got != tt.want {
			t.Errorf("exp10(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
