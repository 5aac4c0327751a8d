package uncertain_test

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/govalues/uncertain"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	values := []uncertain.Value{
		uncertain.New(0, 0),
		uncertain.New(0.51099895000, 0.00000000015),
		uncertain.New(-0.51099895000, 0.00000000015),
		uncertain.New(938.27208816, 0.00000029),
		uncertain.New(1875.61294257, 0.00000057),
		uncertain.New(137.035999084, 0.000000021),
		uncertain.New(3.8615926796e-13, 12e-23),
		uncertain.New(13.605693122994, 2.6e-11),
		uncertain.New(80.379, 0.012),
		uncertain.New(0.1179, 0.0010),
		uncertain.New(3.14159, 0),
		uncertain.New(-2.5, 0),
		uncertain.New(123456, 0),
		uncertain.New(1, 10),
		uncertain.New(10, 20),
		uncertain.New(0, 3),
	}
	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			w, err := uncertain.Parse(v.String())
			require.NoError(t, err)

			// The canonical form keeps two digits of uncertainty, so the
			// round trip recovers the value to the displayed precision,
			// not bit for bit.
			tol := v.Uncertainty()
			if tol == 0 {
				tol = 1e-14 * math.Abs(v.Mean())
			}
			require.InDelta(t, v.Mean(), w.Mean(), tol+1e-323)
			if v.IsExact() {
				require.True(t, w.IsExact())
			} else {
				require.InDelta(t, v.Uncertainty(), w.Uncertainty(), v.Uncertainty()/8)
			}
		})
	}
}

func TestExactValuesHaveNoIndicator(t *testing.T) {
	specs := []string{"", "+", "e", "u1", "u3", ".3", "+eu1"}
	for _, spec := range specs {
		for _, mean := range []float64{3.14159, -2.5, 0, 100, 1e17, 6.674e-11} {
			v := uncertain.New(mean, 0)
			s, err := v.Text(spec)
			require.NoError(t, err, "spec %q, mean %v", spec, mean)
			require.NotContains(t, s, "(", "spec %q, mean %v", spec, mean)
			require.NotContains(t, s, "±", "spec %q, mean %v", spec, mean)
		}
	}
}

func TestConflictingSpecAlwaysFails(t *testing.T) {
	specs := []string{".2u3", "u1.5", "+.3u2", "e.1u1"}
	values := []uncertain.Value{
		uncertain.New(0.51099895000, 0.00000000015),
		uncertain.New(3.14159, 0),
		uncertain.New(1, 10),
	}
	for _, spec := range specs {
		for _, v := range values {
			s, err := v.Text(spec)
			require.Error(t, err, "spec %q, value %v", spec, v)
			require.Empty(t, s, "spec %q, value %v", spec, v)
		}
	}
}

func TestExponentFactoring(t *testing.T) {
	// For |mean| >= 10, the suffix must match the decimal exponent of the
	// mean and the pre-suffix mantissa must lie in [1, 10).
	means := []float64{12.34, -987.6, 137.035999084, 1875.61294257, 123456.7}
	for _, mean := range means {
		v := uncertain.New(mean, 1e-6*math.Abs(mean))
		s, err := v.Text("+")
		require.NoError(t, err)

		exp := int(math.Floor(math.Log10(math.Abs(mean))))
		require.True(t, strings.HasSuffix(s, fmt.Sprintf(" × 10^+%d", exp)), "Text(%v) = %q", mean, s)

		i := strings.Index(s, "(")
		require.Greater(t, i, 0, "Text(%v) = %q", mean, s)
		mant, err := strconv.ParseFloat(s[:i], 64)
		require.NoError(t, err, "Text(%v) = %q", mean, s)
		require.GreaterOrEqual(t, math.Abs(mant), 1.0, "Text(%v) = %q", mean, s)
		require.Less(t, math.Abs(mant), 10.0, "Text(%v) = %q", mean, s)
	}
}

func TestDominantBoundary(t *testing.T) {
	tests := []struct {
		mean, unc float64
		dominant  bool
	}{
		{5, 4.999, false},
		{5, 5, true},
		{5, 6, true},
		{-5, 5, true},
		{-5, 4.999, false},
		{1, 10, true},
		{0, 0.001, true},
	}
	for _, tt := range tests {
		s := uncertain.New(tt.mean, tt.unc).String()
		got := strings.HasPrefix(s, "(") && strings.Contains(s, "±")
		require.Equal(t, tt.dominant, got, "New(%v, %v).String() = %q", tt.mean, tt.unc, s)
	}
}
