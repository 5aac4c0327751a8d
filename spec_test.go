package uncertain

import (
	"errors"
	"testing"
)

func TestParseSpec(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			spec string
			want Spec
		}{
			{"", Spec{ForceSign: true}},
			{"+", Spec{ForceSign: true}},
			{"e", Spec{ENotation: true}},
			{"+e", Spec{ForceSign: true, ENotation: true}},
			{"e+", Spec{ForceSign: true, ENotation: true}},
			{".3", Spec{Precision: 3}},
			{".12", Spec{Precision: 12}},
			{"u1", Spec{UncDigits: 1}},
			{"u10", Spec{UncDigits: 10}},
			{"eu3", Spec{ENotation: true, UncDigits: 3}},
			{"+eu3", Spec{ForceSign: true, ENotation: true, UncDigits: 3}},
			{"u3e+", Spec{ForceSign: true, ENotation: true, UncDigits: 3}},
			{"+.7", Spec{ForceSign: true, Precision: 7}},

			// A digit count of 0 is the same as omitting the token.
			{".0", Spec{}},
			{"u0", Spec{}},
			{".0u2", Spec{UncDigits: 2}},
		}
		for _, tt := range tests {
			got, err := ParseSpec(tt.spec)
			if err != nil {
				t.Errorf("ParseSpec(%q) failed: %v", tt.spec, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseSpec(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			spec string
			want error
		}{
			"conflict 1":      {".2u3", errSpecConflict},
			"conflict 2":      {"u3.2", errSpecConflict},
			"conflict 3":      {"+e.1u1", errSpecConflict},
			"unknown token 1": {"x", errInvalidSpec},
			"unknown token 2": {"+x", errInvalidSpec},
			"unknown token 3": {"5.110(0)", errInvalidSpec},
			"no digits 1":     {".", errInvalidSpec},
			"no digits 2":     {"u", errInvalidSpec},
			"no digits 3":     {"ue", errInvalidSpec},
			"digits range 1":  {".331", errDigitsRange},
			"digits range 2":  {"u999", errDigitsRange},
		}
		for name, tt := range tests {
			_, err := ParseSpec(tt.spec)
			if err == nil {
				t.Errorf("%v: ParseSpec(%q) did not fail", name, tt.spec)
				continue
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: ParseSpec(%q) error = %v, want %v", name, tt.spec, err, tt.want)
			}
		}
	})
}
