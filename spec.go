package uncertain

import (
	"errors"
	"fmt"
)

// maxDigits limits the digit counts accepted in a format spec.
// It is just beyond the decimal resolution of a float64, so nothing
// representable is excluded.
const maxDigits = 330

var (
	errInvalidSpec  = errors.New("invalid format spec")
	errSpecConflict = errors.New("conflicting precision options")
	errDigitsRange  = errors.New("digit count out of range")
)

// Spec is a set of independently toggleable formatting options.
// The zero Spec renders with no forced sign, the " × 10^" exponent style,
// and two digits of uncertainty.
// Also see [Value.Text] for what each option does.
type Spec struct {
	ForceSign bool // print a leading sign even when the mean is positive
	ENotation bool // render the power of ten as "e<exp>" instead of " × 10^<exp>"
	Precision int  // digits after the decimal point of the mean; 0 means unset
	UncDigits int  // digits of the uncertainty to show; 0 means unset
}

// ParseSpec converts a format spec string to a [Spec].
// The input must consist of the optional tokens '+', 'e', '.<digits>', and
// 'u<digits>', in any order.
//
// The formal EBNF grammar for the supported format is as follows:
//
//	digits ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	token  ::= '+' | 'e' | '.' digits | 'u' digits
//	spec   ::= { token }
//
// The empty spec forces sign display; any other spec shows a sign only when
// the '+' token is present.
// A digit count of 0 is the same as omitting the token.
//
// ParseSpec returns an error:
//   - if the spec contains a character outside the grammar;
//   - if '.' or 'u' is not followed by at least one digit;
//   - if a digit count is greater than 330;
//   - if both a '.' precision and a 'u' digit count are specified, which
//     are mutually exclusive.
func ParseSpec(spec string) (Spec, error) {
	var s Spec
	if spec == "" {
		s.ForceSign = true
		return s, nil
	}
	for pos := 0; pos < len(spec); {
		switch spec[pos] {
		case '+':
			s.ForceSign = true
			pos++
		case 'e':
			s.ENotation = true
			pos++
		case '.':
			n, width, err := scanDigits(spec, pos+1)
			if err != nil {
				return Spec{}, fmt.Errorf("precision in spec %q: %w", spec, err)
			}
			s.Precision = n
			pos += 1 + width
		case 'u':
			n, width, err := scanDigits(spec, pos+1)
			if err != nil {
				return Spec{}, fmt.Errorf("uncertainty digits in spec %q: %w", spec, err)
			}
			s.UncDigits = n
			pos += 1 + width
		default:
			return Spec{}, fmt.Errorf("unknown token %q in spec %q: %w", rune(spec[pos]), spec, errInvalidSpec)
		}
	}
	if s.Precision != 0 && s.UncDigits != 0 {
		return Spec{}, fmt.Errorf("cannot specify both precision .%v and uncertainty digits u%v: %w", s.Precision, s.UncDigits, errSpecConflict)
	}
	return s, nil
}

// scanDigits reads a run of decimal digits starting at pos.
func scanDigits(spec string, pos int) (n, width int, err error) {
	for pos+width < len(spec) && spec[pos+width] >= '0' && spec[pos+width] <= '9' {
		n = n*10 + int(spec[pos+width]-'0')
		if n > maxDigits {
			return 0, 0, errDigitsRange
		}
		width++
	}
	if width == 0 {
		return 0, 0, fmt.Errorf("no digits: %w", errInvalidSpec)
	}
	return n, width, nil
}
