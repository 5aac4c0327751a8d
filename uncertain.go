package uncertain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Value type is a representation of a measured quantity: a mean together
// with a symmetric uncertainty.
// The zero value is an exact 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A value is a struct with two parameters:
//
//   - Mean: the measured or computed central value.
//   - Uncertainty: the symmetric one-sigma spread around the mean,
//     stored as an absolute value.
//
// The uncertainty is never negative.
// A value with an uncertainty of 0 represents an exact number.
type Value struct {
	mean float64
	unc  float64 // never negative
}

var errIndicatorRange = errors.New("uncertainty indicator out of range")

// New returns a value with the given mean and uncertainty.
// The sign of the uncertainty is discarded.
// There are no error conditions.
func New(mean, uncertainty float64) Value {
	return Value{mean: mean, unc: math.Abs(uncertainty)}
}

// Mean returns the mean of v.
func (v Value) Mean() float64 {
	return v.mean
}

// Uncertainty returns the uncertainty of v.
// The result is never negative.
func (v Value) Uncertainty() float64 {
	return v.unc
}

// IsExact reports whether the uncertainty of v is zero.
func (v Value) IsExact() bool {
	return v.unc == 0
}

// String method implements the [fmt.Stringer] interface and returns the
// canonical representation of a value: a forced sign, the " × 10^" exponent
// style, and two digits of uncertainty, e.g. "+5.1099895000(15) × 10^-1".
// It is equivalent to Text("+u2").
//
// In the rare case that the uncertainty cannot be expressed as parenthetical
// digits at all (for example, an uncertainty so close to zero that its
// decimal scale underflows), String falls back to the explicit ± form.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value) String() string {
	s, err := v.text(Spec{ForceSign: true, UncDigits: 2})
	if err != nil {
		return "(" + fmtShortest(v.mean, true) + " ± " + fmtShortest(v.unc, false) + ")"
	}
	return s
}

// Text formats v according to a format spec, a string composed of the
// following optional tokens, in any order:
//
//	+    print a leading sign even when the mean is positive
//	e    render the power of ten as "e<exp>" instead of " × 10^<exp>"
//	.N   print exactly N digits after the decimal point of the mean
//	uN   print N digits of the uncertainty
//
// The empty spec forces sign display, like the canonical form.
// Also see [ParseSpec] for the full grammar and defaults.
//
// The mean is normalized to scientific notation, with the power of ten
// factored out of the mean and the uncertainty consistently.
// An exponent of exactly 0 renders without any exponent suffix.
// From there, rendering depends on the value:
//
//   - If the uncertainty is 0, the result is just the mantissa and the
//     exponent suffix, with no uncertainty indicator:
//     "+3.14159".
//   - If the uncertainty is greater than or equal to the absolute value of
//     the mean, digit-level notation is meaningless and the result uses an
//     explicit ±:
//     "(+1 ± 10)".
//   - Otherwise the uncertainty is written as digits in parentheses that
//     indicate an uncertainty on the corresponding least significant digits
//     of the mean:
//     "+5.1099895000(15) × 10^-1".
//
// With a uN token, N digits of uncertainty are shown, counted from the most
// significant uncertain digit, and the indicator is rounded up so that the
// uncertainty is never understated.
// The default, used when neither .N nor uN is present, shows two digits.
//
// With a .N token, the mean is printed with exactly N digits after the
// decimal point and the indicator is truncated instead of rounded up, so an
// uncertainty that underflows the requested precision shows as "(0)":
// "5.110(0) × 10^-1".
//
// A mean of exactly 0 skips normalization, so Value{} renders as "+0" and
// New(0, 3) as "(+0 ± 3)".
//
// Text returns an error:
//   - if the spec is invalid (see [ParseSpec]);
//   - if the uncertainty indicator does not fit in an int64, which can only
//     happen with an oversized explicit precision or a subnormal
//     uncertainty.
func (v Value) Text(spec string) (string, error) {
	s, err := ParseSpec(spec)
	if err != nil {
		return "", err
	}
	return v.text(s)
}

// text renders v according to an already validated spec.
func (v Value) text(s Spec) (string, error) {
	mean, unc := v.mean, v.unc

	// Normalization, with the power of ten factored out of the mean and
	// the uncertainty consistently. Rescaling can leave the mean a hair
	// outside [1, 10), hence the loop.
	var tail string
	for {
		e, mant := decompose(mean)
		if unc == 0 {
			return fmtShortest(mant, s.ForceSign) + expSuffix(e, s.ENotation) + tail, nil
		}
		if e == 0 {
			break
		}
		tail = expSuffix(e, s.ENotation) + tail
		p := pow10(e)
		mean /= p
		unc /= p
	}

	// The integer part of the mean is now a single digit, unless the mean
	// is 0 or not finite.
	if unc >= math.Abs(mean) || math.IsNaN(mean) || math.IsNaN(unc) {
		if s.Precision != 0 {
			return "(" + fmtFixed(mean, s.Precision, s.ForceSign) + " ± " + fmtFixed(unc, s.Precision, false) + ")" + tail, nil
		}
		return "(" + fmtShortest(mean, s.ForceSign) + " ± " + fmtShortest(unc, false) + ")" + tail, nil
	}

	digits := -exp10(unc)
	var indicator float64
	if s.Precision != 0 {
		digits = s.Precision
		// Truncation, not rounding, so that an uncertainty below the
		// requested precision shows as (0).
		indicator = unc / pow10(-digits)
	} else {
		if s.UncDigits != 0 {
			digits += s.UncDigits - 1
		} else {
			digits++
		}
		// Rounded up, so that the uncertainty is never understated.
		indicator = math.Ceil(unc / pow10(-digits))
	}
	if !(indicator >= 0 && indicator < (1<<62)) {
		return "", fmt.Errorf("%v digit(s) after the decimal point: %w", digits, errIndicatorRange)
	}
	return fmtFixed(mean, digits, s.ForceSign) + "(" + strconv.FormatInt(int64(indicator), 10) + ")" + tail, nil
}

// decompose splits a mean into its decimal exponent and mantissa, such that
// mean = mantissa * 10^exp and 1 <= |mantissa| < 10.
// A zero, subnormal, or non-finite mean is left as is with an exponent of 0.
func decompose(mean float64) (exp int, mant float64) {
	if mean == 0 || math.IsInf(mean, 0) || math.IsNaN(mean) {
		return 0, mean
	}
	e := exp10(math.Abs(mean))
	p := pow10(e)
	if p == 0 {
		return 0, mean
	}
	return e, mean / p
}

// expSuffix returns the rendering of a power of ten, either "e<exp>" or
// " × 10^<exp>". An exponent of 0 renders as an empty string.
// The exponent always carries an explicit sign.
func expSuffix(e int, eNotation bool) string {
	if e == 0 {
		return ""
	}
	exp := strconv.Itoa(e)
	if e > 0 {
		exp = "+" + exp
	}
	if eNotation {
		return "e" + exp
	}
	return " × 10^" + exp
}

// fmtShortest formats x with the fewest digits necessary to represent it
// uniquely, optionally with a forced sign.
func fmtShortest(x float64, signed bool) string {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if signed && !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

// fmtFixed formats x with the given number of digits after the decimal
// point, optionally with a forced sign.
func fmtFixed(x float64, digits int, signed bool) string {
	if signed {
		return fmt.Sprintf("%+.*f", digits, x)
	}
	return fmt.Sprintf("%.*f", digits, x)
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%v, %s: +5.1099895000(15) × 10^-1
//	%q:     "+5.1099895000(15) × 10^-1"
//	%e:     5.1099895000(15)e-1
//
// The '-' format flag can be used with all verbs to left-justify within the
// width. The '+' flag forces the sign for the %e verb; %v, %s, and %q always
// carry a sign, as in the canonical form.
//
// Precision is only supported for the %e verb and maps to the .N token of
// [Value.Text]; without it, two digits of uncertainty are shown.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (v Value) Format(state fmt.State, verb rune) {
	var spec Spec
	switch verb {
	case 'e', 'E':
		spec.ENotation = true
		spec.ForceSign = state.Flag('+')
		if p, ok := state.Precision(); ok {
			spec.Precision = p
		}
	case 's', 'S', 'v', 'V', 'q', 'Q':
		spec.ForceSign = true
		spec.UncDigits = 2
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(uncertain.Value="))
		state.Write([]byte(v.String()))
		state.Write([]byte(")"))
		return
	}

	text, err := v.text(spec)
	if err != nil {
		text = "(" + fmtShortest(v.mean, spec.ForceSign) + " ± " + fmtShortest(v.unc, false) + ")"
	}
	if verb == 'q' || verb == 'Q' {
		text = strconv.Quote(text)
	}

	// Padding
	if w, ok := state.Width(); ok {
		if pad := w - utf8.RuneCountInString(text); pad > 0 {
			if state.Flag('-') {
				text += strings.Repeat(" ", pad)
			} else {
				text = strings.Repeat(" ", pad) + text
			}
		}
	}

	state.Write([]byte(text))
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (v *Value) UnmarshalText(text []byte) error {
	var err error
	*v, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// The canonical representation keeps two digits of uncertainty, so a
// marshal/unmarshal round trip recovers the value to the displayed
// precision, not bit for bit.
// Also see method [Value.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
