package uncertain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errInvalidValue = errors.New("invalid uncertain value")

// Parse converts a string to a value.
// The input string must be in one of the following notations:
//
//	9.1093837015(28)E-31           scientific notation
//	1.67262192369(51) × 10^-27     power-of-ten notation
//	(939.56542052 ± 0.00000054)    explicit ± notation
//	1875.61294257(57)              parenthetical digits
//	3.14159                        plain number, parsed as exact
//
// The notations are tried in that order. A trailing integer exponent after
// the last 'e' or 'E', or a "× 10^<exp>" suffix, scales both the mean and
// the uncertainty of the preceding part by the same power of ten.
// In the parenthetical-digits notation the digits in parentheses represent
// the uncertainty in units of the least significant digits of the mean, so
// "1.234(5)" means 1.234 ± 0.005; the digits must form an unsigned integer.
// Whitespace around '±' and around the power of ten is tolerated.
// A string without any uncertainty markers is parsed as a plain number with
// an uncertainty of 0, so the output of [Value.String] is always parseable.
//
// Parse returns an error if the input matches none of the notations or
// contains a malformed number.
func Parse(s string) (Value, error) {
	v, err := parse(s)
	if err != nil {
		return Value{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return v, nil
}

// parse tries the dialect matchers in precedence order.
// Each matcher either claims the input, possibly with an error, or declines,
// falling through to the next.
func parse(s string) (Value, error) {
	if v, ok, err := parseSci(s); ok {
		return v, err
	}
	if v, ok, err := parsePower(s); ok {
		return v, err
	}
	if v, ok, err := parsePlusMinus(s); ok {
		return v, err
	}
	if v, ok, err := parseDigits(s); ok {
		return v, err
	}
	return parseExact(s)
}

// scale returns v with both the mean and the uncertainty multiplied
// by 10^exp.
func (v Value) scale(exp int) Value {
	p := pow10(exp)
	return Value{mean: v.mean * p, unc: v.unc * p}
}

// parseSci matches scientific notation with an integer exponent after the
// last 'e' or 'E', e.g. "9.1093837015(28)E-31".
// It declines unless the suffix is a valid integer, so that strings such as
// "(1.2 ± 3.4e-5)" can be claimed by a later dialect.
func parseSci(s string) (Value, bool, error) {
	i := strings.LastIndexAny(s, "eE")
	if i < 0 {
		return Value{}, false, nil
	}
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return Value{}, false, nil
	}
	v, err := parse(s[:i])
	if err != nil {
		return Value{}, true, err
	}
	return v.scale(exp), true, nil
}

// parsePower matches the "mantissa × 10^exp" notation,
// e.g. "7.2973525693(11)×10^-3".
func parsePower(s string) (Value, bool, error) {
	i := strings.Index(s, "×")
	if i < 0 {
		return Value{}, false, nil
	}
	rest := s[i+len("×"):]
	j := strings.Index(rest, "^")
	if j < 0 {
		return Value{}, true, fmt.Errorf("no exponent after ×: %w", errInvalidValue)
	}
	if base := strings.TrimSpace(rest[:j]); base != "10" {
		return Value{}, true, fmt.Errorf("power base %q, expected 10: %w", base, errInvalidValue)
	}
	etxt := strings.TrimSpace(rest[j+1:])
	exp, err := strconv.Atoi(etxt)
	if err != nil {
		return Value{}, true, fmt.Errorf("exponent %q: %w", etxt, errInvalidValue)
	}
	v, err := parse(strings.TrimSpace(s[:i]))
	if err != nil {
		return Value{}, true, err
	}
	return v.scale(exp), true, nil
}

// parsePlusMinus matches the explicit ± notation,
// e.g. "(1836.15267343 ± 0.00000011)".
func parsePlusMinus(s string) (Value, bool, error) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' || !strings.Contains(s, "±") {
		return Value{}, false, nil
	}
	inner := s[1 : len(s)-1]
	i := strings.Index(inner, "±")
	mtxt := strings.TrimSpace(inner[:i])
	mean, err := strconv.ParseFloat(mtxt, 64)
	if err != nil {
		return Value{}, true, fmt.Errorf("mean %q: %w", mtxt, errInvalidValue)
	}
	utxt := strings.TrimSpace(inner[i+len("±"):])
	unc, err := strconv.ParseFloat(utxt, 64)
	if err != nil {
		return Value{}, true, fmt.Errorf("uncertainty %q: %w", utxt, errInvalidValue)
	}
	return New(mean, unc), true, nil
}

// parseDigits matches the parenthetical-digits notation, e.g. "1.234(5)".
// The number of digits after the decimal point of the mean determines the
// units of the parenthesized uncertainty digits.
func parseDigits(s string) (Value, bool, error) {
	i := strings.IndexByte(s, '(')
	if i < 0 {
		return Value{}, false, nil
	}
	rest := s[i+1:]
	j := strings.IndexByte(rest, ')')
	if j < 0 {
		return Value{}, true, fmt.Errorf("unclosed parenthesis: %w", errInvalidValue)
	}
	if trailing := rest[j+1:]; trailing != "" {
		return Value{}, true, fmt.Errorf("unexpected %q after uncertainty digits: %w", trailing, errInvalidValue)
	}
	mtxt := s[:i]
	mean, err := strconv.ParseFloat(mtxt, 64)
	if err != nil {
		return Value{}, true, fmt.Errorf("mean %q: %w", mtxt, errInvalidValue)
	}
	digits, err := strconv.ParseUint(rest[:j], 10, 64)
	if err != nil {
		return Value{}, true, fmt.Errorf("uncertainty digits %q: %w", rest[:j], errInvalidValue)
	}
	prec := 0
	if k := strings.IndexByte(mtxt, '.'); k >= 0 {
		prec = len(mtxt) - k - 1
	}
	return New(mean, float64(digits)*pow10(-prec)), true, nil
}

// parseExact is the final fallthrough: a plain number with an uncertainty
// of 0.
func parseExact(s string) (Value, error) {
	mean, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("number %q: %w", s, errInvalidValue)
	}
	return New(mean, 0), nil
}
