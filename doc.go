/*
Package uncertain renders measured quantities in the parenthetical-digits
notation used in physics and metrology, and parses that notation back.

A common convention for symmetric measurement errors, explained on
[Wikipedia] and by [NIST], is to write the uncertainty as digits in
parentheses that indicate an uncertainty on the corresponding least
significant digits of the mean. Since the mass of the electron is measured
to be

	(0.51099895000 ± 0.00000000015) MeV/c^2

it can instead be written 0.51099895000(15) MeV/c^2.

# Representation

[Value] is a struct with two fields:

  - Mean: the measured or computed central value.
  - Uncertainty: the symmetric spread around the mean, stored as an
    absolute value. It is never negative; 0 means the value is exact.

Values are immutable after construction and safe for concurrent use.
All operations are pure: formatting and parsing never mutate their
receiver and hold no shared state.

# Formatting

[Value.String] returns the canonical representation, in scientific notation
with a forced sign and two digits of uncertainty:

	electronMass := uncertain.New(0.51099895000, 0.00000000015) // MeV/c^2
	fmt.Println(electronMass)
	// +5.1099895000(15) × 10^-1

[Value.Text] accepts a small format spec whose tokens select a forced sign
('+'), [E notation] ('e'), a fixed number of digits after the decimal point
('.N'), or a fixed number of uncertainty digits ('uN'). The '.N' and 'uN'
tokens are mutually exclusive. See [ParseSpec] for the grammar and
[Value.Text] for the rendering rules, including the zero-uncertainty and
uncertainty-dominant cases.

[Value] also implements [fmt.Stringer] and [fmt.Formatter], so it can be
printed with the fmt verbs %v, %s, %q, and %e.

# Parsing

[Parse] accepts scientific notation, power-of-ten notation, explicit ±
notation, parenthetical digits, and plain numbers:

	9.1093837015(28)E-31
	1.67262192369(51) × 10^-27
	(939.56542052 ± 0.00000054)
	1875.61294257(57)
	3.14159

[Value] implements [encoding.TextMarshaler] and [encoding.TextUnmarshaler],
so it can be embedded in types handled by encoding/json and similar
packages. The canonical text keeps two digits of uncertainty, so marshaling
round-trips to the displayed precision.

# Errors

Formatting returns an error only for an invalid format spec, including the
mutually exclusive '.N' and 'uN' tokens; parsing returns an error for input
that matches none of the recognized notations. Both are surfaced
immediately, with no partial results.

This package performs no arithmetic on uncertain values: propagating
uncertainty through computations is out of scope, as are asymmetric
(upper/lower) uncertainties.

[Wikipedia]: https://en.wikipedia.org/wiki/Uncertainty#In_measurements
[NIST]: https://physics.nist.gov/cgi-bin/cuu/Info/Constants/definitions.html
[E notation]: https://en.wikipedia.org/wiki/Scientific_notation#E_notation
*/
package uncertain
