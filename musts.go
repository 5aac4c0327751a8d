package uncertain

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding uncertain
// values.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return v
}

// MustText is like [Value.Text] but panics if formatting fails.
func (v Value) MustText(spec string) string {
	s, err := v.Text(spec)
	if err != nil {
		panic(fmt.Sprintf("MustText(%q) failed: %v", spec, err))
	}
	return s
}
