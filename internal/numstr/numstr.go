// Package numstr validates and normalizes numeric strings shared by the
// public conversion packages. It accepts ASCII and Odia digits, an optional
// leading sign, comma group separators and a single decimal point.
package numstr

import (
	"fmt"
	"strconv"
	"strings"
)

// odiaToASCII maps Odia digit runes to ASCII digits.
var odiaToASCII = map[rune]rune{
	'୦': '0', '୧': '1', '୨': '2', '୩': '3', '୪': '4',
	'୫': '5', '୬': '6', '୭': '7', '୮': '8', '୯': '9',
}

// asciiToOdia maps ASCII digit runes to Odia digits.
var asciiToOdia = map[rune]rune{
	'0': '୦', '1': '୧', '2': '୨', '3': '୩', '4': '୪',
	'5': '୫', '6': '୬', '7': '୭', '8': '୮', '9': '୯',
}

// ToASCIIDigits replaces Odia digit runes with ASCII digits.
// Other runes pass through unchanged.
func ToASCIIDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if a, ok := odiaToASCII[r]; ok {
			return a
		}
		return r
	}, s)
}

// ToOdiaDigits replaces ASCII digit runes with Odia digits.
// Other runes pass through unchanged.
func ToOdiaDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if o, ok := asciiToOdia[r]; ok {
			return o
		}
		return r
	}, s)
}

// Number is a validated numeral split into sign, integer and fraction.
// All digits are ASCII; the fraction carries no trailing zeros.
type Number struct {
	Neg  bool
	Int  string // never empty; no leading zeros beyond a single "0"
	Frac string // empty when the value is integral
}

// String reassembles the normalized ASCII form.
func (n Number) String() string {
	var b strings.Builder
	if n.Neg {
		b.WriteByte('-')
	}
	b.WriteString(n.Int)
	if n.Frac != "" {
		b.WriteByte('.')
		b.WriteString(n.Frac)
	}
	return b.String()
}

// IsZero reports whether the number is exactly zero in either sign.
func (n Number) IsZero() bool {
	return n.Frac == "" && n.Int == "0"
}

// IntPart returns the integer part as an unsigned int64.
func (n Number) IntPart() (int64, error) {
	v, err := strconv.ParseInt(n.Int, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("numstr: integer part %q out of range", n.Int)
	}
	return v, nil
}

// Parse validates s and returns its normalized form.
func Parse(s string) (Number, error) {
	s = strings.TrimSpace(ToASCIIDigits(s))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return Number{}, fmt.Errorf("numstr: empty input")
	}

	var n Number
	switch s[0] {
	case '-':
		n.Neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if !allDigits(intPart) || !allDigits(fracPart) {
		return Number{}, fmt.Errorf("numstr: invalid numeric value %q", s)
	}
	if intPart == "" && fracPart == "" {
		return Number{}, fmt.Errorf("numstr: invalid numeric value %q", s)
	}
	if hasDot && fracPart == "" && intPart == "" {
		return Number{}, fmt.Errorf("numstr: invalid numeric value %q", s)
	}

	n.Int = strings.TrimLeft(intPart, "0")
	if n.Int == "" {
		n.Int = "0"
	}
	n.Frac = strings.TrimRight(fracPart, "0")
	return n, nil
}

// allDigits reports whether s consists entirely of ASCII digits.
// The empty string counts as all digits (absent part).
func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
