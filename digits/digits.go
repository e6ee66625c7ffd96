// Package digits converts numerals between Odia script (୦–୯) and ASCII
// digits, and formats numbers with Indian-system comma grouping.
//
// ToOdia and ToASCII are pure character-map substitutions: digit runes are
// replaced, everything else passes through unchanged. ParseNumber and
// FormatIndian additionally validate their input as a numeral.
//
// All functions are safe for concurrent use by multiple goroutines.
package digits

import (
	"fmt"
	"strings"

	"github.com/srinibashsamal/odianumerals/internal/numstr"
)

// ToOdia replaces ASCII digits in s with Odia digit runes.
// Non-digit runes pass through unchanged: "Rs 123.45" → "Rs ୧୨୩.୪୫".
func ToOdia(s string) string {
	return numstr.ToOdiaDigits(s)
}

// ToASCII replaces Odia digit runes in s with ASCII digits.
// Non-digit runes pass through unchanged.
func ToASCII(s string) string {
	return numstr.ToASCIIDigits(s)
}

// ParseNumber converts a numeral string in either digit script to its
// normalized ASCII form ("୧,୨୩,୪୫୬.୭୮" → "123456.78"). It fails when the
// input is not a plain numeral.
func ParseNumber(s string) (string, error) {
	n, err := numstr.Parse(s)
	if err != nil {
		return "", fmt.Errorf("digits: %v", err)
	}
	return n.String(), nil
}

// FormatIndian renders a numeral with Indian comma grouping: the last three
// integer digits form one group, the rest split in pairs ("1000000" →
// "10,00,000"). With odiaDigits set, the digits of the result are Odia.
func FormatIndian(s string, odiaDigits bool) (string, error) {
	n, err := numstr.Parse(s)
	if err != nil {
		return "", fmt.Errorf("digits: %v", err)
	}

	var b strings.Builder
	if n.Neg && !n.IsZero() {
		b.WriteByte('-')
	}
	b.WriteString(groupIndian(n.Int))
	if n.Frac != "" {
		b.WriteByte('.')
		b.WriteString(n.Frac)
	}

	if odiaDigits {
		return numstr.ToOdiaDigits(b.String()), nil
	}
	return b.String(), nil
}

// groupIndian inserts commas into a bare digit string, 2-2-…-3 from the left.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/2)

	// Leading group of one or two digits, then pairs.
	lead := len(head) % 2
	if lead == 0 {
		lead = 2
	}
	b.WriteString(head[:lead])
	for i := lead; i < len(head); i += 2 {
		b.WriteByte(',')
		b.WriteString(head[i : i+2])
	}

	b.WriteByte(',')
	b.WriteString(digits[len(digits)-3:])
	return b.String()
}
