// Package textscan finds and rewrites numerals embedded in prose. It
// recognizes both Odia-script and ASCII digit runs, including grouped
// ("୧,୫୦,୦୦୦") and decimal forms, and can swap a whole block of text from
// one digit script to the other while leaving everything else untouched.
//
// Input is NFC-normalized before scanning, so decomposed code-point
// sequences match the same as their precomposed forms.
//
// All functions are safe for concurrent use by multiple goroutines.
package textscan

import (
	"golang.org/x/text/unicode/norm"

	"github.com/srinibashsamal/odianumerals/internal/numstr"
)

// Extract returns every Odia-script numeral found in text, in order of
// appearance: "ମୂଲ୍ୟ ୧,୫୦୦ ଟଙ୍କା" yields ["୧,୫୦୦"].
func Extract(text string) []string {
	return odiaNumeralPattern.FindAllString(norm.NFC.String(text), -1)
}

// ExtractASCII returns every ASCII numeral found in text, in order of
// appearance.
func ExtractASCII(text string) []string {
	return asciiNumeralPattern.FindAllString(norm.NFC.String(text), -1)
}

// ExtractValues returns the Odia numerals in text normalized to plain
// ASCII numeral strings: "୧,୫୦୦" yields "1500". Matches that do not parse
// as numbers (such as a bare comma run) are skipped.
func ExtractValues(text string) []string {
	matches := Extract(text)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		n, err := numstr.Parse(m)
		if err != nil {
			continue
		}
		values = append(values, n.String())
	}
	return values
}

// ToASCII rewrites every Odia-script numeral in text into ASCII digits,
// keeping commas and decimal points in place.
func ToASCII(text string) string {
	return odiaNumeralPattern.ReplaceAllStringFunc(norm.NFC.String(text), numstr.ToASCIIDigits)
}

// ToOdia rewrites every ASCII numeral in text into Odia digits, keeping
// commas and decimal points in place.
func ToOdia(text string) string {
	return asciiNumeralPattern.ReplaceAllStringFunc(norm.NFC.String(text), numstr.ToOdiaDigits)
}
