// Package ordinal renders ordinal numbers as Odia or English words
// (ପ୍ରଥମ, ଦ୍ୱିତୀୟ / first, second) and as suffixed numerals (୧ମ, ୨ୟ / 1st, 2nd).
//
// Odia ordinal words come from a fixed table for the forms the language
// treats irregularly; every other rank derives as cardinal + ତମ. The
// numeric forms are parseable back with ParseNumeral.
//
// All functions are safe for concurrent use by multiple goroutines.
package ordinal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/srinibashsamal/odianumerals/digits"
	"github.com/srinibashsamal/odianumerals/numwords"
)

// Numeral parse patterns. The Odia suffix class covers the characters of
// ମ, ୟ, ର୍ଥ, ଷ୍ଠ and ଶ.
var (
	reOdiaNumeral    = regexp.MustCompile(`^([୦-୯][୦-୯,]*)\s*[ମୟର୍ଥଷ୍ଠଶ]*$`)
	reEnglishNumeral = regexp.MustCompile(`(?i)^([0-9][0-9,]*)\s*(st|nd|rd|th)?$`)
)

// Words returns the ordinal words for rank n in the given language.
// Ranks below one are rejected.
func Words(n int64, lang numwords.Language) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("ordinal: rank %d below one: %w", n, numwords.ErrInvalidInput)
	}
	if lang == numwords.English {
		return englishWords(n)
	}
	if lang < numwords.Odia || lang > numwords.Odilish {
		return "", fmt.Errorf("ordinal: unknown language %d: %w", int(lang), numwords.ErrUnsupportedScale)
	}

	if f, ok := ordinalWords[n]; ok {
		return f[lang], nil
	}
	cardinal, err := numwords.Convert(n, numwords.Modern, lang)
	if err != nil {
		return "", err
	}
	return cardinal + ordinalSuffix[lang], nil
}

// englishWords derives English ordinal words: table lookup for irregular
// forms, decade-ones hyphenation below one hundred, cardinal-with-ordinal-tail
// above.
func englishWords(n int64) (string, error) {
	if w, ok := englishOrdinals[n]; ok {
		return w, nil
	}

	if n < 100 {
		tens, err := numwords.Convert(n/10*10, numwords.Modern, numwords.English)
		if err != nil {
			return "", err
		}
		ones, err := englishWords(n % 10)
		if err != nil {
			return "", err
		}
		return tens + "-" + ones, nil
	}

	if n%100 == 0 {
		cardinal, err := numwords.Convert(n, numwords.Modern, numwords.English)
		if err != nil {
			return "", err
		}
		if strings.HasSuffix(cardinal, "y") {
			return cardinal[:len(cardinal)-1] + "ieth", nil
		}
		return cardinal + "th", nil
	}

	base, err := numwords.Convert(n-n%100, numwords.Modern, numwords.English)
	if err != nil {
		return "", err
	}
	tail, err := englishWords(n % 100)
	if err != nil {
		return "", err
	}
	return base + " " + tail, nil
}

// Numeral returns the suffixed numeric ordinal for n: ୧ମ, ୨ୟ, ୪ର୍ଥ, ୧୧ଶ in
// the Odia variants, 1st, 2nd, 3rd, 11th in English.
func Numeral(n int64, lang numwords.Language) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("ordinal: rank %d below one: %w", n, numwords.ErrInvalidInput)
	}

	if lang == numwords.English {
		return strconv.FormatInt(n, 10) + englishNumeralSuffix(n), nil
	}
	if lang < numwords.Odia || lang > numwords.Odilish {
		return "", fmt.Errorf("ordinal: unknown language %d: %w", int(lang), numwords.ErrUnsupportedScale)
	}

	var suffix string
	switch {
	case n >= 11 && n <= 18:
		suffix = numeralTeensSuffix
	default:
		s, ok := numeralSuffixes[n]
		if !ok {
			if s, ok = numeralSuffixes[n%10]; !ok {
				s = numeralDefaultSuffix
			}
		}
		suffix = s
	}

	return digits.ToOdia(strconv.FormatInt(n, 10)) + suffix, nil
}

// englishNumeralSuffix picks st/nd/rd/th, with the 11–13 exception.
func englishNumeralSuffix(n int64) string {
	if r := n % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// ParseNumeral extracts the rank from a numeric ordinal in either script:
// "୧ମ", "୧୧ଶ", "1st", "22nd". Input is NFC-normalized before matching.
func ParseNumeral(s string) (int64, error) {
	s = strings.TrimSpace(norm.NFC.String(s))
	if s == "" {
		return 0, fmt.Errorf("ordinal: empty input: %w", numwords.ErrInvalidInput)
	}

	var digitsPart string
	if m := reOdiaNumeral.FindStringSubmatch(s); m != nil {
		digitsPart = digits.ToASCII(m[1])
	} else if m := reEnglishNumeral.FindStringSubmatch(s); m != nil {
		digitsPart = m[1]
	} else {
		return 0, fmt.Errorf("ordinal: cannot parse %q: %w", s, numwords.ErrInvalidInput)
	}

	digitsPart = strings.ReplaceAll(digitsPart, ",", "")
	n, err := strconv.ParseInt(digitsPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ordinal: %q out of range: %w", s, numwords.ErrInvalidInput)
	}
	if n < 1 {
		return 0, fmt.Errorf("ordinal: rank %d below one: %w", n, numwords.ErrInvalidInput)
	}
	return n, nil
}
