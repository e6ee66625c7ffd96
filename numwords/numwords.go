// Package numwords converts numbers into Odia and English-Indian words.
//
// Two numbering systems are supported:
//
//   - Modern: the contemporary Indian scale (ଶହ, ହଜାର, ଲକ୍ଷ, କୋଟି), also
//     available with English unit names (hundred, thousand, lakh, crore).
//   - Barnabodha: the classical Odia scale from ଶତ (10^2) up to
//     ପରାର୍ଦ୍ଧ (10^17).
//
// Odia output comes in three written variants: native script (Odia),
// standard romanization (Roman) and casual Latin spelling (Odilish).
//
// Values above the largest declared unit render the top unit with a
// multiplier prefix ("ଶହେ କୋଟି" for 10^9 on the modern scale) rather than
// failing; conversion fails only for invalid input or unsupported
// system/language pairs, and never returns partial output.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Integer range is int64; math.MinInt64 is rejected (its absolute
//     value is not representable).
//   - Decimal input is read digit by digit after the connector word
//     (ଦଶମିକ / "point"); there is no fraction-as-integer reading.
//   - The Barnabodha system has no English rendering.
package numwords

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/srinibashsamal/odianumerals/internal/numstr"
)

// Conversion failures wrap one of these sentinel errors.
var (
	// ErrInvalidInput marks values that cannot be converted: non-numeric
	// strings, non-finite values, out-of-range integers.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedScale marks unknown system or language tags, and
	// system/language pairs with no rendering.
	ErrUnsupportedScale = errors.New("unsupported scale")

	// ErrMalformedLexicon marks custom Scale tables that violate the
	// structural invariants (see Scale).
	ErrMalformedLexicon = errors.New("malformed lexicon")
)

// System selects a numbering system.
type System int

const (
	Modern     System = iota // contemporary Indian scale (lakh, crore)
	Barnabodha               // classical Odia scale (ayuta … parārddha)
)

// systemNames maps System values to their string names.
var systemNames = [...]string{
	Modern:     "Modern",
	Barnabodha: "Barnabodha",
}

// String returns the name of the system.
func (s System) String() string {
	if int(s) >= 0 && int(s) < len(systemNames) {
		return systemNames[s]
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// ParseSystem converts a case-insensitive system name to a System.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "modern", "indian":
		return Modern, nil
	case "barnabodha", "classical":
		return Barnabodha, nil
	}
	return 0, fmt.Errorf("numwords: unknown system %q: %w", s, ErrUnsupportedScale)
}

// Language selects the written variant of the output.
type Language int

const (
	Odia    Language = iota // native Odia script (ଏକ, ଦୁଇ, …)
	Roman                   // standard romanization (eka, dui, …)
	Odilish                 // casual Latin spelling (ek, dui, …)
	English                 // English words with Indian units (one lakh, …)
)

// languageNames maps Language values to their string names.
var languageNames = [...]string{
	Odia:    "Odia",
	Roman:   "Roman",
	Odilish: "Odilish",
	English: "English",
}

// String returns the name of the language.
func (l Language) String() string {
	if int(l) >= 0 && int(l) < len(languageNames) {
		return languageNames[l]
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// ParseLanguage converts a case-insensitive language name or ISO-style
// code to a Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "odia", "or", "od":
		return Odia, nil
	case "roman", "romanized":
		return Roman, nil
	case "odilish":
		return Odilish, nil
	case "english", "en":
		return English, nil
	}
	return 0, fmt.Errorf("numwords: unknown language %q: %w", s, ErrUnsupportedScale)
}

// Convert returns the cardinal words for n in the given system and language.
// Negative values render with a leading negative word ("ବିୟୋଗ" / "minus").
func Convert(n int64, sys System, lang Language) (string, error) {
	sc, err := scaleFor(sys, lang)
	if err != nil {
		return "", err
	}
	return convertScale(n, sc)
}

// ConvertFloat converts a decimal numeral string (ASCII or Odia digits,
// optional sign, optional comma separators) to words. A fractional part is
// read digit by digit after the decimal connector word: "10.5" becomes
// "ଦଶ ଦଶମିକ ପାଞ୍ଚ". Trailing fractional zeros are not read.
func ConvertFloat(s string, sys System, lang Language) (string, error) {
	sc, err := scaleFor(sys, lang)
	if err != nil {
		return "", err
	}
	return convertFloatScale(s, sc)
}

// ConvertScale converts n against a caller-supplied Scale.
// The table is validated on every call; structural violations surface
// as ErrMalformedLexicon.
func ConvertScale(n int64, sc *Scale) (string, error) {
	if sc == nil {
		return "", fmt.Errorf("numwords: nil scale: %w", ErrMalformedLexicon)
	}
	if err := sc.validate(); err != nil {
		return "", err
	}
	return convertScale(n, sc)
}

// Digit returns the word for a single decimal digit.
// Used by adapters that read numbers digit by digit.
func Digit(d int, lang Language) (string, error) {
	if d < 0 || d > 9 {
		return "", fmt.Errorf("numwords: digit %d out of range: %w", d, ErrInvalidInput)
	}
	if lang == English {
		return englishOnes[d], nil
	}
	if lang < Odia || lang > Odilish {
		return "", fmt.Errorf("numwords: unknown language %d: %w", int(lang), ErrUnsupportedScale)
	}
	return smallForms[d][lang], nil
}

// DecimalWord returns the connector spoken before fractional digits
// (ଦଶମିକ / "point").
func DecimalWord(lang Language) string {
	if lang == English {
		return "point"
	}
	if lang < Odia || lang > Odilish {
		return ""
	}
	return dashamikForms[lang]
}

// ZeroWord returns the word for zero in the given language.
func ZeroWord(lang Language) string {
	if lang == English {
		return englishOnes[0]
	}
	if lang < Odia || lang > Odilish {
		return ""
	}
	return smallForms[0][lang]
}

// NegativeWord returns the prefix word for negative values.
func NegativeWord(lang Language) string {
	if lang == English {
		return "minus"
	}
	if lang < Odia || lang > Odilish {
		return ""
	}
	return negativeForms[lang]
}

// convertScale renders an integer against a validated scale.
func convertScale(n int64, sc *Scale) (string, error) {
	if n == math.MinInt64 {
		return "", fmt.Errorf("numwords: %d out of range: %w", n, ErrInvalidInput)
	}
	negative := n < 0
	if negative {
		n = -n
	}
	words := sc.wordsAbs(n)
	if negative {
		return sc.Negative + " " + words, nil
	}
	return words, nil
}

// wordsAbs renders a non-negative integer. Values inside the small table
// resolve by direct lookup, which is what makes exactly 100 come out as
// the standalone ଶହେ rather than the compound ଏକ ଶହ.
func (sc *Scale) wordsAbs(n int64) string {
	if n == 0 {
		return sc.Zero
	}
	if n < int64(len(sc.Small)) {
		return sc.smallWord(n)
	}
	groups, err := decompose(n, sc)
	if err != nil {
		// Unreachable: n is positive here.
		return ""
	}
	return compose(groups, sc)
}

// convertFloatScale renders a decimal numeral string against a scale.
func convertFloatScale(s string, sc *Scale) (string, error) {
	num, err := numstr.Parse(s)
	if err != nil {
		return "", fmt.Errorf("numwords: %v: %w", err, ErrInvalidInput)
	}

	whole, err := strconv.ParseInt(num.Int, 10, 64)
	if err != nil {
		return "", fmt.Errorf("numwords: integer part of %q out of range: %w", s, ErrInvalidInput)
	}

	// "-0.0" carries no sign worth speaking.
	negative := num.Neg && !(whole == 0 && num.Frac == "")

	var b strings.Builder
	b.Grow(growFloat)

	if negative {
		b.WriteString(sc.Negative)
		b.WriteByte(' ')
	}
	b.WriteString(sc.wordsAbs(whole))

	if num.Frac != "" {
		b.WriteByte(' ')
		b.WriteString(sc.Decimal)
		for _, ch := range num.Frac {
			b.WriteByte(' ')
			b.WriteString(sc.smallWord(int64(ch - '0')))
		}
	}

	return b.String(), nil
}
