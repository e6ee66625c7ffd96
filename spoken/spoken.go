// Package spoken renders numbers the way they are said in everyday Odia
// rather than read formally: colloquial fraction terms (ଅଧା for a half,
// ଦେଢ଼ for one and a half, ସାଢ଼େ ତିନି for three and a half), percentages,
// and digit-by-digit reading sequences for phone numbers and codes.
//
// All functions are safe for concurrent use by multiple goroutines.
package spoken

import (
	"fmt"

	"github.com/srinibashsamal/odianumerals/internal/numstr"
	"github.com/srinibashsamal/odianumerals/numwords"
)

// fracKey identifies a colloquial fraction by its exact whole and
// fractional parts after normalization ("0.50" and "0.5" both key to
// {0, "5"}).
type fracKey struct {
	whole int64
	frac  string
}

// Colloquial fraction terms. Values above 2.5 with a half part use the
// ସାଢ଼େ prefix instead.
var fractionWords = map[fracKey][4]string{
	{0, "25"}: {"ଚଉଠ", "cauṭha", "chautha", "a quarter"},
	{0, "5"}:  {"ଅଧା", "adhā", "adha", "a half"},
	{0, "75"}: {"ତିନିପା", "tinipā", "tinipa", "three quarters"},
	{1, "5"}:  {"ଦେଢ଼", "deṛha", "dedha", "one and a half"},
	{2, "5"}:  {"ଅଢ଼େଇ", "aṛhei", "adhei", "two and a half"},
}

var halfPastWords = [4]string{"ସାଢ଼େ", "sāṛhe", "sadhe", "and a half"}

var percentWords = [4]string{"ପ୍ରତିଶତ", "pratiśata", "pratishata", "percent"}

// Fraction converts a numeral string into its colloquial spoken form.
// Exact quarters and halves get their own words ("0.5" → ଅଧା, "1.5" →
// ଦେଢ଼); any larger value ending in a half is phrased with ସାଢ଼େ
// ("3.5" → ସାଢ଼େ ତିନି). Everything else falls back to the formal
// decimal reading.
func Fraction(s string, lang numwords.Language) (string, error) {
	if lang < numwords.Odia || lang > numwords.English {
		return "", fmt.Errorf("spoken: unknown language %d: %w", int(lang), numwords.ErrUnsupportedScale)
	}
	n, err := numstr.Parse(s)
	if err != nil {
		return "", fmt.Errorf("spoken: %w", err)
	}

	if !n.Neg {
		whole, err := n.IntPart()
		if err == nil {
			if w, ok := fractionWords[fracKey{whole, n.Frac}]; ok {
				return w[lang], nil
			}
			if whole > 2 && n.Frac == "5" {
				wholeWords, err := numwords.Convert(whole, numwords.Modern, lang)
				if err != nil {
					return "", err
				}
				if lang == numwords.English {
					return wholeWords + " " + halfPastWords[lang], nil
				}
				return halfPastWords[lang] + " " + wholeWords, nil
			}
		}
	}
	return numwords.ConvertFloat(n.String(), numwords.Modern, lang)
}

// Percentage reads a numeral string as a percentage: "10" becomes
// "ଦଶ ପ୍ରତିଶତ".
func Percentage(s string, lang numwords.Language) (string, error) {
	if lang < numwords.Odia || lang > numwords.English {
		return "", fmt.Errorf("spoken: unknown language %d: %w", int(lang), numwords.ErrUnsupportedScale)
	}
	w, err := numwords.ConvertFloat(s, numwords.Modern, lang)
	if err != nil {
		return "", err
	}
	return w + " " + percentWords[lang], nil
}

// ReadingSequence reads a numeral string digit by digit, the way phone
// numbers, account numbers and one-time codes are dictated: "102" becomes
// "ଏକ ଶୂନ ଦୁଇ". Leading zeros are preserved; a decimal point is read as
// the decimal connector word.
func ReadingSequence(s string, lang numwords.Language) (string, error) {
	if lang < numwords.Odia || lang > numwords.English {
		return "", fmt.Errorf("spoken: unknown language %d: %w", int(lang), numwords.ErrUnsupportedScale)
	}
	ascii := numstr.ToASCIIDigits(s)
	if ascii == "" {
		return "", fmt.Errorf("spoken: empty input: %w", numwords.ErrInvalidInput)
	}

	words := make([]string, 0, len(ascii))
	for _, r := range ascii {
		switch {
		case r >= '0' && r <= '9':
			w, err := numwords.Digit(int(r-'0'), lang)
			if err != nil {
				return "", err
			}
			words = append(words, w)
		case r == '.':
			words = append(words, numwords.DecimalWord(lang))
		default:
			return "", fmt.Errorf("spoken: non-numeric character %q: %w", r, numwords.ErrInvalidInput)
		}
	}

	out := words[0]
	for _, w := range words[1:] {
		out += " " + w
	}
	return out, nil
}
