package numwords

import "fmt"

// ScaleUnit is one named denomination of a numbering system.
type ScaleUnit struct {
	// Magnitude is the power-of-ten boundary of the unit (e.g. 100000 for lakh).
	Magnitude int64

	// Name is the word appended after the unit count.
	Name string

	// Plural, when non-empty, replaces Name for counts other than one.
	// The shipped Odia and English-Indian tables do not pluralize.
	Plural string
}

// Scale is an immutable numbering system: an ordered unit table plus the
// word set needed to render counts, zero, sign and decimals.
//
// The shipped scales are obtained through Convert and ConvertFloat; Scale is
// exported so callers can run ConvertScale against a custom table.
type Scale struct {
	// Units lists denominations with strictly decreasing magnitudes.
	Units []ScaleUnit

	// Small maps an integer below the smallest unit magnitude to its word.
	// Empty entries compose as Small[tens*10] + Joiner + Small[ones].
	Small []string

	// Joiner sits between decade and ones words for composed entries.
	Joiner string

	// Zero is the word for an exact zero value.
	Zero string

	// Negative prefixes conversions of negative values.
	Negative string

	// Decimal connects the integer part to digit-by-digit fraction words.
	Decimal string
}

// validate checks the structural invariants of the table.
// Shipped scales always pass; only caller-supplied tables can fail.
func (sc *Scale) validate() error {
	if len(sc.Units) == 0 {
		return fmt.Errorf("numwords: empty unit table: %w", ErrMalformedLexicon)
	}
	prev := int64(0)
	for i := len(sc.Units) - 1; i >= 0; i-- {
		m := sc.Units[i].Magnitude
		if m < 2 {
			return fmt.Errorf("numwords: unit magnitude %d below 2: %w", m, ErrMalformedLexicon)
		}
		if m <= prev {
			return fmt.Errorf("numwords: unit magnitudes not strictly decreasing at %d: %w", m, ErrMalformedLexicon)
		}
		prev = m
	}
	smallest := sc.Units[len(sc.Units)-1].Magnitude
	if int64(len(sc.Small)) < smallest {
		return fmt.Errorf("numwords: small table covers %d words, smallest unit is %d: %w",
			len(sc.Small), smallest, ErrMalformedLexicon)
	}
	if sc.Zero == "" {
		return fmt.Errorf("numwords: missing zero word: %w", ErrMalformedLexicon)
	}
	return nil
}

// smallWord returns the word for n, which must satisfy 0 <= n < len(sc.Small).
// Gaps compose from the decade and ones entries.
func (sc *Scale) smallWord(n int64) string {
	if w := sc.Small[n]; w != "" {
		return w
	}
	t, o := n/10*10, n%10
	if o == 0 {
		return sc.Small[t]
	}
	return sc.Small[t] + sc.Joiner + sc.Small[o]
}

// buildOdiaScale assembles a Scale from triple-form tables for one of the
// Odia script variants.
func buildOdiaScale(units []unitForms, lang Language) *Scale {
	small := make([]string, len(smallForms))
	for i, f := range smallForms {
		small[i] = f[lang]
	}
	us := make([]ScaleUnit, len(units))
	for i, u := range units {
		us[i] = ScaleUnit{Magnitude: u.magnitude, Name: u.f[lang]}
	}
	return &Scale{
		Units:    us,
		Small:    small,
		Joiner:   " ",
		Zero:     smallForms[0][lang],
		Negative: negativeForms[lang],
		Decimal:  dashamikForms[lang],
	}
}

// buildEnglishScale assembles the English-Indian scale.
func buildEnglishScale() *Scale {
	small := make([]string, 100)
	copy(small, englishOnes[:])
	for d := 2; d <= 9; d++ {
		small[d*10] = englishTens[d]
	}
	return &Scale{
		Units:    englishUnits,
		Small:    small,
		Joiner:   "-",
		Zero:     englishOnes[0],
		Negative: "minus",
		Decimal:  "point",
	}
}

// scaleTable holds the prebuilt scales, indexed by [System][Language].
// The Barnabodha system has no English rendering and stays nil there.
var scaleTable = func() [2][4]*Scale {
	var t [2][4]*Scale
	for _, lang := range []Language{Odia, Roman, Odilish} {
		t[Modern][lang] = buildOdiaScale(modernUnits, lang)
		t[Barnabodha][lang] = buildOdiaScale(barnabodhaUnits, lang)
	}
	t[Modern][English] = buildEnglishScale()
	return t
}()

// scaleFor selects the prebuilt scale for a system/language pair.
func scaleFor(sys System, lang Language) (*Scale, error) {
	if sys < Modern || sys > Barnabodha {
		return nil, fmt.Errorf("numwords: unknown system %d: %w", int(sys), ErrUnsupportedScale)
	}
	if lang < Odia || lang > English {
		return nil, fmt.Errorf("numwords: unknown language %d: %w", int(lang), ErrUnsupportedScale)
	}
	sc := scaleTable[sys][lang]
	if sc == nil {
		return nil, fmt.Errorf("numwords: %v has no %v rendering: %w", sys, lang, ErrUnsupportedScale)
	}
	return sc, nil
}
