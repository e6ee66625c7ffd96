// Package currency renders monetary amounts as Odia or English words using
// the historical Tanka/Paisa units (ଟଙ୍କା / ପଇସା, one hundred paisa to the
// tanka).
//
// Amounts are decimal.Decimal values, so paisa extraction is exact: the
// paisa count is the first two fractional digits, right-padded with zero
// ("10.5" → 50 paisa) and truncated beyond two digits ("10.505" → 50 paisa),
// matching how handwritten amounts are read out.
//
// All functions are safe for concurrent use by multiple goroutines.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/srinibashsamal/odianumerals/internal/numstr"
	"github.com/srinibashsamal/odianumerals/numwords"
)

// paisaPerTanka is the subunit ratio.
const paisaPerTanka = 100

// Unit labels indexed by language.
var (
	tankaLabels = [4]string{"ଟଙ୍କା", "ṭaṅkā", "tanka", "tanka"}
	paisaLabels = [4]string{"ପଇସା", "paisa", "paisa", "paisa"}
)

// Option adjusts how an amount is phrased.
type Option func(*options)

type options struct {
	system numwords.System
}

// WithBarnabodha renders the numeric parts on the classical Barnabodha
// scale instead of the modern one.
func WithBarnabodha() Option {
	return func(o *options) { o.system = numwords.Barnabodha }
}

// Words converts an amount into currency words: "ଦଶ ଟଙ୍କା ପଚାଶ ପଇସା" for
// 10.50. A zero tanka part with non-zero paisa drops the tanka phrase
// ("ସତୁରୀ ପଇସା" for 0.70); an exactly zero amount still names the unit
// ("ଶୂନ ଟଙ୍କା"). Negative amounts are rejected.
func Words(amount decimal.Decimal, lang numwords.Language, opts ...Option) (string, error) {
	o := options{system: numwords.Modern}
	for _, opt := range opts {
		opt(&o)
	}

	if amount.IsNegative() {
		return "", fmt.Errorf("currency: negative amount %s: %w", amount, numwords.ErrInvalidInput)
	}
	if lang < numwords.Odia || lang > numwords.English {
		return "", fmt.Errorf("currency: unknown language %d: %w", int(lang), numwords.ErrUnsupportedScale)
	}

	tanka := amount.Truncate(0)
	paisa := amount.Sub(tanka).Mul(decimal.NewFromInt(paisaPerTanka)).Truncate(0)

	if !tanka.BigInt().IsInt64() {
		return "", fmt.Errorf("currency: amount %s out of range: %w", amount, numwords.ErrInvalidInput)
	}

	tankaValue := tanka.IntPart()
	paisaValue := paisa.IntPart()

	tankaWords, err := numwords.Convert(tankaValue, o.system, lang)
	if err != nil {
		return "", err
	}

	if paisaValue == 0 {
		return tankaWords + " " + tankaLabels[lang], nil
	}

	paisaWords, err := numwords.Convert(paisaValue, o.system, lang)
	if err != nil {
		return "", err
	}

	if tankaValue == 0 {
		return paisaWords + " " + paisaLabels[lang], nil
	}
	return tankaWords + " " + tankaLabels[lang] + " " + paisaWords + " " + paisaLabels[lang], nil
}

// WordsString is Words for amounts held as numeral strings (ASCII or Odia
// digits, commas allowed): "୧୦.୫୦" works directly.
func WordsString(amount string, lang numwords.Language, opts ...Option) (string, error) {
	n, err := numstr.Parse(amount)
	if err != nil {
		return "", fmt.Errorf("currency: invalid amount %q: %w", amount, numwords.ErrInvalidInput)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return "", fmt.Errorf("currency: invalid amount %q: %w", amount, numwords.ErrInvalidInput)
	}
	return Words(d, lang, opts...)
}
