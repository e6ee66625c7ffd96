// Package random generates random values already rendered in Odia form,
// for flash cards, practice sheets and test fixtures. By default results
// come back as Odia digit strings ("୪୨"); AsWords switches to spoken
// words on the modern or Barnabodha scale.
//
// A Generator owns its own PCG source. Unlike the rest of the module, a
// Generator is NOT safe for concurrent use; give each goroutine its own.
package random

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/srinibashsamal/odianumerals/internal/numstr"
	"github.com/srinibashsamal/odianumerals/numwords"
)

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the Generator deterministic. Without it the source is
// seeded from the shared runtime source.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// AsWords renders results as words in the given language instead of Odia
// digits.
func AsWords(lang numwords.Language) Option {
	return func(g *Generator) {
		g.words = true
		g.lang = lang
	}
}

// WithBarnabodha selects the classical scale for word rendering.
func WithBarnabodha() Option {
	return func(g *Generator) { g.system = numwords.Barnabodha }
}

// Generator produces random numbers formatted per its options.
type Generator struct {
	rng    *rand.Rand
	words  bool
	lang   numwords.Language
	system numwords.System
}

// New returns a Generator. Options are applied in order, so a later
// WithSeed overrides an earlier one.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		lang:   numwords.Odia,
		system: numwords.Modern,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// format renders an ASCII numeral string per the Generator's options.
func (g *Generator) format(ascii string) (string, error) {
	if g.words {
		return numwords.ConvertFloat(ascii, g.system, g.lang)
	}
	return numstr.ToOdiaDigits(ascii), nil
}

// Int returns a random integer in [lo, hi], formatted.
func (g *Generator) Int(lo, hi int64) (string, error) {
	if lo > hi {
		return "", fmt.Errorf("random: empty range [%d, %d]: %w", lo, hi, numwords.ErrInvalidInput)
	}
	val := lo + g.rng.Int64N(hi-lo+1)
	return g.format(fmt.Sprintf("%d", val))
}

// Range returns a random value from the arithmetic sequence start,
// start+step, ... below stop.
func (g *Generator) Range(start, stop, step int64) (string, error) {
	if step <= 0 {
		return "", fmt.Errorf("random: non-positive step %d: %w", step, numwords.ErrInvalidInput)
	}
	if start >= stop {
		return "", fmt.Errorf("random: empty range [%d, %d): %w", start, stop, numwords.ErrInvalidInput)
	}
	n := (stop - start + step - 1) / step
	val := start + step*g.rng.Int64N(n)
	return g.format(fmt.Sprintf("%d", val))
}

// Decimal returns a random value in [lo, hi) rounded to the given number
// of fractional digits.
func (g *Generator) Decimal(lo, hi float64, precision int) (string, error) {
	if lo >= hi {
		return "", fmt.Errorf("random: empty range [%g, %g): %w", lo, hi, numwords.ErrInvalidInput)
	}
	if precision < 0 || precision > 12 {
		return "", fmt.Errorf("random: precision %d out of range: %w", precision, numwords.ErrInvalidInput)
	}
	val := lo + g.rng.Float64()*(hi-lo)
	d := decimal.NewFromFloat(val).Round(int32(precision))
	return g.format(d.String())
}

// Pick returns one random item. Items that are numeral strings (ASCII or
// Odia digits) are formatted per the Generator's options; anything else
// comes back unchanged.
func (g *Generator) Pick(items []string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("random: no items to pick from: %w", numwords.ErrInvalidInput)
	}
	return g.formatItem(items[g.rng.IntN(len(items))])
}

// PickN returns count random items, duplicates allowed.
func (g *Generator) PickN(items []string, count int) ([]string, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("random: no items to pick from: %w", numwords.ErrInvalidInput)
	}
	if count < 0 {
		return nil, fmt.Errorf("random: negative count %d: %w", count, numwords.ErrInvalidInput)
	}
	out := make([]string, count)
	for i := range out {
		v, err := g.formatItem(items[g.rng.IntN(len(items))])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Sample returns count distinct items in random order.
func (g *Generator) Sample(items []string, count int) ([]string, error) {
	if count < 0 || count > len(items) {
		return nil, fmt.Errorf("random: sample count %d out of range for %d items: %w",
			count, len(items), numwords.ErrInvalidInput)
	}
	perm := g.rng.Perm(len(items))
	out := make([]string, count)
	for i := 0; i < count; i++ {
		v, err := g.formatItem(items[perm[i]])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (g *Generator) formatItem(item string) (string, error) {
	n, err := numstr.Parse(item)
	if err != nil {
		return item, nil
	}
	return g.format(n.String())
}
