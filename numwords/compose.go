// Word composition: rendering decomposed groups as a phrase.
package numwords

import "strings"

// compose renders an ordered group sequence into the final phrase.
// Groups join with single spaces in decomposition order.
func compose(groups []group, sc *Scale) string {
	var b strings.Builder
	b.Grow(growConvert)

	for _, g := range groups {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if g.unit == bareResidual {
			if g.count == 0 {
				b.WriteString(sc.Zero)
			} else {
				b.WriteString(sc.smallWord(g.count))
			}
			continue
		}

		u := sc.Units[g.unit]
		// A count of one still renders the "one" word before the unit
		// name, per Odia phrasing ("ଏକ ଲକ୍ଷ", never bare "ଲକ୍ଷ").
		writeCount(&b, g.count, sc)
		b.WriteByte(' ')
		if u.Plural != "" && g.count != 1 {
			b.WriteString(u.Plural)
		} else {
			b.WriteString(u.Name)
		}
	}

	return b.String()
}

// writeCount renders a unit count. Counts beyond the small table recurse
// through the full decompose/compose pipeline, which is how magnitudes
// above the largest declared unit come out as multiplier prefixes
// ("ଶହେ କୋଟି" for 10^9 on the modern scale) instead of failing.
func writeCount(b *strings.Builder, count int64, sc *Scale) {
	if count < int64(len(sc.Small)) {
		b.WriteString(sc.smallWord(count))
		return
	}
	inner, err := decompose(count, sc)
	if err != nil {
		// Unreachable: counts are positive by construction.
		return
	}
	b.WriteString(compose(inner, sc))
}
