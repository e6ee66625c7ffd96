// Magnitude decomposition: splitting an integer into ordered unit groups.
package numwords

import "fmt"

// bareResidual marks a group carrying a value below the smallest unit
// magnitude; such groups render directly from the small-word table.
const bareResidual = -1

// group is one (unit, count) pair produced by decomposition.
// unit indexes into Scale.Units, or is bareResidual.
type group struct {
	unit  int
	count int64
}

// decompose splits a non-negative integer into unit groups, largest
// magnitude first. Zero yields a single sentinel residual group so that
// composition always has something to render.
//
// Conservation invariant: sum of count*magnitude over unit groups plus the
// residual count equals n exactly.
func decompose(n int64, sc *Scale) ([]group, error) {
	if n < 0 {
		return nil, fmt.Errorf("numwords: cannot decompose negative value %d: %w", n, ErrInvalidInput)
	}
	if n == 0 {
		return []group{{unit: bareResidual, count: 0}}, nil
	}

	groups := make([]group, 0, len(sc.Units)+1)
	for i, u := range sc.Units {
		if count := n / u.Magnitude; count > 0 {
			groups = append(groups, group{unit: i, count: count})
			n %= u.Magnitude
		}
	}
	if n > 0 {
		groups = append(groups, group{unit: bareResidual, count: n})
	}
	return groups, nil
}
