package stat

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Well-known tail percentile ranks.
const (
	RankP90 = 90
	RankP95 = 95
)

// maxRank bounds a percentile rank from above; ranks clamp to [0, maxRank].
const maxRank = 100

// Percentile computes a nearest-rank percentile: the result is always an
// actually-observed value, never an interpolation between two observations.
//
// Observed values are kept sorted at all times via insertion into a sorted
// slice, O(n) per update from the shift. That is acceptable for the intended
// data sizes and keeps Result O(1).
type Percentile struct {
	rank   float64
	name   string
	sorted []float64
}

// NewPercentile returns an empty Percentile for the given rank.
// The rank is clamped to [0, 100] at construction and embedded in the name,
// e.g. "pct(90)".
func NewPercentile(rank float64) *Percentile {
	rank = max(0, min(rank, maxRank))

	return &Percentile{
		rank: rank,
		name: fmt.Sprintf("pct(%v)", rank),
	}
}

// Update inserts v at the first index whose value is not less than v, so
// insertion is stable before equal elements.
func (p *Percentile) Update(v float64) {
	idx := sort.SearchFloat64s(p.sorted, v)
	p.sorted = slices.Insert(p.sorted, idx, v)
}

// Result returns the value at index floor(n*rank/100) of the sorted history,
// clamped to the last element, or NaN when no values were observed.
func (p *Percentile) Result() float64 {
	n := len(p.sorted)
	if n == 0 {
		return math.NaN()
	}

	idx := int(math.Floor(float64(n) * p.rank / maxRank))
	if idx >= n {
		idx = n - 1
	}

	return p.sorted[idx]
}

// Name implements Accumulator.
func (p *Percentile) Name() string {
	return p.name
}

// Rank returns the clamped percentile rank this accumulator reports.
func (p *Percentile) Rank() float64 {
	return p.rank
}
