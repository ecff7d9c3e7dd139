package stat

import "math"

// Mean computes the arithmetic mean in O(1) space from a running sum and
// count.
type Mean struct {
	sum   float64
	count int
}

// NewMean returns an empty Mean.
func NewMean() *Mean {
	return &Mean{}
}

// Update adds v to the running sum.
func (m *Mean) Update(v float64) {
	m.sum += v
	m.count++
}

// Result returns sum/count, or NaN when no values were observed.
func (m *Mean) Result() float64 {
	if m.count == 0 {
		return math.NaN()
	}

	return m.sum / float64(m.count)
}

// Name implements Accumulator.
func (m *Mean) Name() string {
	return "mean"
}
