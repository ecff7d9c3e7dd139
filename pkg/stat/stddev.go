package stat

import "math"

// StdDev computes the population standard deviation (divisor n, not n-1).
//
// It retains every observed value and recomputes the result from scratch on
// each query with two passes through nested Mean accumulators: first the
// mean, then the mean of squared deviations. Recomputing trades O(n) query
// cost for freedom from the cancellation error that single-pass variance
// formulas suffer; Result is expected to be called once per run.
type StdDev struct {
	values []float64
}

// NewStdDev returns an empty StdDev.
func NewStdDev() *StdDev {
	return &StdDev{}
}

// Update appends v to the retained history.
func (s *StdDev) Update(v float64) {
	s.values = append(s.values, v)
}

// Result returns the population standard deviation of all observed values,
// or NaN when none were observed.
func (s *StdDev) Result() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}

	center := NewMean()
	for _, v := range s.values {
		center.Update(v)
	}

	mean := center.Result()

	spread := NewMean()
	for _, v := range s.values {
		diff := v - mean
		spread.Update(diff * diff)
	}

	return math.Sqrt(spread.Result())
}

// Name implements Accumulator.
func (s *StdDev) Name() string {
	return "std"
}
