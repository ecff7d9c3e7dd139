package stat

import "math"

// Min tracks the smallest observed value.
//
// The running value is seeded with math.MaxFloat64. With zero updates Result
// returns that seed rather than NaN, unlike Mean and friends. The asymmetry
// is deliberate and observable; callers that need a distinct "no data" signal
// must track the count themselves.
type Min struct {
	value float64
}

// NewMin returns a Min seeded with the largest representable float64.
func NewMin() *Min {
	return &Min{value: math.MaxFloat64}
}

// Update replaces the running value when v is smaller.
func (m *Min) Update(v float64) {
	if v < m.value {
		m.value = v
	}
}

// Result returns the smallest value seen, or the seed if none were.
func (m *Min) Result() float64 {
	return m.value
}

// Name implements Accumulator.
func (m *Min) Name() string {
	return "min"
}

// Max tracks the largest observed value. It mirrors Min, seeded with
// -math.MaxFloat64.
type Max struct {
	value float64
}

// NewMax returns a Max seeded with the lowest representable float64.
func NewMax() *Max {
	return &Max{value: -math.MaxFloat64}
}

// Update replaces the running value when v is larger.
func (m *Max) Update(v float64) {
	if v > m.value {
		m.value = v
	}
}

// Result returns the largest value seen, or the seed if none were.
func (m *Max) Result() float64 {
	return m.value
}

// Name implements Accumulator.
func (m *Max) Name() string {
	return "max"
}
