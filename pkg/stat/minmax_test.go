package stat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/descstat/pkg/stat"
)

func TestMin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "single_value", values: []float64{42}, expected: 42},
		{name: "ascending", values: []float64{1, 2, 3, 4, 5}, expected: 1},
		{name: "descending", values: []float64{5, 4, 3, 2, 1}, expected: 1},
		{name: "negative_values", values: []float64{3, -7.5, 0, 2}, expected: -7.5},
		{name: "duplicates", values: []float64{2, 2, 2}, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			acc := stat.NewMin()
			for _, v := range tt.values {
				acc.Update(v)
			}

			assert.InDelta(t, tt.expected, acc.Result(), 1e-12)
			assert.Equal(t, "min", acc.Name())
		})
	}
}

func TestMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "single_value", values: []float64{42}, expected: 42},
		{name: "ascending", values: []float64{1, 2, 3, 4, 5}, expected: 5},
		{name: "descending", values: []float64{5, 4, 3, 2, 1}, expected: 5},
		{name: "negative_values", values: []float64{-3, -7.5, -0.25}, expected: -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			acc := stat.NewMax()
			for _, v := range tt.values {
				acc.Update(v)
			}

			assert.InDelta(t, tt.expected, acc.Result(), 1e-12)
			assert.Equal(t, "max", acc.Name())
		})
	}
}

// With zero updates, Min and Max report their seed extremes instead of NaN.
// The other statistics report NaN for an empty stream; this asymmetry is
// inherited behavior and intentionally not normalized.
func TestMinMaxEmptyReportSeedNotNaN(t *testing.T) {
	t.Parallel()

	minAcc := stat.NewMin()
	maxAcc := stat.NewMax()

	assert.InDelta(t, math.MaxFloat64, minAcc.Result(), 0)
	assert.InDelta(t, -math.MaxFloat64, maxAcc.Result(), 0)
	assert.False(t, math.IsNaN(minAcc.Result()))
	assert.False(t, math.IsNaN(maxAcc.Result()))
}

func TestMinMaxBoundObservations(t *testing.T) {
	t.Parallel()

	values := []float64{0.5, -12, 99.25, 3, 3, -1}

	minAcc := stat.NewMin()
	maxAcc := stat.NewMax()

	for _, v := range values {
		minAcc.Update(v)
		maxAcc.Update(v)
	}

	for _, v := range values {
		assert.LessOrEqual(t, minAcc.Result(), v)
		assert.GreaterOrEqual(t, maxAcc.Result(), v)
	}
}
