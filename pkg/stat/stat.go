// Package stat implements streaming accumulators for descriptive statistics.
// Each accumulator ingests values one at a time and can report its statistic
// at any point without re-reading the input. All standard deviation
// calculations use population stddev (÷n, not ÷(n−1)).
package stat

// Accumulator is a stateful statistic fed one value at a time.
//
// Result must be side-effect-free and return the same value until the next
// Update. Name is fixed at construction. Behavior for NaN or infinite input
// values follows IEEE 754 arithmetic and is not sanitized.
type Accumulator interface {
	// Update incorporates one observed value.
	Update(v float64)

	// Result computes the statistic over all values seen so far.
	// Statistics undefined for an empty stream report NaN; Min and Max
	// instead report their unmet seed values (see their docs).
	Result() float64

	// Name returns the stable report label for this statistic.
	Name() string
}
