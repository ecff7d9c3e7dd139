package stat

// Set is an ordered collection of accumulators driven by one input stream.
// Order is the only guarantee: names may collide and nothing deduplicates
// them. The set owns its accumulators for the lifetime of a run.
type Set []Accumulator

// Default returns the standard report set: min, max, mean, population
// stddev, and the 90th and 95th nearest-rank percentiles.
func Default() Set {
	return WithPercentiles(RankP90, RankP95)
}

// WithPercentiles returns a set holding min, max, mean and stddev plus one
// nearest-rank percentile accumulator per given rank, in argument order.
func WithPercentiles(ranks ...float64) Set {
	set := Set{NewMin(), NewMax(), NewMean(), NewStdDev()}

	for _, rank := range ranks {
		set = append(set, NewPercentile(rank))
	}

	return set
}

// Update broadcasts one value to every accumulator, in set order.
func (s Set) Update(v float64) {
	for _, acc := range s {
		acc.Update(v)
	}
}
