// Package ingest drives a stat.Set from a token stream: the single-pass run
// loop between the input source and the accumulators.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Sumatoshi-tech/descstat/pkg/stat"
)

// ErrInvalidInput indicates a token that could not be parsed as a number.
// The run is not recoverable past it: no statistics are recorded for the
// offending token and the caller must not report partial results.
var ErrInvalidInput = errors.New("invalid input data")

// Consume reads whitespace-separated decimal tokens from r until EOF,
// broadcasting each parsed value to every accumulator in the set. It blocks
// on the reader and returns the number of values consumed.
//
// A malformed token stops the loop immediately and returns an error wrapping
// ErrInvalidInput. Reader failures other than EOF are returned wrapped as
// well; in both cases the count covers only the values applied before the
// failure.
func Consume(r io.Reader, set stat.Set) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	count := 0

	for scanner.Scan() {
		token := scanner.Text()

		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return count, fmt.Errorf("%w: token %q", ErrInvalidInput, token)
		}

		set.Update(value)
		count++
	}

	err := scanner.Err()
	if err != nil {
		return count, fmt.Errorf("read input: %w", err)
	}

	return count, nil
}
