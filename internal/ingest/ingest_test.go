package ingest_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/descstat/internal/ingest"
	"github.com/Sumatoshi-tech/descstat/pkg/stat"
)

func TestConsume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		expectedCount int
		expectedMean  float64
	}{
		{name: "space_separated", input: "1 2 3 4 5", expectedCount: 5, expectedMean: 3},
		{name: "mixed_whitespace", input: "1\t2\n3  4\r\n5", expectedCount: 5, expectedMean: 3},
		{name: "single_value", input: "42", expectedCount: 1, expectedMean: 42},
		{name: "scientific_notation", input: "1e2 2e2", expectedCount: 2, expectedMean: 150},
		{name: "negative_values", input: "-1 1", expectedCount: 2, expectedMean: 0},
		{name: "trailing_newline", input: "7\n", expectedCount: 1, expectedMean: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := stat.Default()

			count, err := ingest.Consume(strings.NewReader(tt.input), set)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedCount, count)
			assert.InDelta(t, tt.expectedMean, set[2].Result(), 1e-12)
		})
	}
}

func TestConsumeEmptyInput(t *testing.T) {
	t.Parallel()

	set := stat.Default()

	count, err := ingest.Consume(strings.NewReader(""), set)
	require.NoError(t, err)

	assert.Zero(t, count)
	assert.True(t, math.IsNaN(set[2].Result()))
}

func TestConsumeMalformedToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		expectedCount int
	}{
		{name: "word_after_numbers", input: "1 2 three", expectedCount: 2},
		{name: "first_token_bad", input: "abc 1 2", expectedCount: 0},
		{name: "glued_tokens", input: "1 2x 3", expectedCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := stat.Default()

			count, err := ingest.Consume(strings.NewReader(tt.input), set)
			require.Error(t, err)

			assert.ErrorIs(t, err, ingest.ErrInvalidInput)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}

// The offending token must not reach any accumulator, and tokens after it
// must not be read at all.
func TestConsumeStopsAtBadToken(t *testing.T) {
	t.Parallel()

	set := stat.Default()

	_, err := ingest.Consume(strings.NewReader("1 2 nope 100"), set)
	require.ErrorIs(t, err, ingest.ErrInvalidInput)

	assert.InDelta(t, 2, set[1].Result(), 1e-12)
	assert.InDelta(t, 1.5, set[2].Result(), 1e-12)
}

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) {
	return 0, errors.New("disk unplugged")
}

func TestConsumeReaderError(t *testing.T) {
	t.Parallel()

	set := stat.Default()

	count, err := ingest.Consume(failingReader{}, set)
	require.Error(t, err)

	assert.NotErrorIs(t, err, ingest.ErrInvalidInput)
	assert.Zero(t, count)
}
