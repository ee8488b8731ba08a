package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndSortBySNRDescending(t *testing.T) {
	t.Parallel()

	var c Collection
	c.Append([]Candidate{
		{Frequency: 10, SNR: 5},
		{Frequency: 20, SNR: 12},
		{Frequency: 30, SNR: 8},
	})

	require.Len(t, c.Cands, 3)

	c.SortBySNRDescending()

	require.Equal(t, 12.0, c.Cands[0].SNR)
	assert.Equal(t, 8.0, c.Cands[1].SNR)
	assert.Equal(t, 5.0, c.Cands[2].SNR)
}

func TestAppendPreservesScoresNil(t *testing.T) {
	t.Parallel()

	var c Collection
	c.Append([]Candidate{{Frequency: 1, SNR: 1}})

	require.NotEmpty(t, c.Cands)
	assert.Nil(t, c.Cands[0].Scores)
}
