package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	for i := 0; i < 16; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.Equal(t, uint64(4711), a.Seed())
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(7)
	first := []int{rng.IntN(100), rng.IntN(100), rng.IntN(100)}

	rng.Reset()
	again := []int{rng.IntN(100), rng.IntN(100), rng.IntN(100)}

	assert.Equal(t, first, again)
}

func TestRNG_Float64Range(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 100; i++ {
		f := rng.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestRNG_Records(t *testing.T) {
	rng := NewRNG(42)
	recs := rng.Records("r", 5, "a", "b")

	require.Len(t, recs, 5)
	assert.Equal(t, "r-0", recs[0].ID)
	assert.Equal(t, "r-4", recs[4].ID)
	assert.Equal(t, "a", recs[0].Group)
	assert.Equal(t, "b", recs[1].Group)
	assert.Equal(t, "a", recs[2].Group)
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.Value, 0.0)
		assert.Less(t, r.Value, 100.0)
	}

	assert.Empty(t, rng.Records("x", 1)[0].Group)
}

func TestRNG_Shuffle(t *testing.T) {
	rng := NewRNG(3)
	s := []int{1, 2, 3, 4, 5}
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, s)
}
