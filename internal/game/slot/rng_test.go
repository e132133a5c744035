package slot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRNGIsDeterministicForSameSeed(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Bounded(1000), b.Bounded(1000))
	}
}

func TestWeightedRespectsZeroWeightEntries(t *testing.T) {
	rng := NewRNG(7)
	weights := []float64{0, 1, 0}
	for i := 0; i < 100; i++ {
		require.Equal(t, 1, rng.Weighted(weights))
	}
}

func TestWeightedPanicsOnNonPositiveTotal(t *testing.T) {
	rng := NewRNG(1)
	require.Panics(t, func() { rng.Weighted([]float64{0, 0, 0}) })
}

func TestBoundedPanicsOnNonPositiveN(t *testing.T) {
	rng := NewRNG(1)
	require.Panics(t, func() { rng.Bounded(0) })
}
