package slot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validPayTable() map[Symbol][clusterSizeSlots]float64 {
	return map[Symbol][clusterSizeSlots]float64{
		SymbolLady:   {4, 6, 9, 13, 18, 25, 35, 50, 70, 100, 150},
		SymbolPink:   {1, 1.5, 2.2, 3, 4, 5.5, 7.5, 10, 14, 20, 30},
		SymbolGreen:  {0.9, 1.3, 1.9, 2.6, 3.4, 4.6, 6.2, 8.3, 11.5, 16, 24},
		SymbolBlue:   {0.8, 1.1, 1.6, 2.2, 2.9, 3.9, 5.2, 7, 9.7, 13.5, 20},
		SymbolOrange: {0.7, 1, 1.4, 1.9, 2.5, 3.3, 4.4, 5.9, 8.2, 11.4, 17},
		SymbolCyan:   {0.6, 0.8, 1.1, 1.5, 2, 2.6, 3.5, 4.7, 6.5, 9, 13.5},
	}
}

func TestDefaultConfigDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() { DefaultConfig() })
}

func TestNewConfigRejectsMismatchedWeightKeySets(t *testing.T) {
	base := defaultBaseGameWeights()
	fs := defaultFreeSpinsWeights()
	delete(fs, SymbolScatter)
	_, err := NewConfig(base, fs, validPayTable(), 7500, 0.5, 0.5, map[int]float64{3: 2, 4: 10, 5: 25}, [6]int{1, 2, 4, 8, 16, 32}, [6]int{1, 2, 4, 8, 16, 32}, defaultBetPlusModifiers(), 75)
	require.Error(t, err)
}

func TestNewConfigRejectsNonPositiveWeight(t *testing.T) {
	base := defaultBaseGameWeights()
	base[SymbolLady] = 0
	_, err := NewConfig(base, defaultFreeSpinsWeights(), validPayTable(), 7500, 0.5, 0.5, map[int]float64{3: 2, 4: 10, 5: 25}, [6]int{1, 2, 4, 8, 16, 32}, [6]int{1, 2, 4, 8, 16, 32}, defaultBetPlusModifiers(), 75)
	require.Error(t, err)
}

func TestNewConfigRejectsNonMonotonicPayTable(t *testing.T) {
	pt := validPayTable()
	row := pt[SymbolPink]
	row[5] = row[4] - 1
	pt[SymbolPink] = row
	_, err := NewConfig(defaultBaseGameWeights(), defaultFreeSpinsWeights(), pt, 7500, 0.5, 0.5, map[int]float64{3: 2, 4: 10, 5: 25}, [6]int{1, 2, 4, 8, 16, 32}, [6]int{1, 2, 4, 8, 16, 32}, defaultBetPlusModifiers(), 75)
	require.Error(t, err)
}

func TestNewConfigRejectsLadyNotStrictlyHighest(t *testing.T) {
	pt := validPayTable()
	row := pt[SymbolLady]
	row[0] = 0.5
	pt[SymbolLady] = row
	_, err := NewConfig(defaultBaseGameWeights(), defaultFreeSpinsWeights(), pt, 7500, 0.5, 0.5, map[int]float64{3: 2, 4: 10, 5: 25}, [6]int{1, 2, 4, 8, 16, 32}, [6]int{1, 2, 4, 8, 16, 32}, defaultBetPlusModifiers(), 75)
	require.Error(t, err)
}

func TestNewConfigRejectsWildSpawnProbabilitiesNotSummingToOne(t *testing.T) {
	_, err := NewConfig(defaultBaseGameWeights(), defaultFreeSpinsWeights(), validPayTable(), 7500, 0.5, 0.6, map[int]float64{3: 2, 4: 10, 5: 25}, [6]int{1, 2, 4, 8, 16, 32}, [6]int{1, 2, 4, 8, 16, 32}, defaultBetPlusModifiers(), 75)
	require.Error(t, err)
}

func TestPayoutMultipleClampsSize(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, cfg.PayoutMultiple(SymbolLady, 5), cfg.PayoutMultiple(SymbolLady, 3))
	require.Equal(t, cfg.PayoutMultiple(SymbolLady, 15), cfg.PayoutMultiple(SymbolLady, 25))
}

func TestWeightsForBetPlusBoostsScatterWeightOnly(t *testing.T) {
	cfg := DefaultConfig()
	symbols, base := cfg.WeightsFor(false)
	_, boosted := cfg.WeightsForBetPlus(BetPlusX2)
	for i, s := range symbols {
		if s == SymbolScatter {
			require.Greater(t, boosted[i], base[i])
		} else {
			require.Equal(t, base[i], boosted[i])
		}
	}
}
