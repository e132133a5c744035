package slot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpawnWildsForfeitsWhenFootprintFullyClaimed(t *testing.T) {
	g := NewEmptyGrid()
	footprint := []Position{{Row: 0, Col: 0}}
	footprints := [][]Position{footprint, footprint}
	rng := NewRNG(1)

	results := SpawnWilds(g, footprints, rng, []float64{1, 0})
	require.Len(t, results, 2)
	require.False(t, results[0].Forfeited)
	require.True(t, results[1].Forfeited, "second cluster's only candidate was already claimed")
}

func TestSpawnWildsDrawsUnconditionallyEvenOnForfeit(t *testing.T) {
	g := NewEmptyGrid()
	footprints := [][]Position{{}}
	rng := NewRNG(3)
	results := SpawnWilds(g, footprints, rng, []float64{0, 1})
	require.True(t, results[0].Forfeited)
	require.Equal(t, SymbolEWild, results[0].Symbol, "the draw still happens so the RNG sequence is unaffected by the forfeit")
}

func TestSpawnWildsSkipsNonEmptyCandidates(t *testing.T) {
	g := NewEmptyGrid()
	occupied := Position{Row: 0, Col: 0}
	empty := Position{Row: 0, Col: 1}
	g.set(occupied, SymbolLady)
	footprints := [][]Position{{occupied, empty}}
	rng := NewRNG(1)

	results := SpawnWilds(g, footprints, rng, []float64{1, 0})
	require.False(t, results[0].Forfeited)
	require.Equal(t, empty, results[0].Position, "the already-occupied cell must never be chosen")
}

func TestApplySpawnsWritesOnlyNonForfeitedAndReportsEWilds(t *testing.T) {
	g := NewEmptyGrid()
	results := []SpawnResult{
		{Position: Position{Row: 0, Col: 0}, Symbol: SymbolWild},
		{Position: Position{Row: 1, Col: 1}, Symbol: SymbolEWild},
		{Position: Position{Row: 2, Col: 2}, Symbol: SymbolEWild, Forfeited: true},
	}
	ews := ApplySpawns(g, results)
	require.Equal(t, SymbolWild, g.At(Position{Row: 0, Col: 0}))
	require.Equal(t, SymbolEWild, g.At(Position{Row: 1, Col: 1}))
	require.Equal(t, SymbolEmpty, g.At(Position{Row: 2, Col: 2}))
	require.Equal(t, []Position{{Row: 1, Col: 1}}, ews)
}

func TestClusterFootprintsPreservesOrderAndIsIndependentCopy(t *testing.T) {
	clusters := []Cluster{
		{Symbol: SymbolLady, Positions: []Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}},
	}
	footprints := ClusterFootprints(clusters)
	footprints[0][0] = Position{Row: 9, Col: 9}
	require.Equal(t, Position{Row: 0, Col: 0}, clusters[0].Positions[0], "footprint copy must not alias the cluster's own slice")
}
