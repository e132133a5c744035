package slot

import "sort"

// SpawnResult records what the spawner did for one cluster: either the
// position it wrote a wild to, or a forfeit when the cluster's footprint
// held no empty candidate cell at spawn time.
type SpawnResult struct {
	ClusterIndex int
	Symbol       Symbol // SymbolWild or SymbolEWild; the draw happens even on forfeit
	Position     Position
	Forfeited    bool
}

// SpawnWilds processes clusters in their already-deterministic detection
// order. For each cluster it draws a wild kind unconditionally (so the
// RNG sequence never depends on whether the spawn later succeeds), then
// tries to place it on a cell within the cluster's original footprint
// that is currently EMPTY and that no earlier cluster in this batch has
// already claimed.
func SpawnWilds(g *Grid, footprints [][]Position, rng *RNG, wildSpawnWeights []float64) []SpawnResult {
	claimed := make(map[Position]bool)
	results := make([]SpawnResult, 0, len(footprints))

	for i, footprint := range footprints {
		drawIdx := rng.Weighted(wildSpawnWeights)
		kind := SymbolWild
		if drawIdx == 1 {
			kind = SymbolEWild
		}

		candidates := make([]Position, 0, len(footprint))
		for _, p := range footprint {
			if claimed[p] {
				continue
			}
			if g.At(p) != SymbolEmpty {
				continue
			}
			candidates = append(candidates, p)
		}
		sort.Slice(candidates, func(a, b int) bool { return candidates[a].less(candidates[b]) })

		if len(candidates) == 0 {
			results = append(results, SpawnResult{ClusterIndex: i, Symbol: kind, Forfeited: true})
			continue
		}

		chosen := candidates[rng.Bounded(len(candidates))]
		claimed[chosen] = true
		results = append(results, SpawnResult{ClusterIndex: i, Symbol: kind, Position: chosen})
	}

	return results
}

// ApplySpawns writes every non-forfeited spawn onto g and reports the E_WILD
// positions it wrote, so the caller can feed them into the explosion
// engine's spawned_this_cascade tracking.
func ApplySpawns(g *Grid, results []SpawnResult) (spawnedEWilds []Position) {
	for _, r := range results {
		if r.Forfeited {
			continue
		}
		g.set(r.Position, r.Symbol)
		if r.Symbol == SymbolEWild {
			spawnedEWilds = append(spawnedEWilds, r.Position)
		}
	}
	return spawnedEWilds
}

// ClusterFootprints extracts each cluster's position set, in the same
// order as the clusters slice, for SpawnWilds' footprint argument.
func ClusterFootprints(clusters []Cluster) [][]Position {
	out := make([][]Position, len(clusters))
	for i, c := range clusters {
		out[i] = append([]Position{}, c.Positions...)
	}
	return out
}
