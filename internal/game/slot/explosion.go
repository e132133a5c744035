package slot

import "sort"

// ExplosionTracker carries the three disjoint eligibility sets described
// in the data model across one cascade's steps, plus a running collected
// count. It is reset only at cascade-run boundaries, never between
// individual steps within the same cascade.
type ExplosionTracker struct {
	landedThisDrop     map[Position]bool
	inWinningClusters  map[Position]bool
	spawnedThisCascade map[Position]bool
	ewCollectedCount   int
}

func NewExplosionTracker() *ExplosionTracker {
	return &ExplosionTracker{
		landedThisDrop:     make(map[Position]bool),
		inWinningClusters:  make(map[Position]bool),
		spawnedThisCascade: make(map[Position]bool),
	}
}

// TrackLanded is called once after each refill. It sets landedThisDrop to
// the grid's current E_WILD positions minus anything still marked
// spawnedThisCascade, then clears spawnedThisCascade — this is the exact
// moment a spawned-but-not-yet-eligible EW becomes eligible.
func (t *ExplosionTracker) TrackLanded(g *Grid) {
	landed := make(map[Position]bool)
	for _, p := range g.PositionsOf(SymbolEWild) {
		if t.spawnedThisCascade[p] {
			continue
		}
		landed[p] = true
	}
	t.landedThisDrop = landed
	t.spawnedThisCascade = make(map[Position]bool)
}

// TrackClusterEWs records the E_WILD cells inside winning clusters before
// their footprints are cleared; each one counts as collected exactly
// once and remains eligible to explode even though its cell will become
// SymbolEmpty the moment the cluster is removed.
func (t *ExplosionTracker) TrackClusterEWs(clusters []Cluster, g *Grid) {
	for _, c := range clusters {
		for _, p := range c.Positions {
			if g.At(p) != SymbolEWild {
				continue
			}
			if t.inWinningClusters[p] {
				continue
			}
			t.inWinningClusters[p] = true
			t.ewCollectedCount++
		}
	}
}

// TrackSpawned marks a position as produced by this cascade's wild
// spawner, making it ineligible to explode until the next refill.
func (t *ExplosionTracker) TrackSpawned(p Position) {
	t.spawnedThisCascade[p] = true
}

// ShouldCheckExplosions reports whether explosions should be evaluated:
// only when the most recent cluster detection found nothing, i.e. the
// cascade would otherwise terminate.
func (t *ExplosionTracker) ShouldCheckExplosions(clustersFound []Cluster) bool {
	return len(clustersFound) == 0
}

// ResetCascadeState clears all three sets. runCascade does not call it:
// it builds a fresh tracker for each cascade run (one full spin's cascade
// loop), so the sets are never cleared between steps within a run.
func (t *ExplosionTracker) ResetCascadeState() {
	t.landedThisDrop = make(map[Position]bool)
	t.inWinningClusters = make(map[Position]bool)
	t.spawnedThisCascade = make(map[Position]bool)
}

func (t *ExplosionTracker) EWCollectedCount() int {
	return t.ewCollectedCount
}

// ExplosionEvent describes one execution of ExecuteExplosions.
type ExplosionEvent struct {
	EligibleCenters []Position
	Destroyed       []Position
	Occurred        bool
}

// ExecuteExplosions fires every eligible EW's 3x3 area simultaneously.
// Eligible EWs are those in landedThisDrop or inWinningClusters (the
// latter even though their cell is now empty — the explosion still
// emanates from the remembered position). Only low-pay cells within the
// union of those areas are destroyed; high-pay, wilds, scatters, and
// already-empty cells survive. A surviving EW (one whose own cell is
// live E_WILD and explodes) that was not already counted via
// TrackClusterEWs is counted as collected exactly once.
func (t *ExplosionTracker) ExecuteExplosions(g *Grid) ExplosionEvent {
	eligible := make(map[Position]bool)
	for p := range t.landedThisDrop {
		eligible[p] = true
	}
	for p := range t.inWinningClusters {
		eligible[p] = true
	}

	if len(eligible) == 0 {
		return ExplosionEvent{}
	}

	centers := make([]Position, 0, len(eligible))
	for p := range eligible {
		centers = append(centers, p)
	}
	sortPositions(centers)

	destruction := make(map[Position]bool)
	for _, center := range centers {
		for _, p := range area3x3(center) {
			destruction[p] = true
		}
	}

	var destroyed []Position
	for p := range destruction {
		s := g.At(p)
		if !s.IsLowPay() {
			continue
		}
		destroyed = append(destroyed, p)
	}
	sortPositions(destroyed)

	for _, center := range centers {
		if g.At(center) == SymbolEWild && !t.inWinningClusters[center] {
			t.ewCollectedCount++
		}
	}

	g.Remove(destroyed)

	return ExplosionEvent{
		EligibleCenters: centers,
		Destroyed:       destroyed,
		Occurred:        len(destroyed) > 0,
	}
}

func sortPositions(positions []Position) {
	sort.Slice(positions, func(i, j int) bool { return positions[i].less(positions[j]) })
}
