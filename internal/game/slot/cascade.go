package slot

// cascadeOutcome is the result of running one full cascade to completion,
// shared by both the base game and each individual free spin since the
// loop body is otherwise identical.
type cascadeOutcome struct {
	steps         []CascadeStepResult
	win           float64
	maxWinHit     bool
	ewCollected   int
	scatterCounts []int
}

// runCascade plays one cascade run: refill, detect clusters, pay and
// remove them, spawn wilds, apply gravity, and repeat until a refill
// produces no clusters and no explosion fires. winBudget caps the total
// win this call may return; hitting it truncates the final step's
// payout and stops the cascade immediately, per the max-win invariant.
func runCascade(cfg *Config, rng *RNG, symbols []Symbol, weights []float64, trail *MultiplierTrail, baseBet float64, winBudget float64) cascadeOutcome {
	grid := NewEmptyGrid()
	tracker := NewExplosionTracker()

	var steps []CascadeStepResult
	var scatterCounts []int
	win := 0.0
	maxWinHit := false
	stepNum := 0

	for {
		stepNum++
		grid.Refill(symbols, weights, rng)
		tracker.TrackLanded(grid)

		scatterCount := grid.Count(SymbolScatter)
		scatterCounts = append(scatterCounts, scatterCount)
		step := CascadeStepResult{StepNumber: stepNum, ScatterCount: scatterCount}

		clusters := DetectClusters(grid)
		if len(clusters) > 0 {
			tracker.TrackClusterEWs(clusters, grid)

			var removeAll []Position
			for _, cl := range clusters {
				payout := cfg.PayoutMultiple(cl.Symbol, cl.Size()) * baseBet * float64(trail.Current())
				win += payout
				step.ClustersWon = append(step.ClustersWon, ClusterWinRecord{
					Symbol: cl.Symbol,
					Size:   cl.Size(),
					Payout: payout,
				})
				removeAll = append(removeAll, cl.Positions...)
			}
			step.MultiplierApplied = trail.Current()

			if win >= winBudget {
				win = winBudget
				maxWinHit = true
				steps = append(steps, step)
				break
			}

			grid.Remove(removeAll)
			footprints := ClusterFootprints(clusters)
			spawnResults := SpawnWilds(grid, footprints, rng, cfg.WildSpawnWeights())
			step.SpawnResults = spawnResults
			// Track each spawned EW at the cell gravity is about to move it
			// to, so the next refill still recognises it as spawned.
			for _, p := range ApplySpawns(grid, spawnResults) {
				drop := 0
				for r := p.Row + 1; r < GridRows; r++ {
					if grid.At(Position{Row: r, Col: p.Col}) == SymbolEmpty {
						drop++
					}
				}
				tracker.TrackSpawned(Position{Row: p.Row + drop, Col: p.Col})
			}
			grid.ApplyGravity()
			trail.Advance()
			steps = append(steps, step)
			continue
		}

		if tracker.ShouldCheckExplosions(clusters) {
			event := tracker.ExecuteExplosions(grid)
			step.ExplosionOccurred = event.Occurred
			step.ExplosionDestroyed = event.Destroyed
			if event.Occurred {
				grid.ApplyGravity()
				trail.Advance()
				step.MultiplierApplied = trail.Current()
				steps = append(steps, step)
				continue
			}
		}

		steps = append(steps, step)
		break
	}

	return cascadeOutcome{
		steps:         steps,
		win:           win,
		maxWinHit:     maxWinHit,
		ewCollected:   tracker.EWCollectedCount(),
		scatterCounts: scatterCounts,
	}
}
