package slot

// FreeSpinsState is the persistent state carried across the spins of one
// free-spins session: remaining spins, the accumulated base-level
// upgrades, and the running EW tally that feeds them.
type FreeSpinsState struct {
	SpinsRemaining int
	BaseLevelIndex int // 0..5, indexing {1,2,4,8,16,32}

	// EWCollectedRemainder is the unspent progress toward the next
	// upgrade (0..ewPerUpgrade-1); it folds back to 0 on every upgrade.
	EWCollectedRemainder int
	// EWCollectedCumulative is the session-lifetime EW count. It only
	// ever increases, independent of how many upgrades have been folded
	// out of EWCollectedRemainder.
	EWCollectedCumulative int
	PendingUpgrades       int
}

const maxBaseLevelIndex = 5
const ewPerUpgrade = 3

// newFreeSpinsStateFromTrigger starts a session with the spin count a
// base-game scatter trigger awards for the given landed scatter count.
func newFreeSpinsStateFromTrigger(scatterCount int) *FreeSpinsState {
	return &FreeSpinsState{SpinsRemaining: freeSpinsAward(scatterCount)}
}

// newFreeSpinsStateFromFeatureBuy starts a session the way a direct
// feature-buy purchase does: a flat 10 spins, base level untouched.
func newFreeSpinsStateFromFeatureBuy() *FreeSpinsState {
	return &FreeSpinsState{SpinsRemaining: 10}
}

// freeSpinsAward maps a base-game scatter trigger count to its initial
// spin award: 3->10, 4->12, and two additional spins per scatter beyond 4.
func freeSpinsAward(count int) int {
	switch {
	case count < 3:
		return 0
	case count == 3:
		return 10
	case count == 4:
		return 12
	default:
		return 12 + (count-4)*2
	}
}

// retriggerAward maps an in-free-spins scatter landing count to the extra
// spins it awards: 2->3, 3->5, 4->7, and two more per scatter beyond 4.
func retriggerAward(count int) int {
	switch {
	case count < 2:
		return 0
	case count == 2:
		return 3
	case count == 3:
		return 5
	case count == 4:
		return 7
	default:
		return 7 + (count-4)*2
	}
}

// collectEWs folds newly collected EWs into the remainder and queues one
// pending upgrade for every ewPerUpgrade collected, while the cumulative
// count keeps accumulating untouched. Upgrades are applied only at the
// next spin boundary, never mid-spin.
func (s *FreeSpinsState) collectEWs(n int) {
	s.EWCollectedCumulative += n
	s.EWCollectedRemainder += n
	for s.EWCollectedRemainder >= ewPerUpgrade {
		s.EWCollectedRemainder -= ewPerUpgrade
		s.PendingUpgrades++
	}
}

// applyPendingUpgrades consumes every queued upgrade: each raises the
// base level by one (saturating at maxBaseLevelIndex) and awards one
// extra spin, per the persistent-upgrade supplement.
func (s *FreeSpinsState) applyPendingUpgrades() int {
	applied := s.PendingUpgrades
	for i := 0; i < applied; i++ {
		if s.BaseLevelIndex < maxBaseLevelIndex {
			s.BaseLevelIndex++
		}
		s.SpinsRemaining++
	}
	s.PendingUpgrades = 0
	return applied
}

func (s *FreeSpinsState) level() int {
	return 1 << s.BaseLevelIndex
}

// runFreeSpins plays a session to completion: apply pending upgrades,
// play the spin's cascade, fold EWs collected back into the state, and
// repeat while spins remain and the session win budget isn't exhausted.
// carryover is the win already booked before entering free spins (the
// scatter award plus any base-game cascade win), since the max-win cap
// applies cumulatively across the whole round.
func (e *RoundEngine) runFreeSpins(rng *RNG, opts RoundOptions, state *FreeSpinsState, carryover float64) *FreeSpinsResult {
	cfg := e.cfg
	maxWinAmount := cfg.MaxWinMultiple * opts.BaseBet
	symbols, weights := cfg.WeightsFor(true)

	result := &FreeSpinsResult{TotalSpinsAwarded: state.SpinsRemaining}
	sessionWin := carryover
	spinNum := 0

	for state.SpinsRemaining > 0 {
		spinNum++
		state.SpinsRemaining--
		upgradesApplied := state.applyPendingUpgrades()

		trail := NewMultiplierTrail(freeSpinsTrail(cfg.FreeSpinsTrailUnit, state.level()))
		budget := maxWinAmount - sessionWin
		outcome := runCascade(cfg, rng, symbols, weights, trail, opts.BaseBet, budget)

		retriggerSpins := 0
		for i, sc := range outcome.scatterCounts {
			if award := retriggerAward(sc); award > 0 {
				state.SpinsRemaining += award
				retriggerSpins += award
				outcome.steps[i].RetriggerSpinsAwarded = award
			}
		}
		result.TotalSpinsAwarded += retriggerSpins

		state.collectEWs(outcome.ewCollected)
		sessionWin += outcome.win

		result.Records = append(result.Records, FreeSpinRecord{
			SpinNumber:      spinNum,
			BaseLevelIndex:  state.BaseLevelIndex,
			UpgradesApplied: upgradesApplied,
			Steps:           outcome.steps,
			SpinWin:         outcome.win,
		})

		if outcome.maxWinHit {
			result.MaxWinHit = true
			state.PendingUpgrades = 0
			state.SpinsRemaining = 0
			break
		}
	}

	result.SpinsPlayed = spinNum
	result.EWCollectedTotal = state.EWCollectedCumulative
	result.SessionWin = sessionWin
	result.FinalBaseLevelIndex = state.BaseLevelIndex
	return result
}
