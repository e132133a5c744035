package slot

import (
	"fmt"

	apperrors "github.com/clustercascade/simcore/internal/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoundEngine ties the grid, cluster detector, wild spawner, explosion
// tracker, multiplier trail, and free-spins session into the full round
// state machine. It is stateless across rounds; all per-round state lives
// in the locals of PlayRound, so a single engine is safely reused by every
// worker as long as each worker owns its own *RNG.
type RoundEngine struct {
	cfg    *Config
	logger *zap.Logger
}

func NewRoundEngine(cfg *Config, logger *zap.Logger) *RoundEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoundEngine{cfg: cfg, logger: logger}
}

// PlayRound resolves one round to completion: base game cascade (or a
// feature-buy session in place of it), scatter-triggered or bought free
// spins, and the max-win cap applied cumulatively across all of it.
func (e *RoundEngine) PlayRound(rng *RNG, opts RoundOptions) (*RoundResult, error) {
	if err := validateRoundOptions(e.cfg, opts); err != nil {
		return nil, err
	}

	setting := e.cfg.BetPlusModifiers[opts.BetPlus]
	result := &RoundResult{
		RoundID:    uuid.New().String(),
		ChargedBet: opts.BaseBet * setting.ChargeMultiplier,
	}

	if opts.Mode == ModeFeatureBuy {
		result.FeatureBuyCostCharged = e.cfg.FeatureBuyCost * opts.BaseBet
		state := newFreeSpinsStateFromFeatureBuy()
		fsResult := e.runFreeSpins(rng, opts, state, 0)
		result.FreeSpinSession = fsResult
		result.TotalWinUnits = fsResult.SessionWin
		result.MaxWinHit = fsResult.MaxWinHit
		e.logger.Debug("round_complete", zap.String("round_id", result.RoundID), zap.String("mode", string(opts.Mode)), zap.Float64("total_win", result.TotalWinUnits))
		return result, nil
	}

	maxWinAmount := e.cfg.MaxWinMultiple * opts.BaseBet
	symbols, weights := e.cfg.WeightsForBetPlus(opts.BetPlus)
	trail := NewMultiplierTrail(e.cfg.BaseGameTrail)

	outcome := runCascade(e.cfg, rng, symbols, weights, trail, opts.BaseBet, maxWinAmount)
	result.Cascades = outcome.steps
	result.TotalWinUnits = outcome.win
	result.MaxWinHit = outcome.maxWinHit

	if !result.MaxWinHit {
		// The trigger count is frozen at the first refill that reaches
		// >=3 scatters; later refills within the same cascade run are
		// not re-counted even if they land more scatters.
		scatterTriggerCount := 0
		for _, sc := range outcome.scatterCounts {
			if sc >= 3 {
				scatterTriggerCount = sc
				break
			}
		}

		if scatterTriggerCount >= 3 {
			award := e.cfg.scatterAwardFor(scatterTriggerCount) * opts.BaseBet
			if result.TotalWinUnits+award >= maxWinAmount {
				award = maxWinAmount - result.TotalWinUnits
				result.MaxWinHit = true
			}
			result.ScatterAward = award
			result.TotalWinUnits += award
		}

		// Max-win hit on the scatter award itself cancels the free spins
		// entry entirely, same as a cascade-driven cap hit: no pending
		// feature survives a capped round.
		if !result.MaxWinHit && scatterTriggerCount >= 3 {
			state := newFreeSpinsStateFromTrigger(scatterTriggerCount)
			fsResult := e.runFreeSpins(rng, opts, state, result.TotalWinUnits)
			result.FreeSpinSession = fsResult
			result.TotalWinUnits = fsResult.SessionWin
			if fsResult.MaxWinHit {
				result.MaxWinHit = true
			}
		}
	}

	e.logger.Debug("round_complete",
		zap.String("round_id", result.RoundID),
		zap.String("mode", string(opts.Mode)),
		zap.Float64("total_win", result.TotalWinUnits),
		zap.Bool("max_win_hit", result.MaxWinHit),
	)
	return result, nil
}

func validateRoundOptions(cfg *Config, opts RoundOptions) error {
	if opts.Mode != ModeBaseGame && opts.Mode != ModeFeatureBuy {
		return apperrors.New(apperrors.ErrRoundOption, fmt.Sprintf("unknown mode %q", opts.Mode))
	}
	if opts.BaseBet <= 0 {
		return apperrors.New(apperrors.ErrRoundOption, "base bet must be positive")
	}
	if _, ok := cfg.BetPlusModifiers[opts.BetPlus]; !ok {
		return apperrors.New(apperrors.ErrRoundOption, fmt.Sprintf("unknown bet-plus modifier %q", opts.BetPlus))
	}
	return nil
}

// scatterAwardFor clamps count to the table's open-ended "5 or more" key.
func (c *Config) scatterAwardFor(count int) float64 {
	if count > 5 {
		count = 5
	}
	return c.ScatterAward[count]
}
