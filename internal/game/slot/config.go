package slot

import (
	"fmt"

	apperrors "github.com/clustercascade/simcore/internal/errors"
)

// BetPlusModifier selects a charged-bet multiplier that also reshapes the
// scatter weight used during the base game, per the feature-buy/bet-plus
// supplement.
type BetPlusModifier string

const (
	BetPlusNone BetPlusModifier = ""
	BetPlusX1_5 BetPlusModifier = "x1_5"
	BetPlusX2   BetPlusModifier = "x2"
	BetPlusX3   BetPlusModifier = "x3"
)

// BetPlusSetting is the charge multiplier and scatter-weight boost a
// bet-plus modifier applies to the base-game weight table for that round.
type BetPlusSetting struct {
	ChargeMultiplier   float64
	ScatterWeightBoost float64 // additive weight added to SCATTER before normalization
}

// clusterSizeSlots is the number of distinct paytable entries per paying
// symbol: cluster sizes 5..15, with 15 acting as the open-ended cap.
const clusterSizeSlots = 11 // sizes 5..15 inclusive

const minClusterSize = 5
const maxClusterSizeSlot = 15

// Config is the immutable snapshot every round reads from. It is
// constructed once (via NewConfig, which validates it) and shared by
// reference across rounds and, per the parallel-determinism policy,
// across concurrent workers in a batch run.
type Config struct {
	weightsBaseGame  map[Symbol]float64
	weightsFreeSpins map[Symbol]float64

	// symbolOrder/baseGameWeights/freeSpinsWeights are a precomputed,
	// deterministically-ordered view of the two weight maps above so
	// RNG.Weighted always consumes the same index ordering regardless
	// of Go's randomized map iteration.
	symbolOrder      []Symbol
	baseGameWeights  []float64
	freeSpinsWeights []float64

	payTable map[Symbol][clusterSizeSlots]float64

	MaxWinMultiple float64

	// wildSpawnWeights: index 0 is WILD, index 1 is E_WILD.
	wildSpawnWeights [2]float64

	// ScatterAward maps scatter count (3, 4, or 5 for "5 or more") to a
	// flat award expressed as a multiple of the base bet.
	ScatterAward map[int]float64

	// BaseGameTrail and FreeSpinsTrailUnit are the six-entry multiplier
	// trails described in the data model; free spins derive their
	// effective trail by scaling FreeSpinsTrailUnit by the session's
	// current base level.
	BaseGameTrail      [6]int
	FreeSpinsTrailUnit [6]int

	BetPlusModifiers map[BetPlusModifier]BetPlusSetting

	FeatureBuyCost float64
}

// NewConfig validates and wraps the supplied tables into an immutable
// Config. Any violation is a ConfigError, fatal before any round runs.
func NewConfig(
	weightsBaseGame, weightsFreeSpins map[Symbol]float64,
	payTable map[Symbol][clusterSizeSlots]float64,
	maxWinMultiple float64,
	wildSpawnProbWild, wildSpawnProbEWild float64,
	scatterAward map[int]float64,
	baseGameTrail, freeSpinsTrailUnit [6]int,
	betPlusModifiers map[BetPlusModifier]BetPlusSetting,
	featureBuyCost float64,
) (*Config, error) {
	if err := validateWeightSet(weightsBaseGame, "base game"); err != nil {
		return nil, err
	}
	if err := validateWeightSet(weightsFreeSpins, "free spins"); err != nil {
		return nil, err
	}
	if len(weightsBaseGame) != len(weightsFreeSpins) {
		return nil, apperrors.New(apperrors.ErrConfigInvalid, "base game and free spins weight tables must share the same symbol key set")
	}
	for sym := range weightsBaseGame {
		if _, ok := weightsFreeSpins[sym]; !ok {
			return nil, apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("symbol %s missing from free spins weight table", sym))
		}
	}

	if err := validatePayTable(payTable); err != nil {
		return nil, err
	}

	if wildSpawnProbWild < 0 || wildSpawnProbEWild < 0 {
		return nil, apperrors.New(apperrors.ErrConfigInvalid, "wild spawn probabilities must be non-negative")
	}
	if sum := wildSpawnProbWild + wildSpawnProbEWild; sum <= 0 || (sum < 0.999999 || sum > 1.000001) {
		return nil, apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("wild spawn probabilities must sum to 1.0, got %f", sum))
	}

	if maxWinMultiple <= 0 {
		return nil, apperrors.New(apperrors.ErrConfigInvalid, "max win multiple must be positive")
	}
	if featureBuyCost < 0 {
		return nil, apperrors.New(apperrors.ErrConfigInvalid, "feature buy cost must be non-negative")
	}

	symbolOrder := make([]Symbol, 0, len(weightsBaseGame))
	for _, s := range AllSymbols {
		if _, ok := weightsBaseGame[s]; ok {
			symbolOrder = append(symbolOrder, s)
		}
	}
	baseGameWeights := make([]float64, len(symbolOrder))
	freeSpinsWeights := make([]float64, len(symbolOrder))
	for i, s := range symbolOrder {
		baseGameWeights[i] = weightsBaseGame[s]
		freeSpinsWeights[i] = weightsFreeSpins[s]
	}

	cfg := &Config{
		weightsBaseGame:    weightsBaseGame,
		weightsFreeSpins:   weightsFreeSpins,
		symbolOrder:        symbolOrder,
		baseGameWeights:    baseGameWeights,
		freeSpinsWeights:   freeSpinsWeights,
		payTable:           payTable,
		MaxWinMultiple:     maxWinMultiple,
		wildSpawnWeights:   [2]float64{wildSpawnProbWild, wildSpawnProbEWild},
		ScatterAward:       scatterAward,
		BaseGameTrail:      baseGameTrail,
		FreeSpinsTrailUnit: freeSpinsTrailUnit,
		BetPlusModifiers:   betPlusModifiers,
		FeatureBuyCost:     featureBuyCost,
	}
	return cfg, nil
}

func validateWeightSet(weights map[Symbol]float64, label string) error {
	if len(weights) == 0 {
		return apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("%s weight table is empty", label))
	}
	for sym, w := range weights {
		if w <= 0 {
			return apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("%s weight for %s must be positive, got %f", label, sym, w))
		}
	}
	return nil
}

func validatePayTable(payTable map[Symbol][clusterSizeSlots]float64) error {
	if len(payTable) == 0 {
		return apperrors.New(apperrors.ErrConfigInvalid, "paytable is empty")
	}
	for _, sym := range AllPayingSymbols {
		row, ok := payTable[sym]
		if !ok {
			return apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("paytable missing entry for paying symbol %s", sym))
		}
		for i := 1; i < clusterSizeSlots; i++ {
			if row[i] < row[i-1] {
				return apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("paytable for %s is not monotonic at size %d", sym, i+minClusterSize))
			}
		}
	}
	lady := payTable[SymbolLady]
	for _, low := range []Symbol{SymbolPink, SymbolGreen, SymbolBlue, SymbolOrange, SymbolCyan} {
		row, ok := payTable[low]
		if !ok {
			continue
		}
		for i := 0; i < clusterSizeSlots; i++ {
			if lady[i] <= row[i] {
				return apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("LADY must pay strictly more than %s at size %d", low, i+minClusterSize))
			}
		}
	}
	return nil
}

// WeightsFor returns the deterministically-ordered symbol list and its
// parallel weight slice for the requested game mode, ready to hand to
// RNG.Weighted.
func (c *Config) WeightsFor(freeSpins bool) ([]Symbol, []float64) {
	if freeSpins {
		return c.symbolOrder, c.freeSpinsWeights
	}
	return c.symbolOrder, c.baseGameWeights
}

// WeightsForBetPlus returns the base-game weights adjusted for a bet-plus
// modifier's scatter boost, renormalized implicitly by RNG.Weighted
// (which operates on raw weight sums, not normalized probabilities).
func (c *Config) WeightsForBetPlus(modifier BetPlusModifier) ([]Symbol, []float64) {
	setting, ok := c.BetPlusModifiers[modifier]
	if !ok || setting.ScatterWeightBoost == 0 {
		return c.symbolOrder, c.baseGameWeights
	}
	boosted := make([]float64, len(c.baseGameWeights))
	copy(boosted, c.baseGameWeights)
	for i, s := range c.symbolOrder {
		if s == SymbolScatter {
			boosted[i] += setting.ScatterWeightBoost
		}
	}
	return c.symbolOrder, boosted
}

// WildSpawnWeights returns the {WILD, E_WILD} spawn weight pair in that
// fixed order, for RNG.Weighted.
func (c *Config) WildSpawnWeights() []float64 {
	return []float64{c.wildSpawnWeights[0], c.wildSpawnWeights[1]}
}

// PayoutMultiple looks up the bet multiple for a paying symbol's cluster
// of the given size, clamping size into [5, 15] per the paytable contract.
func (c *Config) PayoutMultiple(symbol Symbol, size int) float64 {
	if size < minClusterSize {
		size = minClusterSize
	}
	if size > maxClusterSizeSlot {
		size = maxClusterSizeSlot
	}
	row, ok := c.payTable[symbol]
	if !ok {
		return 0
	}
	return row[size-minClusterSize]
}
