package slot

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/clustercascade/simcore/internal/errors"
	"github.com/spf13/viper"
)

// configOverride is the YAML shape LoadConfig accepts to override any
// subset of the compiled-in weight tables, paytable, and scalar
// parameters. A field or map key left unset in the file keeps whatever
// DefaultConfig would have used for it.
type configOverride struct {
	BaseGameWeights    map[string]float64   `mapstructure:"base_game_weights"`
	FreeSpinsWeights   map[string]float64   `mapstructure:"free_spins_weights"`
	PayTable           map[string][]float64 `mapstructure:"paytable"`
	MaxWinMultiple     float64              `mapstructure:"max_win_multiple"`
	WildSpawnProbWild  float64              `mapstructure:"wild_spawn_prob_wild"`
	WildSpawnProbEWild float64              `mapstructure:"wild_spawn_prob_e_wild"`
	ScatterAward       map[string]float64   `mapstructure:"scatter_award"`
	BaseGameTrail      []int                `mapstructure:"base_game_trail"`
	FreeSpinsTrailUnit []int                `mapstructure:"free_spins_trail_unit"`
	FeatureBuyCost     float64              `mapstructure:"feature_buy_cost"`
}

// LoadConfig builds a Config from DefaultConfig, optionally overlaid with
// a YAML file at path. An empty path returns DefaultConfig() unchanged.
// Every field and map key in the file is optional; anything omitted falls
// back to its compiled-in default.
func LoadConfig(path string) (*Config, error) {
	base := DefaultConfig()
	if path == "" {
		return base, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("reading paytable override %q: %v", path, err))
	}

	var o configOverride
	if err := v.Unmarshal(&o); err != nil {
		return nil, apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("parsing paytable override %q: %v", path, err))
	}

	baseGameWeights, err := overlayWeights(defaultBaseGameWeights(), o.BaseGameWeights, "base_game_weights")
	if err != nil {
		return nil, err
	}
	freeSpinsWeights, err := overlayWeights(defaultFreeSpinsWeights(), o.FreeSpinsWeights, "free_spins_weights")
	if err != nil {
		return nil, err
	}
	payTable, err := overlayPayTable(defaultPayTable(), o.PayTable)
	if err != nil {
		return nil, err
	}

	maxWinMultiple := base.MaxWinMultiple
	if v.IsSet("max_win_multiple") {
		maxWinMultiple = o.MaxWinMultiple
	}
	wildSpawnProbWild := base.wildSpawnWeights[0]
	wildSpawnProbEWild := base.wildSpawnWeights[1]
	if v.IsSet("wild_spawn_prob_wild") {
		wildSpawnProbWild = o.WildSpawnProbWild
	}
	if v.IsSet("wild_spawn_prob_e_wild") {
		wildSpawnProbEWild = o.WildSpawnProbEWild
	}
	featureBuyCost := base.FeatureBuyCost
	if v.IsSet("feature_buy_cost") {
		featureBuyCost = o.FeatureBuyCost
	}

	scatterAward := base.ScatterAward
	if len(o.ScatterAward) > 0 {
		scatterAward = make(map[int]float64, len(base.ScatterAward))
		for k, val := range base.ScatterAward {
			scatterAward[k] = val
		}
		for k, val := range o.ScatterAward {
			count, err := strconv.Atoi(k)
			if err != nil {
				return nil, apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("scatter_award key %q is not an integer", k))
			}
			scatterAward[count] = val
		}
	}

	baseGameTrail := base.BaseGameTrail
	if len(o.BaseGameTrail) > 0 {
		baseGameTrail, err = overlayTrail(o.BaseGameTrail, "base_game_trail")
		if err != nil {
			return nil, err
		}
	}
	freeSpinsTrailUnit := base.FreeSpinsTrailUnit
	if len(o.FreeSpinsTrailUnit) > 0 {
		freeSpinsTrailUnit, err = overlayTrail(o.FreeSpinsTrailUnit, "free_spins_trail_unit")
		if err != nil {
			return nil, err
		}
	}

	return NewConfig(
		baseGameWeights, freeSpinsWeights, payTable,
		maxWinMultiple,
		wildSpawnProbWild, wildSpawnProbEWild,
		scatterAward,
		baseGameTrail, freeSpinsTrailUnit,
		base.BetPlusModifiers,
		featureBuyCost,
	)
}

// overlayWeights copies defaults and replaces only the keys present in
// override, rejecting symbol names the catalog doesn't recognize. Keys
// are matched case-insensitively, since viper lowercases map keys.
func overlayWeights(defaults map[Symbol]float64, override map[string]float64, field string) (map[Symbol]float64, error) {
	out := make(map[Symbol]float64, len(defaults))
	for k, val := range defaults {
		out[k] = val
	}
	for k, val := range override {
		sym := Symbol(strings.ToUpper(k))
		if _, ok := defaults[sym]; !ok {
			return nil, apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("%s: unrecognized symbol %q", field, k))
		}
		out[sym] = val
	}
	return out, nil
}

// overlayPayTable copies defaults and replaces only the paying symbols
// present in override, each row validated against clusterSizeSlots.
func overlayPayTable(defaults map[Symbol][clusterSizeSlots]float64, override map[string][]float64) (map[Symbol][clusterSizeSlots]float64, error) {
	out := make(map[Symbol][clusterSizeSlots]float64, len(defaults))
	for k, val := range defaults {
		out[k] = val
	}
	for k, row := range override {
		sym := Symbol(strings.ToUpper(k))
		if _, ok := defaults[sym]; !ok {
			return nil, apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("paytable: unrecognized symbol %q", k))
		}
		if len(row) != clusterSizeSlots {
			return nil, apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("paytable row for %q has %d entries, want %d", k, len(row), clusterSizeSlots))
		}
		var fixed [clusterSizeSlots]float64
		copy(fixed[:], row)
		out[sym] = fixed
	}
	return out, nil
}

func overlayTrail(values []int, field string) ([6]int, error) {
	var out [6]int
	if len(values) != 6 {
		return out, apperrors.New(apperrors.ErrConfigInvalid, fmt.Sprintf("%s has %d entries, want 6", field, len(values)))
	}
	copy(out[:], values)
	return out, nil
}
