package slot

// DefaultConfig builds the reference Config described by the external
// weight-table and paytable contract. It panics on validation failure
// because these tables are fixed at compile time — any failure here is
// a programming error, not a runtime condition, mirroring the teacher's
// GetDefaultConfig() pattern of a no-error default constructor.
func DefaultConfig() *Config {
	cfg, err := NewConfig(
		defaultBaseGameWeights(),
		defaultFreeSpinsWeights(),
		defaultPayTable(),
		7500,
		0.5, 0.5,
		map[int]float64{3: 2, 4: 10, 5: 25},
		[6]int{1, 2, 4, 8, 16, 32},
		[6]int{1, 2, 4, 8, 16, 32},
		defaultBetPlusModifiers(),
		75,
	)
	if err != nil {
		panic("slot: default config failed validation: " + err.Error())
	}
	return cfg
}

func defaultBaseGameWeights() map[Symbol]float64 {
	return map[Symbol]float64{
		SymbolLady:    3,
		SymbolPink:    14,
		SymbolGreen:   16,
		SymbolBlue:    18,
		SymbolOrange:  20,
		SymbolCyan:    22,
		SymbolWild:    12,
		SymbolEWild:   8,
		SymbolScatter: 7,
	}
}

// defaultFreeSpinsWeights enriches WILD ~1.5x and E_WILD ~2x relative to
// the base game while keeping every weight positive, per the supplement
// in SPEC_FULL.md §6.
func defaultFreeSpinsWeights() map[Symbol]float64 {
	return map[Symbol]float64{
		SymbolLady:    3,
		SymbolPink:    11,
		SymbolGreen:   12,
		SymbolBlue:    13,
		SymbolOrange:  14,
		SymbolCyan:    15,
		SymbolWild:    18,
		SymbolEWild:   16,
		SymbolScatter: 8,
	}
}

func defaultPayTable() map[Symbol][clusterSizeSlots]float64 {
	return map[Symbol][clusterSizeSlots]float64{
		SymbolLady:   {4, 6, 9, 13, 18, 25, 35, 50, 70, 100, 150},
		SymbolPink:   {1.0, 1.5, 2.2, 3.0, 4.0, 5.5, 7.5, 10, 14, 20, 30},
		SymbolGreen:  {0.9, 1.3, 1.9, 2.6, 3.4, 4.6, 6.2, 8.3, 11.5, 16, 24},
		SymbolBlue:   {0.8, 1.1, 1.6, 2.2, 2.9, 3.9, 5.2, 7.0, 9.7, 13.5, 20},
		SymbolOrange: {0.7, 1.0, 1.4, 1.9, 2.5, 3.3, 4.4, 5.9, 8.2, 11.4, 17},
		SymbolCyan:   {0.6, 0.8, 1.1, 1.5, 2.0, 2.6, 3.5, 4.7, 6.5, 9.0, 13.5},
	}
}

func defaultBetPlusModifiers() map[BetPlusModifier]BetPlusSetting {
	return map[BetPlusModifier]BetPlusSetting{
		BetPlusNone: {ChargeMultiplier: 1.0, ScatterWeightBoost: 0},
		BetPlusX1_5: {ChargeMultiplier: 1.5, ScatterWeightBoost: 2},
		BetPlusX2:   {ChargeMultiplier: 2.0, ScatterWeightBoost: 4},
		BetPlusX3:   {ChargeMultiplier: 3.0, ScatterWeightBoost: 7},
	}
}
