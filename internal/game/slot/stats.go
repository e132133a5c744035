package slot

// RoundSummary is the minimal per-round data a stats report needs,
// decoupled from RoundResult so a batch driver can stream summaries
// without retaining every cascade step in memory.
type RoundSummary struct {
	BaseBet        float64
	TotalWinUnits  float64
	MaxWinHit      bool
	HitFreeSpins   bool
	FeatureBuyCost float64
}

// Report is a stateless, post-hoc aggregation over a batch of rounds. It
// never feeds back into RNG draws or payout decisions; it exists purely
// to describe what already happened, the way a ledger describes trades
// it didn't place.
type Report struct {
	Rounds          int64
	TotalWagered    float64
	TotalWon        float64
	MaxWinHits      int64
	FreeSpinsHits   int64
	HighestRoundWin float64
}

// NewReport returns an empty accumulator.
func NewReport() *Report {
	return &Report{}
}

// Add folds one round's summary into the report. Safe to call only from
// a single goroutine; batch drivers merge per-worker reports with Merge
// instead of sharing one Report across workers.
func (r *Report) Add(s RoundSummary) {
	r.Rounds++
	r.TotalWagered += s.BaseBet + s.FeatureBuyCost
	r.TotalWon += s.TotalWinUnits
	if s.MaxWinHit {
		r.MaxWinHits++
	}
	if s.HitFreeSpins {
		r.FreeSpinsHits++
	}
	if s.TotalWinUnits > r.HighestRoundWin {
		r.HighestRoundWin = s.TotalWinUnits
	}
}

// Merge combines another report's totals into r, used to reduce one
// report per worker into a single batch-level report.
func (r *Report) Merge(other *Report) {
	r.Rounds += other.Rounds
	r.TotalWagered += other.TotalWagered
	r.TotalWon += other.TotalWon
	r.MaxWinHits += other.MaxWinHits
	r.FreeSpinsHits += other.FreeSpinsHits
	if other.HighestRoundWin > r.HighestRoundWin {
		r.HighestRoundWin = other.HighestRoundWin
	}
}

// RTP returns the observed return-to-player ratio: total paid out over
// total wagered. Returns 0 if nothing was wagered yet.
func (r *Report) RTP() float64 {
	if r.TotalWagered == 0 {
		return 0
	}
	return r.TotalWon / r.TotalWagered
}

// FreeSpinsFrequency and MaxWinFrequency are the two per-round rates
// this report tracks precisely; overall hit frequency (any win > 0) is
// not tracked since RoundSummary doesn't retain that detail.
func (r *Report) FreeSpinsFrequency() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.FreeSpinsHits) / float64(r.Rounds)
}

func (r *Report) MaxWinFrequency() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.MaxWinHits) / float64(r.Rounds)
}

// SummarizeResult converts a full RoundResult into the slim RoundSummary
// a Report consumes.
func SummarizeResult(res *RoundResult, opts RoundOptions) RoundSummary {
	return RoundSummary{
		BaseBet:        opts.BaseBet,
		TotalWinUnits:  res.TotalWinUnits,
		MaxWinHit:      res.MaxWinHit,
		HitFreeSpins:   res.FreeSpinSession != nil,
		FeatureBuyCost: res.FeatureBuyCostCharged,
	}
}
