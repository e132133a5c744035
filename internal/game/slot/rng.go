package slot

import "math/rand"

// RNG is the single randomness source for a round. Every call site that
// consumes randomness anywhere in the core must go through an RNG value;
// nothing else in this package may read from a package-level or
// time-seeded source.
//
// Implementations must be reproducible: identical seed plus identical
// call sequence yields identical results on any platform. This
// implementation pins math/rand's default algorithm via a caller-owned
// *rand.Rand, seeded explicitly by the caller rather than time.Now(), so
// replaying a round only requires the seed and the option set.
type RNG struct {
	r *rand.Rand
}

// NewRNG builds a deterministic RNG from a 64-bit seed. The batch driver
// seeds worker w with baseSeed+w, so its results are reproducible
// independent of scheduling order for a fixed worker count; a different
// worker count yields a different set of seeded streams.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(int64(seed)))}
}

// Uniform returns a float64 in [0, 1).
func (g *RNG) Uniform() float64 {
	return g.r.Float64()
}

// Bounded returns an integer in [0, n). Panics if n <= 0; callers own
// the invariant that n is always positive at the call site.
func (g *RNG) Bounded(n int) int {
	if n <= 0 {
		panic("slot: RNG.Bounded requires n > 0")
	}
	return g.r.Intn(n)
}

// Weighted returns an index into weights chosen proportionally to its
// weight. weights must be non-empty with a positive sum; callers
// (Config validation, spawn probability tables) guarantee this
// up front so the hot path never has to branch on it.
func (g *RNG) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic("slot: RNG.Weighted requires a positive weight sum")
	}
	target := g.Uniform() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
