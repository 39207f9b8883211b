// Package sampler draws one item from a list of positively weighted items.
package sampler

import (
	"math"
	"math/rand/v2"

	spinerrors "github.com/abatilo/spin/internal/errors"
)

// Sampler performs independent weighted draws. It is not safe for
// concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// New creates a Sampler. A nil seed draws from a randomly seeded source;
// a fixed seed makes every draw reproducible.
func New(seed *uint64) *Sampler {
	if seed == nil {
		return &Sampler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &Sampler{rng: rand.New(rand.NewPCG(*seed, *seed))}
}

// NewWithSource wraps an existing random source.
func NewWithSource(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// Pick returns index i with probability weights[i] / sum(weights).
// Weights do not need to be normalized. Zero weights are allowed but are
// never picked.
func (s *Sampler) Pick(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, spinerrors.NoItemsError{}
	}

	var total float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, spinerrors.InvalidWeightError{Index: i, Value: w}
		}
		total += w
	}
	if total == 0 {
		return 0, spinerrors.ZeroTotalWeightError{}
	}

	// Inverse transform over the cumulative weights.
	r := s.rng.Float64() * total
	last := -1
	var cumulative float64
	for i, w := range weights {
		if w == 0 {
			continue
		}
		last = i
		cumulative += w
		if r < cumulative {
			return i, nil
		}
	}

	// Float rounding can leave r just past the final boundary.
	return last, nil
}

// Bernoulli returns true with probability p.
func (s *Sampler) Bernoulli(p float64) bool {
	return s.rng.Float64() < p
}

// Choose draws one item using weightOf to weigh each element.
func Choose[T any](s *Sampler, items []T, weightOf func(T) float64) (T, error) {
	var zero T
	ws := make([]float64, len(items))
	for i, it := range items {
		ws[i] = weightOf(it)
	}
	i, err := s.Pick(ws)
	if err != nil {
		return zero, err
	}
	return items[i], nil
}
