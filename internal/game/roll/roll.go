// Package roll provides the random draws shared by encounter selection,
// enemy decisions and loot.
package roll

import "math/rand/v2"

// Source yields uniform floats in [0,1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Global returns a Source backed by the math/rand/v2 top-level generator.
func Global() Source {
	return globalSource{}
}

// Seeded returns a deterministic Source. Useful for tests and replays.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Chance returns true with probability p. p <= 0 never succeeds, p >= 1 always does.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}

// WeightedIndex picks an index proportionally to weights.
//
// Algorithm: draw r in [0, total), subtract weights in order and stop at the
// first index where r <= 0. If rounding leaves nothing selected, the last
// candidate is returned. Returns -1 for an empty slice. Non-positive weights
// never win a draw unless every weight is non-positive, in which case the
// last index is returned.
func WeightedIndex(src Source, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return len(weights) - 1
	}

	r := src.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		r -= w
		if r <= 0 {
			return i
		}
	}
	return last
}

// Weighted picks one item proportionally to weight(item).
// ok is false only for an empty slice.
func Weighted[T any](src Source, items []T, weight func(T) float64) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	weights := make([]float64, len(items))
	for i, it := range items {
		weights[i] = weight(it)
	}
	return items[WeightedIndex(src, weights)], true
}
