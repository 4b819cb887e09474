package roll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// fixedSource returns the queued values in order, then repeats the last one.
type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[min(f.i, len(f.vals)-1)]
	f.i++
	return v
}

func TestWeightedIndex_Empty(t *testing.T) {
	assert.Equal(t, -1, WeightedIndex(Global(), nil))
}

func TestWeightedIndex_Boundaries(t *testing.T) {
	weights := []float64{1, 2, 1}

	tests := []struct {
		name string
		draw float64
		want int
	}{
		{"zero draw picks first", 0, 0},
		{"inside first", 0.2, 0},
		{"exact boundary stays on first", 0.25, 0},
		{"inside second", 0.5, 1},
		{"inside last", 0.9, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedIndex(&fixedSource{vals: []float64{tt.draw}}, weights)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeightedIndex_RoundingFallsBackToLast(t *testing.T) {
	// A draw just below 1 with weights that do not sum exactly must still
	// land somewhere; the last entry is the fallback.
	weights := []float64{0.1, 0.2, 0.3}
	got := WeightedIndex(&fixedSource{vals: []float64{0.9999999999999999}}, weights)
	assert.Equal(t, 2, got)
}

func TestWeightedIndex_NonPositiveWeights(t *testing.T) {
	assert.Equal(t, 2, WeightedIndex(Global(), []float64{0, -1, 0}))

	for range 100 {
		assert.Equal(t, 1, WeightedIndex(Global(), []float64{0, 3, 0}))
	}
}

func TestWeightedIndex_UniformDistribution(t *testing.T) {
	const draws = 10000
	src := Seeded(42)
	counts := make([]int, 3)
	for range draws {
		counts[WeightedIndex(src, []float64{1, 1, 1})]++
	}

	for i, c := range counts {
		freq := float64(c) / draws
		assert.InDelta(t, 1.0/3.0, freq, 0.03, "option %d frequency %.3f", i, freq)
	}
}

func TestWeighted_Generic(t *testing.T) {
	type opt struct {
		name string
		w    float64
	}
	items := []opt{{"a", 0}, {"b", 1}}

	got, ok := Weighted(Seeded(1), items, func(o opt) float64 { return o.w })
	require.True(t, ok)
	assert.Equal(t, "b", got.name)

	_, ok = Weighted(Seeded(1), []opt(nil), func(o opt) float64 { return o.w })
	assert.False(t, ok)
}

func TestChance(t *testing.T) {
	src := Seeded(7)
	for range 1000 {
		assert.False(t, Chance(src, 0))
		assert.True(t, Chance(src, 1))
	}
	assert.True(t, Chance(&fixedSource{vals: []float64{0.49}}, 0.5))
	assert.False(t, Chance(&fixedSource{vals: []float64{0.5}}, 0.5))
}

func TestWeightedIndex_AlwaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		weights := rapid.SliceOfN(rapid.Float64Range(0, 100), 1, 20).Draw(t, "weights")
		draw := rapid.Float64Range(0, 1).Filter(func(f float64) bool { return f < 1 }).Draw(t, "draw")

		i := WeightedIndex(&fixedSource{vals: []float64{draw}}, weights)
		if i < 0 || i >= len(weights) {
			t.Fatalf("index %d out of range for %d weights", i, len(weights))
		}
		if weights[i] <= 0 {
			hasPositive := false
			for _, w := range weights {
				if w > 0 {
					hasPositive = true
				}
			}
			if hasPositive {
				t.Fatalf("picked zero-weight index %d from %v", i, weights)
			}
		}
	})
}
