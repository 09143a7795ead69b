package haar

import (
	"math"
	"sort"
)

// Magnitudes returns the distinct absolute values of every coefficient in grids,
// sorted ascending.
func Magnitudes(grids ...Grid) []float64 {
	seen := make(map[float64]struct{})
	for _, g := range grids {
		for _, row := range g {
			for _, v := range row {
				seen[math.Abs(v)] = struct{}{}
			}
		}
	}
	out := make([]float64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// Threshold picks the cut-off magnitude for dropping percent of the distinct
// coefficient magnitudes across grids. With k = percent*len/100 (floored) it is
// the k-th smallest distinct magnitude, 0 when k is 0, and the largest magnitude
// when percent is 100.
//
// Repeated magnitudes count once, so this is a percentile over distinct values
// rather than over the coefficient population.
func Threshold(percent int, grids ...Grid) float64 {
	return Percentile(Magnitudes(grids...), percent)
}

// Percentile applies the Threshold rule to an already sorted set of distinct
// magnitudes.
func Percentile(set []float64, percent int) float64 {
	if len(set) == 0 {
		return 0
	}
	if percent >= 100 {
		return set[len(set)-1]
	}
	k := int(float64(percent) * float64(len(set)) / 100)
	if k <= 0 {
		return 0
	}
	return set[k-1]
}

// Zero clears every coefficient of g whose magnitude is <= threshold and returns
// how many were cleared.
func Zero(g Grid, threshold float64) int {
	n := 0
	for _, row := range g {
		for j, v := range row {
			if math.Abs(v) <= threshold {
				row[j] = 0
				n++
			}
		}
	}
	return n
}
