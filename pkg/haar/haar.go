// Package haar implements the orthonormal 2-D Haar pyramid used by the lossy
// compressor, and the magnitude threshold that decides which coefficients to drop.
//
// A Grid is a square matrix whose side is a power of two. Forward and Inverse
// work in place on the caller's buffer: at each level the active m x m block is
// split into pairwise averages (first half) and differences (second half), rows
// first and then columns. Both taps are scaled by 1/sqrt(2).
package haar

import (
	"math"
	"math/bits"
)

// Grid is a square matrix of coefficients indexed [row][column].
type Grid [][]float64

// NewGrid allocates an n x n zero grid.
func NewGrid(n int) Grid {
	g := make(Grid, n)
	backing := make([]float64, n*n)
	for i := range g {
		g[i] = backing[i*n : (i+1)*n]
	}
	return g
}

// Size returns the side of the grid.
func (g Grid) Size() int { return len(g) }

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := NewGrid(len(g))
	for i := range g {
		copy(out[i], g[i])
	}
	return out
}

// GridSize returns the smallest power of two that is >= max(height, width).
// It is 1 when both sides are at most 1.
func GridSize(height, width int) int {
	n := height
	if width > n {
		n = width
	}
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

var invSqrt2 = 1 / math.Sqrt2

// forwardStep replaces s[:m] by m/2 averages followed by m/2 differences.
// tmp must hold at least m values.
func forwardStep(s, tmp []float64, m int) {
	half := m / 2
	for k := 0; k < half; k++ {
		a, b := s[2*k], s[2*k+1]
		tmp[k] = (a + b) * invSqrt2
		tmp[half+k] = (a - b) * invSqrt2
	}
	copy(s[:m], tmp[:m])
}

// inverseStep undoes forwardStep on s[:m].
func inverseStep(s, tmp []float64, m int) {
	half := m / 2
	for k := 0; k < half; k++ {
		a, b := s[k], s[half+k]
		tmp[2*k] = (a + b) * invSqrt2
		tmp[2*k+1] = (a - b) * invSqrt2
	}
	copy(s[:m], tmp[:m])
}

// Forward applies the multi-level transform in place, from level n down to 2.
func Forward(g Grid) {
	n := len(g)
	row := make([]float64, n)
	col := make([]float64, n)
	for m := n; m > 1; m /= 2 {
		for i := 0; i < m; i++ {
			forwardStep(g[i], row, m)
		}
		for j := 0; j < m; j++ {
			for i := 0; i < m; i++ {
				col[i] = g[i][j]
			}
			forwardStep(col, row, m)
			for i := 0; i < m; i++ {
				g[i][j] = col[i]
			}
		}
	}
}

// Inverse reverses Forward in place, from level 2 up to n. Columns are restored
// before rows at each level.
func Inverse(g Grid) {
	n := len(g)
	row := make([]float64, n)
	col := make([]float64, n)
	for m := 2; m <= n; m *= 2 {
		for j := 0; j < m; j++ {
			for i := 0; i < m; i++ {
				col[i] = g[i][j]
			}
			inverseStep(col, row, m)
			for i := 0; i < m; i++ {
				g[i][j] = col[i]
			}
		}
		for i := 0; i < m; i++ {
			inverseStep(g[i], row, m)
		}
	}
}
