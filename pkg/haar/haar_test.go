package haar

import (
	"math"
	"testing"
)

func TestGridSize(t *testing.T) {
	cases := []struct{ h, w, want int }{
		{0, 0, 1}, {1, 1, 1}, {2, 1, 2}, {3, 3, 4}, {16, 16, 16}, {17, 4, 32}, {5, 100, 128},
	}
	for _, tc := range cases {
		if got := GridSize(tc.h, tc.w); got != tc.want {
			t.Fatalf("GridSize(%d,%d) = %d, want %d", tc.h, tc.w, got, tc.want)
		}
	}
}

func TestForwardInverseRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 32} {
		g := NewGrid(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				g[i][j] = float64((i*31 + j*17) % 256)
			}
		}
		orig := g.Clone()
		Forward(g)
		Inverse(g)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if math.Abs(g[i][j]-orig[i][j]) > 1e-9 {
					t.Fatalf("n=%d (%d,%d): got %v, want %v", n, i, j, g[i][j], orig[i][j])
				}
			}
		}
	}
}

func TestForwardKnownValues(t *testing.T) {
	g := Grid{{1, 3}, {5, 7}}
	Forward(g)
	// rows: (4/r2, -2/r2), (12/r2, -2/r2); then columns
	want := Grid{{8, -2}, {-4, 0}}
	for i := range want {
		for j := range want[i] {
			if math.Abs(g[i][j]-want[i][j]) > 1e-12 {
				t.Fatalf("(%d,%d) = %v, want %v", i, j, g[i][j], want[i][j])
			}
		}
	}
}

func TestForwardPreservesEnergy(t *testing.T) {
	g := NewGrid(8)
	var before float64
	for i := range g {
		for j := range g[i] {
			g[i][j] = float64(i*j%13) - 4
			before += g[i][j] * g[i][j]
		}
	}
	Forward(g)
	var after float64
	for i := range g {
		for j := range g[i] {
			after += g[i][j] * g[i][j]
		}
	}
	if math.Abs(before-after) > 1e-6 {
		t.Fatalf("orthonormal transform changed energy: %v -> %v", before, after)
	}
}

func TestSolidGridHasOnlyDC(t *testing.T) {
	g := NewGrid(16)
	for i := range g {
		for j := range g[i] {
			g[i][j] = 100
		}
	}
	Forward(g)
	if math.Abs(g[0][0]-1600) > 1e-9 {
		t.Fatalf("DC = %v, want 1600", g[0][0])
	}
	for i := range g {
		for j := range g[i] {
			if (i != 0 || j != 0) && g[i][j] != 0 {
				t.Fatalf("detail (%d,%d) = %v, want 0", i, j, g[i][j])
			}
		}
	}
}
