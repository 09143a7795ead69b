package stdimg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LevelsCurve is the quadratic y = P*x*x + Q*x + R.
type LevelsCurve struct {
	P, Q, R float64
}

// Eval returns the unrounded curve value at x.
func (c LevelsCurve) Eval(x float64) float64 {
	return c.P*x*x + c.Q*x + c.R
}

// SolveLevels fits the curve through (black,0), (mid,128) and (white,255) using
// Cramer's rule on the 3x3 Vandermonde system.
func SolveLevels(black, mid, white int) (LevelsCurve, error) {
	if black < 0 || white > 255 || !(black < mid && mid < white) {
		return LevelsCurve{}, fmt.Errorf("%w: levels need 0 <= black < mid < white <= 255, got %d %d %d",
			ErrInvalidArgument, black, mid, white)
	}
	xs := [3]float64{float64(black), float64(mid), float64(white)}
	ys := [3]float64{0, 128, 255}

	a := mat.NewDense(3, 3, nil)
	for i, x := range xs {
		a.SetRow(i, []float64{x * x, x, 1})
	}
	det := mat.Det(a)
	if det == 0 {
		return LevelsCurve{}, fmt.Errorf("%w: singular levels system", ErrInvalidArgument)
	}

	var coef [3]float64
	for col := range coef {
		ac := mat.DenseCopyOf(a)
		ac.SetCol(col, ys[:])
		coef[col] = mat.Det(ac) / det
	}
	return LevelsCurve{P: coef[0], Q: coef[1], R: coef[2]}, nil
}

// ApplyLevels maps every channel of every pixel through c.
func (img *Image) ApplyLevels(c LevelsCurve) *Image {
	return img.Map(func(p Pixel) Pixel { return p.ApplyCurve(c.P, c.Q, c.R) })
}

// LevelsAdjust solves the curve for (black, mid, white) and applies it.
func LevelsAdjust(img *Image, black, mid, white int) (*Image, error) {
	c, err := SolveLevels(black, mid, white)
	if err != nil {
		return nil, err
	}
	return img.ApplyLevels(c), nil
}
