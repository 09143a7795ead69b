package stdimg

import "math"

// Pixel is an immutable RGB triple. Every channel is clamped to [0,255] when the
// pixel is built, so a Pixel value is always in range.
type Pixel struct {
	r, g, b uint8
}

// Black is the sentinel returned for out-of-bounds reads.
var Black = Pixel{}

// NewPixel builds a pixel from arbitrary ints, clamping each channel to [0,255].
func NewPixel(r, g, b int) Pixel {
	return Pixel{r: clampChannel(r), g: clampChannel(g), b: clampChannel(b)}
}

// Gray returns a pixel with v in all three channels.
func Gray(v int) Pixel {
	c := clampChannel(v)
	return Pixel{r: c, g: c, b: c}
}

func (p Pixel) Red() int   { return int(p.r) }
func (p Pixel) Green() int { return int(p.g) }
func (p Pixel) Blue() int  { return int(p.b) }

// RGB returns the three channels as ints.
func (p Pixel) RGB() (int, int, int) {
	return int(p.r), int(p.g), int(p.b)
}

func (p Pixel) WithRedOnly() Pixel   { return Pixel{r: p.r} }
func (p Pixel) WithGreenOnly() Pixel { return Pixel{g: p.g} }
func (p Pixel) WithBlueOnly() Pixel  { return Pixel{b: p.b} }

// Value replicates max(r,g,b) into every channel.
func (p Pixel) Value() Pixel {
	v := p.r
	if p.g > v {
		v = p.g
	}
	if p.b > v {
		v = p.b
	}
	return Pixel{r: v, g: v, b: v}
}

// Intensity replicates the rounded channel mean into every channel.
func (p Pixel) Intensity() Pixel {
	sum := float64(p.r) + float64(p.g) + float64(p.b)
	return Gray(int(math.Round(sum / 3)))
}

// Luma replicates the Rec. 709 luma into every channel.
func (p Pixel) Luma() Pixel {
	y := 0.2126*float64(p.r) + 0.7152*float64(p.g) + 0.0722*float64(p.b)
	return Gray(int(math.Round(y)))
}

// Brighten adds delta to every channel; a negative delta darkens.
func (p Pixel) Brighten(delta int) Pixel {
	return p.Offset(delta, delta, delta)
}

// Offset adds a separate delta to each channel.
func (p Pixel) Offset(dr, dg, db int) Pixel {
	return NewPixel(int(p.r)+dr, int(p.g)+dg, int(p.b)+db)
}

// Sepia applies the classic sepia colour-mix matrix. Each output channel is
// truncated before clamping.
func (p Pixel) Sepia() Pixel {
	r, g, b := float64(p.r), float64(p.g), float64(p.b)
	nr := 0.393*r + 0.769*g + 0.189*b
	ng := 0.349*r + 0.686*g + 0.168*b
	nb := 0.272*r + 0.534*g + 0.131*b
	return NewPixel(int(nr), int(ng), int(nb))
}

// ApplyCurve maps every channel x through round(p*x*x + q*x + r).
func (p Pixel) ApplyCurve(pc, qc, rc float64) Pixel {
	f := func(x uint8) int {
		v := float64(x)
		return int(math.Round(pc*v*v + qc*v + rc))
	}
	return NewPixel(f(p.r), f(p.g), f(p.b))
}

// clampChannel clamps v to [0,255]
func clampChannel(v int) uint8 {
	return uint8(clampInt(v, 0, 255))
}
