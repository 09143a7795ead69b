package stdimg

import (
	"image"
	"image/color"
)

// FromImage converts any image.Image into an Image. Alpha is discarded: colour
// values are read non-premultiplied and the top 8 bits of each channel are kept.
func FromImage(src image.Image) *Image {
	if src == nil {
		return nil
	}
	if img, ok := src.(*Image); ok {
		return img.Map(func(p Pixel) Pixel { return p })
	}
	b := src.Bounds()
	out := NewImage(b.Dy(), b.Dx())
	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < out.height; y++ {
			for x := 0; x < out.width; x++ {
				i := n.PixOffset(b.Min.X+x, b.Min.Y+y)
				out.pix[y*out.width+x] = Pixel{r: n.Pix[i+0], g: n.Pix[i+1], b: n.Pix[i+2]}
			}
		}
		return out
	}
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			out.pix[y*out.width+x] = Pixel{r: c.R, g: c.G, b: c.B}
		}
	}
	return out
}

// ToNRGBA returns an opaque *image.NRGBA copy of img.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	idx := 0
	for _, p := range img.pix {
		out.Pix[idx+0] = p.r
		out.Pix[idx+1] = p.g
		out.Pix[idx+2] = p.b
		out.Pix[idx+3] = 255
		idx += 4
	}
	return out
}

// clampInt clamps v to [lo,hi]
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
