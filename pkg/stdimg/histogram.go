package stdimg

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Histogram holds per-channel frequency tables and the largest bin count seen in
// any of them.
type Histogram struct {
	Red   [256]int
	Green [256]int
	Blue  [256]int
	Max   int
}

// ComputeHistogram counts every channel value of img in a single pass.
func ComputeHistogram(img *Image) *Histogram {
	h := &Histogram{}
	for _, p := range img.pix {
		h.Red[p.r]++
		h.Green[p.g]++
		h.Blue[p.b]++
		if h.Red[p.r] > h.Max {
			h.Max = h.Red[p.r]
		}
		if h.Green[p.g] > h.Max {
			h.Max = h.Green[p.g]
		}
		if h.Blue[p.b] > h.Max {
			h.Max = h.Blue[p.b]
		}
	}
	return h
}

const histogramSize = 256

var (
	histBackground = color.NRGBA{255, 255, 255, 255}
	histGrid       = color.NRGBA{225, 225, 225, 255}
	histLabel      = color.NRGBA{64, 64, 64, 255}
)

// RenderHistogram draws the three tables as overlaid line graphs on a 256x256
// white canvas, scaled so the tallest bin touches the top edge.
func RenderHistogram(h *Histogram) *Image {
	out := image.NewNRGBA(image.Rect(0, 0, histogramSize, histogramSize))
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+0] = histBackground.R
		out.Pix[i+1] = histBackground.G
		out.Pix[i+2] = histBackground.B
		out.Pix[i+3] = histBackground.A
	}
	for x := 0; x < histogramSize; x += 32 {
		for y := 0; y < histogramSize; y++ {
			out.SetNRGBA(x, y, histGrid)
			out.SetNRGBA(y, x, histGrid)
		}
	}

	maxv := h.Max
	if maxv == 0 {
		maxv = 1
	}
	plot := func(bins *[256]int, c color.NRGBA) {
		for i := 0; i < len(bins)-1; i++ {
			y1 := int(float64(bins[i]) / float64(maxv) * histogramSize)
			y2 := int(float64(bins[i+1]) / float64(maxv) * histogramSize)
			drawLine(out, i, histogramSize-y1, i+1, histogramSize-y2, c)
		}
	}
	plot(&h.Red, color.NRGBA{255, 0, 0, 255})
	plot(&h.Green, color.NRGBA{0, 255, 0, 255})
	plot(&h.Blue, color.NRGBA{0, 0, 255, 255})

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(histLabel),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(4), Y: fixed.I(13)},
	}
	d.DrawString(fmt.Sprintf("max %d", h.Max))
	return FromImage(out)
}

// drawLine plots a Bresenham line, skipping points outside dst.
func drawLine(dst *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(dst.Rect) {
			dst.SetNRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
