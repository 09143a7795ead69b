package stdimg

import (
	"image"
	"image/color"
)

// Image is an immutable, row-major grid of pixels. Transforms never modify the
// receiver; each one allocates and returns a new Image.
type Image struct {
	height int
	width  int
	pix    []Pixel
}

// NewImage returns a black image of the given size. Negative sizes are treated as 0.
func NewImage(height, width int) *Image {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return &Image{height: height, width: width, pix: make([]Pixel, height*width)}
}

// NewImageFunc builds an image by calling f for every (row, column).
func NewImageFunc(height, width int, f func(i, j int) Pixel) *Image {
	out := NewImage(height, width)
	for i := 0; i < out.height; i++ {
		row := out.pix[i*out.width : (i+1)*out.width]
		for j := range row {
			row[j] = f(i, j)
		}
	}
	return out
}

// NewSolidImage returns an image filled with p.
func NewSolidImage(height, width int, p Pixel) *Image {
	out := NewImage(height, width)
	for i := range out.pix {
		out.pix[i] = p
	}
	return out
}

func (img *Image) Height() int { return img.height }
func (img *Image) Width() int  { return img.width }

// Empty reports whether the image has no pixels.
func (img *Image) Empty() bool {
	return img == nil || img.height == 0 || img.width == 0
}

// Pixel returns the pixel at row i, column j. Coordinates outside the grid read as
// Black; convolution edges and compression padding rely on this.
func (img *Image) Pixel(i, j int) Pixel {
	if i < 0 || i >= img.height || j < 0 || j >= img.width {
		return Black
	}
	return img.pix[i*img.width+j]
}

// Map applies f to every pixel.
func (img *Image) Map(f func(Pixel) Pixel) *Image {
	out := &Image{height: img.height, width: img.width, pix: make([]Pixel, len(img.pix))}
	for i, p := range img.pix {
		out.pix[i] = f(p)
	}
	return out
}

// Equal reports whether both images have the same size and pixels.
func (img *Image) Equal(o *Image) bool {
	if img == nil || o == nil {
		return img == o
	}
	if img.height != o.height || img.width != o.width {
		return false
	}
	for i := range img.pix {
		if img.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Rows returns a copy of the grid as [row][column]pixels.
func (img *Image) Rows() [][]Pixel {
	rows := make([][]Pixel, img.height)
	for i := range rows {
		rows[i] = append([]Pixel(nil), img.pix[i*img.width:(i+1)*img.width]...)
	}
	return rows
}

func (img *Image) RedComponent() *Image   { return img.Map(Pixel.WithRedOnly) }
func (img *Image) GreenComponent() *Image { return img.Map(Pixel.WithGreenOnly) }
func (img *Image) BlueComponent() *Image  { return img.Map(Pixel.WithBlueOnly) }

func (img *Image) ValueComponent() *Image     { return img.Map(Pixel.Value) }
func (img *Image) IntensityComponent() *Image { return img.Map(Pixel.Intensity) }
func (img *Image) LumaComponent() *Image      { return img.Map(Pixel.Luma) }

// Sepia converts every pixel with the sepia matrix.
func (img *Image) Sepia() *Image { return img.Map(Pixel.Sepia) }

// Brighten adds delta to every channel of every pixel.
func (img *Image) Brighten(delta int) *Image {
	return img.Map(func(p Pixel) Pixel { return p.Brighten(delta) })
}

// Offset adds per-channel deltas to every pixel.
func (img *Image) Offset(dr, dg, db int) *Image {
	return img.Map(func(p Pixel) Pixel { return p.Offset(dr, dg, db) })
}

// ColorModel, Bounds and At make *Image usable as an image.Image. x is the column
// and y the row.
func (img *Image) ColorModel() color.Model { return color.NRGBAModel }

func (img *Image) Bounds() image.Rectangle { return image.Rect(0, 0, img.width, img.height) }

func (img *Image) At(x, y int) color.Color {
	p := img.Pixel(y, x)
	return color.NRGBA{R: p.r, G: p.g, B: p.b, A: 255}
}
