package stdimg

import "fmt"

// Kernel is an odd-sized square matrix of weights. The centre tap lines up with
// the output pixel.
type Kernel [][]float64

// BlurKernel is a 3x3 Gaussian approximation.
var BlurKernel = Kernel{
	{0.0625, 0.125, 0.0625},
	{0.125, 0.25, 0.125},
	{0.0625, 0.125, 0.0625},
}

// SharpenKernel boosts the centre against a negative outer ring.
var SharpenKernel = Kernel{
	{-0.125, -0.125, -0.125, -0.125, -0.125},
	{-0.125, 0.25, 0.25, 0.25, -0.125},
	{-0.125, 0.25, 1, 0.25, -0.125},
	{-0.125, 0.25, 0.25, 0.25, -0.125},
	{-0.125, -0.125, -0.125, -0.125, -0.125},
}

// Validate checks that k is square with an odd side.
func (k Kernel) Validate() error {
	n := len(k)
	if n == 0 || n%2 == 0 {
		return fmt.Errorf("kernel size %d is not odd", n)
	}
	for i, row := range k {
		if len(row) != n {
			return fmt.Errorf("kernel row %d has %d taps, want %d", i, len(row), n)
		}
	}
	return nil
}

// Convolve filters img with k. Taps that fall outside the image read the black
// sentinel (zero padding). Each channel sum is truncated toward zero and clamped.
// k must satisfy Validate.
func (img *Image) Convolve(k Kernel) *Image {
	n := len(k)
	f := (n - 1) / 2
	out := NewImage(img.height, img.width)
	for i := 0; i < img.height; i++ {
		for j := 0; j < img.width; j++ {
			var sr, sg, sb float64
			for p := 0; p < n; p++ {
				for q := 0; q < n; q++ {
					w := k[p][q]
					px := img.Pixel(i-f+p, j-f+q)
					sr += float64(px.r) * w
					sg += float64(px.g) * w
					sb += float64(px.b) * w
				}
			}
			out.pix[i*img.width+j] = NewPixel(int(sr), int(sg), int(sb))
		}
	}
	return out
}

func (img *Image) Blur() *Image    { return img.Convolve(BlurKernel) }
func (img *Image) Sharpen() *Image { return img.Convolve(SharpenKernel) }
