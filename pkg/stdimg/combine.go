package stdimg

// CombineChannels takes the red channel from red, green from green and blue from
// blue. The result is as tall and as wide as the largest input; missing pixels
// read as black.
func CombineChannels(red, green, blue *Image) *Image {
	h := maxInt(red.height, maxInt(green.height, blue.height))
	w := maxInt(red.width, maxInt(green.width, blue.width))
	return NewImageFunc(h, w, func(i, j int) Pixel {
		return Pixel{
			r: red.Pixel(i, j).r,
			g: green.Pixel(i, j).g,
			b: blue.Pixel(i, j).b,
		}
	})
}

// SplitChannels returns the red, green and blue component images.
func (img *Image) SplitChannels() (red, green, blue *Image) {
	return img.RedComponent(), img.GreenComponent(), img.BlueComponent()
}
