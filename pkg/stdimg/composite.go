package stdimg

// SplitView builds a before/after preview. Columns left of
// boundary = split*width/100 come from base, the rest from overlay. split 0 gives
// overlay, split 100 gives base. Both images must have the same size.
func SplitView(base, overlay *Image, split int) *Image {
	boundary := split * base.width / 100
	out := NewImage(base.height, base.width)
	w := base.width
	for i := 0; i < base.height; i++ {
		for j := 0; j < w; j++ {
			if j < boundary {
				out.pix[i*w+j] = base.pix[i*w+j]
			} else {
				out.pix[i*w+j] = overlay.Pixel(i, j)
			}
		}
	}
	return out
}
