package stdimg

// HorizontalFlip mirrors columns: j -> width-1-j.
func (img *Image) HorizontalFlip() *Image {
	out := NewImage(img.height, img.width)
	w := img.width
	for i := 0; i < img.height; i++ {
		for j := 0; j < w; j++ {
			out.pix[i*w+(w-1-j)] = img.pix[i*w+j]
		}
	}
	return out
}

// VerticalFlip mirrors rows: i -> height-1-i.
func (img *Image) VerticalFlip() *Image {
	out := NewImage(img.height, img.width)
	w := img.width
	for i := 0; i < img.height; i++ {
		dst := (img.height - 1 - i) * w
		copy(out.pix[dst:dst+w], img.pix[i*w:(i+1)*w])
	}
	return out
}
