package stdimg

// meaningfulPeak excludes values near clipped black or white, whose spikes would
// otherwise pull the correction.
func meaningfulPeak(v uint8) bool {
	return v > 10 && v < 245
}

// Peaks returns the most frequent meaningful value of each channel. Pixels are
// scanned row-major and the first value to reach the highest count wins. A channel
// with no meaningful value reports 0.
func Peaks(img *Image) (r, g, b int) {
	var counts [3][256]int
	var best, peak [3]int
	for _, p := range img.pix {
		for c, v := range [3]uint8{p.r, p.g, p.b} {
			counts[c][v]++
			if meaningfulPeak(v) && counts[c][v] > best[c] {
				best[c] = counts[c][v]
				peak[c] = int(v)
			}
		}
	}
	return peak[0], peak[1], peak[2]
}

// ColorCorrect shifts every channel so that its histogram peak lands on the
// average of the three peaks.
func ColorCorrect(img *Image) *Image {
	pr, pg, pb := Peaks(img)
	avg := (pr + pg + pb) / 3
	return img.Offset(avg-pr, avg-pg, avg-pb)
}
