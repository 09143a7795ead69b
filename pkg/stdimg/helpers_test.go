package stdimg

import (
	"image/png"
	"os"
	"testing"
)

// rgbRows flattens img into comparable triples for cmp.Diff.
func rgbRows(img *Image) [][][3]int {
	rows := make([][][3]int, img.Height())
	for i, row := range img.Rows() {
		rows[i] = make([][3]int, len(row))
		for j, p := range row {
			rows[i][j] = [3]int{p.Red(), p.Green(), p.Blue()}
		}
	}
	return rows
}

// gradient returns an image whose channels vary with position so that flips and
// convolutions are observable.
func gradient(h, w int) *Image {
	return NewImageFunc(h, w, func(i, j int) Pixel {
		return NewPixel(i*17+j*3, (i*5+j*29)%256, 255-(i*11+j*7)%256)
	})
}

// saveOutput writes img to name when RGBEDIT_SAVE_TEST_OUTPUT=1.
func saveOutput(t *testing.T, name string, img *Image) {
	t.Helper()
	if os.Getenv("RGBEDIT_SAVE_TEST_OUTPUT") != "1" {
		return
	}
	f, err := os.Create(name)
	if err != nil {
		t.Logf("save %s: %v", name, err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img.ToNRGBA()); err != nil {
		t.Logf("encode %s: %v", name, err)
	}
}

func assertChannelsInRange(t *testing.T, img *Image) {
	t.Helper()
	for i, row := range img.Rows() {
		for j, p := range row {
			r, g, b := p.RGB()
			for _, v := range []int{r, g, b} {
				if v < 0 || v > 255 {
					t.Fatalf("pixel (%d,%d) out of range: %v", i, j, [3]int{r, g, b})
				}
			}
		}
	}
}
