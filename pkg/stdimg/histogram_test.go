package stdimg

import "testing"

func TestComputeHistogram(t *testing.T) {
	img := NewImageFunc(2, 3, func(i, j int) Pixel {
		if j == 0 {
			return NewPixel(10, 20, 30)
		}
		return NewPixel(10, 40, 30)
	})
	h := ComputeHistogram(img)
	if h.Red[10] != 6 || h.Green[20] != 2 || h.Green[40] != 4 || h.Blue[30] != 6 {
		t.Fatalf("unexpected bins: r10=%d g20=%d g40=%d b30=%d", h.Red[10], h.Green[20], h.Green[40], h.Blue[30])
	}
	if h.Max != 6 {
		t.Fatalf("expected max 6, got %d", h.Max)
	}
}

func TestRenderHistogram(t *testing.T) {
	// one bin per channel, each reaching the top edge
	out := RenderHistogram(ComputeHistogram(NewSolidImage(4, 4, NewPixel(100, 150, 200))))
	if out.Height() != 256 || out.Width() != 256 {
		t.Fatalf("expected 256x256, got %dx%d", out.Height(), out.Width())
	}
	if p := out.Pixel(200, 50); p != Gray(255) {
		t.Fatalf("expected white background, got %v", p)
	}
	if p := out.Pixel(0, 100); p != NewPixel(255, 0, 0) {
		t.Fatalf("expected red peak at column 100, got %v", p)
	}
	if p := out.Pixel(0, 200); p != NewPixel(0, 0, 255) {
		t.Fatalf("expected blue peak at column 200, got %v", p)
	}
	saveOutput(t, "histogram_test_out.png", RenderHistogram(ComputeHistogram(gradient(32, 32))))

	empty := RenderHistogram(ComputeHistogram(NewImage(0, 0)))
	if empty.Height() != 256 {
		t.Fatalf("empty histogram should still render")
	}
}

func TestPeaksIgnoreClippedValues(t *testing.T) {
	// the black background dominates but is not meaningful
	img := NewImageFunc(4, 4, func(i, j int) Pixel {
		if i == 0 {
			return NewPixel(100, 60, 200)
		}
		return Black
	})
	r, g, b := Peaks(img)
	if r != 100 || g != 60 || b != 200 {
		t.Fatalf("expected peaks (100,60,200), got (%d,%d,%d)", r, g, b)
	}
}

func TestPeaksTieFirstWins(t *testing.T) {
	img := NewImageFunc(1, 4, func(i, j int) Pixel {
		if j%2 == 0 {
			return Gray(50)
		}
		return Gray(70)
	})
	if r, _, _ := Peaks(img); r != 50 {
		t.Fatalf("expected first value to reach the top count to win, got %d", r)
	}
}

func TestColorCorrect(t *testing.T) {
	img := NewSolidImage(3, 3, NewPixel(100, 60, 200))
	out := ColorCorrect(img)
	// avg = (100+60+200)/3 = 120
	if p := out.Pixel(1, 1); p != Gray(120) {
		t.Fatalf("expected gray 120, got %v", p)
	}
	// a second pass is a no-op once the peaks coincide
	if !ColorCorrect(out).Equal(out) {
		t.Fatalf("color correct should be stable once peaks coincide")
	}
}
