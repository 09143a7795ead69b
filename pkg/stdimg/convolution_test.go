package stdimg

import "testing"

func TestKernelValidate(t *testing.T) {
	if err := BlurKernel.Validate(); err != nil {
		t.Fatalf("blur kernel: %v", err)
	}
	if err := SharpenKernel.Validate(); err != nil {
		t.Fatalf("sharpen kernel: %v", err)
	}
	if err := (Kernel{{1, 1}, {1, 1}}).Validate(); err == nil {
		t.Fatalf("expected error for even kernel")
	}
	if err := (Kernel{{1, 1, 1}, {1}, {1, 1, 1}}).Validate(); err == nil {
		t.Fatalf("expected error for ragged kernel")
	}
}

func TestBlurFlatInteriorAndEdges(t *testing.T) {
	img := NewSolidImage(5, 5, Gray(160))
	out := img.Blur()
	if p := out.Pixel(2, 2); p != Gray(160) {
		t.Fatalf("interior changed: %v", p)
	}
	// corner sees 4 of 9 taps: 0.25+0.125+0.125+0.0625 = 0.5625 -> 90
	if p := out.Pixel(0, 0); p != Gray(90) {
		t.Fatalf("corner: got %v, want gray 90", p)
	}
	// edge sees 6 of 9 taps: 0.75 -> 120
	if p := out.Pixel(0, 2); p != Gray(120) {
		t.Fatalf("edge: got %v, want gray 120", p)
	}
}

func TestConvolutionTruncates(t *testing.T) {
	// single tap of 0.5 on 3 -> 1.5 truncates to 1
	k := Kernel{{0.5}}
	out := NewSolidImage(1, 1, NewPixel(3, 5, 255)).Convolve(k)
	if p := out.Pixel(0, 0); p != NewPixel(1, 2, 127) {
		t.Fatalf("expected (1,2,127), got %v", p)
	}
	// negative sums clamp to zero
	neg := NewSolidImage(1, 1, Gray(10)).Convolve(Kernel{{-1}})
	if p := neg.Pixel(0, 0); p != Black {
		t.Fatalf("expected black, got %v", p)
	}
}

func TestSharpen(t *testing.T) {
	img := NewSolidImage(7, 7, Gray(100))
	out := img.Sharpen()
	// ring weights sum to 0 so a flat interior is unchanged
	if p := out.Pixel(3, 3); p != Gray(100) {
		t.Fatalf("interior: got %v", p)
	}
	// the corner loses the outer ring and keeps inner taps: 1 + 3*0.25 - 5*0.125 = 1.125
	if p := out.Pixel(0, 0); p != Gray(112) {
		t.Fatalf("corner: got %v, want gray 112", p)
	}
	assertChannelsInRange(t, gradient(9, 9).Sharpen())
}
