package cli

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/Fepozopo/rgbedit/pkg/stdimg"
)

// TestPreviewInlineSequence verifies that the inline backend emits an OSC 1337
// sequence carrying a decodable PNG.
func TestPreviewInlineSequence(t *testing.T) {
	var buf bytes.Buffer
	p := &Previewer{Out: &buf, Backend: "inline"}
	if err := p.Preview(sampleImage()); err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]1337;File=") {
		t.Fatalf("expected inline 1337 sequence, got: %q", out)
	}
	payload := out[strings.Index(out, ":")+1:]
	payload = payload[:strings.Index(payload, "\a")]
	dec, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("base64 decode failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(dec))
	if err != nil {
		t.Fatalf("payload is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 9 || b.Dy() != 6 {
		t.Fatalf("small images should not be rescaled, got %v", b)
	}
}

func TestPreviewKittyChunks(t *testing.T) {
	var buf bytes.Buffer
	p := &Previewer{Out: &buf, Backend: "kitty"}
	noisy := stdimg.NewImageFunc(300, 300, func(i, j int) stdimg.Pixel {
		return stdimg.NewPixel(i*j%251, (i*7+j*13)%253, (i^j)%256)
	})
	if err := p.Preview(noisy); err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b_Ga=T,f=100,") {
		t.Fatalf("expected kitty header, got %q", out[:20])
	}
	if !strings.Contains(out, "\x1b_Gm=0;") && !strings.Contains(out, ",m=0;") {
		t.Fatalf("expected a final chunk marker")
	}
}

func TestComputePreviewSize(t *testing.T) {
	small := computePreviewSize(16, 16)
	if small.PixelWidth != 16 || small.Cols != minCols || small.Rows != minRows {
		t.Fatalf("small image: %+v", small)
	}
	big := computePreviewSize(6400, 1280)
	if big.PixelWidth != maxCols*cellW || big.Cols != maxCols || big.PixelHeight != 128 {
		t.Fatalf("wide image: %+v", big)
	}
	thin := computePreviewSize(100000, 1)
	if thin.PixelHeight < 1 {
		t.Fatalf("height collapsed: %+v", thin)
	}
}

func TestPreviewEmpty(t *testing.T) {
	p := &Previewer{Out: &bytes.Buffer{}, Backend: "inline"}
	if err := p.Preview(stdimg.NewImage(0, 0)); err == nil {
		t.Fatalf("expected error for empty image")
	}
}
