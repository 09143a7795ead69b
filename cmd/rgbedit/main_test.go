package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fepozopo/rgbedit/pkg/cli"
	"github.com/Fepozopo/rgbedit/pkg/stdimg"
)

func writeTestImage(t *testing.T, path string, img *stdimg.Image) {
	t.Helper()
	if err := cli.SaveImage(path, img, 92); err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
}

func testImage() *stdimg.Image {
	return stdimg.NewImageFunc(8, 12, func(i, j int) stdimg.Pixel {
		return stdimg.NewPixel(i*30, j*20, 100)
	})
}

func TestApplyFlip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	src := testImage()
	writeTestImage(t, in, src)

	var stdout bytes.Buffer
	if err := run([]string{"apply", "-i", in, "-o", out, "horizontal-flip"}, &stdout); err != nil {
		t.Fatalf("apply: %v", err)
	}
	got, _, err := cli.LoadImage(out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Equal(src.HorizontalFlip()) {
		t.Fatalf("output is not the flipped input")
	}
}

func TestApplyCompressStats(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeTestImage(t, in, testImage())

	var stdout bytes.Buffer
	err := run([]string{"apply", "-stats", "-i", in, "-o", filepath.Join(dir, "out.ppm"), "compress", "50%"}, &stdout)
	if err != nil {
		t.Fatalf("apply compress: %v", err)
	}
	if !strings.Contains(stdout.String(), "grid 16x16") {
		t.Fatalf("expected stats output, got %q", stdout.String())
	}
}

func TestApplyRejectsBadArgs(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeTestImage(t, in, testImage())
	out := filepath.Join(dir, "out.png")

	if err := run([]string{"apply", "-i", in, "-o", out, "brighten"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected missing argument error")
	}
	if err := run([]string{"apply", "-i", in, "-o", out, "resize", "10"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected unknown command error")
	}
	if err := run([]string{"apply", "-o", out, "blur"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected usage error without -i")
	}
}

func TestCombine(t *testing.T) {
	dir := t.TempDir()
	src := testImage()
	r, g, b := src.SplitChannels()
	paths := []string{filepath.Join(dir, "r.png"), filepath.Join(dir, "g.png"), filepath.Join(dir, "b.png")}
	for i, img := range []*stdimg.Image{r, g, b} {
		writeTestImage(t, paths[i], img)
	}
	out := filepath.Join(dir, "out.png")
	if err := run(append([]string{"combine", "-o", out}, paths...), &bytes.Buffer{}); err != nil {
		t.Fatalf("combine: %v", err)
	}
	got, _, err := cli.LoadImage(out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Equal(src) {
		t.Fatalf("combined image differs from source")
	}
}

func TestVersionAndCommands(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"version"}, &stdout); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "rgbedit ") {
		t.Fatalf("unexpected version output %q", stdout.String())
	}
	stdout.Reset()
	if err := run([]string{"commands"}, &stdout); err != nil {
		t.Fatalf("commands: %v", err)
	}
	if !strings.Contains(stdout.String(), "levels-adjust") {
		t.Fatalf("command list missing levels-adjust: %q", stdout.String())
	}
	if err := run([]string{"no-such-subcommand"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown subcommand")
	}
}
