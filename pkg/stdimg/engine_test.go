package stdimg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestApplyCommandRegistryCoverage(t *testing.T) {
	src := gradient(6, 8)
	for _, c := range Commands {
		args := []string{}
		switch c.Name {
		case "brighten":
			args = []string{"20"}
		case "levels-adjust":
			args = []string{"10", "120", "230"}
		case "compress":
			args = []string{"40"}
		}
		out, err := ApplyCommand(src, c.Name, args)
		if err != nil {
			t.Fatalf("%s: %v", c.Name, err)
		}
		if out == nil || out.Empty() {
			t.Fatalf("%s: empty result", c.Name)
		}
		assertChannelsInRange(t, out)
	}
}

func TestApplyCommandMatchesDirectCalls(t *testing.T) {
	src := gradient(5, 5)
	cases := []struct {
		name string
		args []string
		want *Image
	}{
		{"blue-component", nil, src.BlueComponent()},
		{"horizontal-flip", nil, src.HorizontalFlip()},
		{"brighten", []string{"-30"}, src.Brighten(-30)},
		{"blur", nil, src.Blur()},
		{"sepia", []string{"100"}, src.Sepia()},
		{"compress", []string{"0"}, src},
	}
	for _, tc := range cases {
		got, err := ApplyCommand(src, tc.name, tc.args)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%s: result differs from direct call", tc.name)
		}
	}
}

func TestApplyCommandSplitPutsEffectOnLeft(t *testing.T) {
	src := NewSolidImage(2, 10, Gray(100))
	out, err := ApplyCommand(src, "sepia", []string{"50"})
	if err != nil {
		t.Fatalf("sepia split: %v", err)
	}
	if p := out.Pixel(0, 0); p != Gray(100).Sepia() {
		t.Fatalf("left half should be edited, got %v", p)
	}
	if p := out.Pixel(0, 9); p != Gray(100) {
		t.Fatalf("right half should be original, got %v", p)
	}

	zero, err := ApplyCommand(src, "levels-adjust", []string{"10", "120", "230", "0"})
	if err != nil {
		t.Fatalf("levels split 0: %v", err)
	}
	if !zero.Equal(src) {
		t.Fatalf("split 0 should show only the original")
	}
}

func TestApplyCommandErrors(t *testing.T) {
	src := gradient(2, 2)
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"nope", nil, ErrUnknownCommand},
		{"brighten", nil, ErrInvalidArgument},
		{"brighten", []string{"x"}, ErrInvalidArgument},
		{"brighten", []string{"300"}, ErrInvalidArgument},
		{"compress", []string{"101"}, ErrInvalidArgument},
		{"blur", []string{"50", "50"}, ErrInvalidArgument},
		{"blur", []string{"-1"}, ErrInvalidArgument},
		{"levels-adjust", []string{"200", "100", "50"}, ErrInvalidArgument},
		{"red-component", []string{"10"}, ErrInvalidArgument},
	}
	for _, tc := range cases {
		if _, err := ApplyCommand(src, tc.name, tc.args); !errors.Is(err, tc.want) {
			t.Fatalf("%s %v: expected %v, got %v", tc.name, tc.args, tc.want, err)
		}
	}
	if _, err := ApplyCommand(nil, "blur", nil); !errors.Is(err, ErrNilImage) {
		t.Fatalf("expected ErrNilImage, got %v", err)
	}
}

func TestApplyCommandAcceptsPercentSuffix(t *testing.T) {
	src := gradient(4, 4)
	a, err := ApplyCommand(src, "compress", []string{"30%"})
	if err != nil {
		t.Fatalf("compress 30%%: %v", err)
	}
	if !a.Equal(Compress(src, 30)) {
		t.Fatalf("percent suffix changed the result")
	}
}

func TestApplyCombine(t *testing.T) {
	src := gradient(3, 4)
	r, g, b := src.SplitChannels()
	out, err := ApplyCombine(r, g, b)
	if err != nil {
		t.Fatalf("ApplyCombine: %v", err)
	}
	if !out.Equal(src) {
		t.Fatalf("combine round trip failed")
	}
	if _, err := ApplyCombine(r, g, NewImage(1, 1)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected size mismatch error, got %v", err)
	}
	if _, err := ApplyCombine(r, nil, b); !errors.Is(err, ErrNilImage) {
		t.Fatalf("expected ErrNilImage, got %v", err)
	}
}

func TestApplyCommandLogs(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)
	defer SetLogger(nil)

	if _, err := ApplyCommand(gradient(2, 2), "vertical-flip", nil); err != nil {
		t.Fatalf("vertical-flip: %v", err)
	}
	if !strings.Contains(buf.String(), "command=vertical-flip") {
		t.Fatalf("expected command field in log output, got %q", buf.String())
	}
}

func TestLookupCommand(t *testing.T) {
	if _, ok := LookupCommand("sharpen"); !ok {
		t.Fatalf("sharpen should be registered")
	}
	if _, ok := LookupCommand("resize"); ok {
		t.Fatalf("resize should not be registered")
	}
	seen := map[string]bool{}
	for _, c := range Commands {
		if seen[c.Name] {
			t.Fatalf("duplicate command %s", c.Name)
		}
		seen[c.Name] = true
		if c.Splittable && (len(c.Args) == 0 || c.Args[len(c.Args)-1].Name != "split") {
			t.Fatalf("%s is splittable but has no trailing split arg", c.Name)
		}
	}
}
