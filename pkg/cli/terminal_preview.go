package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/Fepozopo/rgbedit/pkg/stdimg"
)

// Terminal preview for the kitty graphics protocol, the iTerm2 inline-image
// protocol (also spoken by WezTerm, VSCode and others) and chafa as a character
// cell fallback. PREVIEW_BACKEND forces one of "kitty", "inline" or "chafa".

// Character cell assumptions used to size previews.
const (
	cellW    = 8
	cellH    = 16
	maxCols  = 80
	maxRows  = 40
	minCols  = 6
	minRows  = 3
	kittyMax = 4096 // base64 bytes per kitty chunk
)

func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "kitty") || strings.Contains(term, "ghostty")
}

func isInlineImageCapable() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "Hyper", "vscode", "Tabby", "Bobcat":
		return true
	}
	return os.Getenv("ITERM_SESSION_ID") != ""
}

func hasChafa() bool {
	_, err := exec.LookPath("chafa")
	return err == nil
}

// PreviewSize is the cell and pixel box a preview is fitted into.
type PreviewSize struct {
	Cols, Rows              int
	PixelWidth, PixelHeight int
}

// computePreviewSize fits a width x height image into the preview box without
// upscaling, keeping the aspect ratio.
func computePreviewSize(width, height int) PreviewSize {
	if width <= 0 || height <= 0 {
		return PreviewSize{Cols: minCols, Rows: minRows, PixelWidth: minCols * cellW, PixelHeight: minRows * cellH}
	}
	scale := 1.0
	if s := float64(maxCols*cellW) / float64(width); s < scale {
		scale = s
	}
	if s := float64(maxRows*cellH) / float64(height); s < scale {
		scale = s
	}
	pw := clamp(int(float64(width)*scale+0.5), 1, maxCols*cellW)
	ph := clamp(int(float64(height)*scale+0.5), 1, maxRows*cellH)
	cols := clamp((pw+cellW/2)/cellW, minCols, maxCols)
	rows := clamp((ph+cellH/2)/cellH, minRows, maxRows)
	return PreviewSize{Cols: cols, Rows: rows, PixelWidth: pw, PixelHeight: ph}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Previewer renders images inline in the terminal.
type Previewer struct {
	Out     io.Writer
	Backend string // forced backend, or "" to detect
	Log     logrus.FieldLogger
}

// NewPreviewer returns a Previewer writing to stdout with cfg's backend.
func NewPreviewer(cfg Config, log logrus.FieldLogger) *Previewer {
	return &Previewer{Out: os.Stdout, Backend: cfg.PreviewBackend, Log: log}
}

// backend resolves the protocol to use, or "" when none is available.
func (p *Previewer) backend() string {
	switch p.Backend {
	case "kitty", "inline", "chafa":
		return p.Backend
	case "iterm", "wezterm":
		return "inline"
	}
	switch {
	case isKitty():
		return "kitty"
	case isInlineImageCapable():
		return "inline"
	case hasChafa():
		return "chafa"
	}
	return ""
}

// Supported reports whether any preview backend is usable.
func (p *Previewer) Supported() bool { return p.backend() != "" }

// Preview downsizes img to the preview box, encodes it as PNG and sends it with
// the selected backend.
func (p *Previewer) Preview(img *stdimg.Image) error {
	if img.Empty() {
		return fmt.Errorf("nothing to preview")
	}
	backend := p.backend()
	if backend == "" {
		return fmt.Errorf("no preview backend available")
	}
	size := computePreviewSize(img.Width(), img.Height())
	thumb := imaging.Fit(img.ToNRGBA(), size.PixelWidth, size.PixelHeight, imaging.Box)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return fmt.Errorf("png encode failed: %w", err)
	}
	if p.Log != nil {
		p.Log.WithFields(logrus.Fields{
			"backend": backend,
			"cols":    size.Cols,
			"rows":    size.Rows,
			"bytes":   buf.Len(),
		}).Debug("preview")
	}

	switch backend {
	case "kitty":
		return p.sendKitty(buf.Bytes(), size)
	case "inline":
		return p.sendInline(buf.Bytes(), size)
	default:
		return p.sendChafa(buf.Bytes(), size)
	}
}

// sendKitty transmits PNG data with the kitty graphics protocol, chunked to
// kittyMax base64 bytes. Only the first chunk carries the control keys.
func (p *Previewer) sendKitty(data []byte, size PreviewSize) error {
	enc := base64.StdEncoding.EncodeToString(data)
	for pos := 0; pos < len(enc); pos += kittyMax {
		end := pos + kittyMax
		if end > len(enc) {
			end = len(enc)
		}
		more := "0"
		if end < len(enc) {
			more = "1"
		}
		var seq string
		if pos == 0 {
			seq = fmt.Sprintf("\x1b_Ga=T,f=100,t=d,q=2,c=%d,r=%d,m=%s;%s\x1b\\", size.Cols, size.Rows, more, enc[pos:end])
		} else {
			seq = "\x1b_Gm=" + more + ";" + enc[pos:end] + "\x1b\\"
		}
		if _, err := io.WriteString(p.Out, seq); err != nil {
			return err
		}
	}
	_, err := io.WriteString(p.Out, "\n")
	return err
}

// sendInline emits the iTerm2 OSC 1337 inline file sequence.
func (p *Previewer) sendInline(data []byte, size PreviewSize) error {
	seq := fmt.Sprintf("\x1b]1337;File=name=preview.png;inline=1;size=%d;width=%dpx;height=%dpx:%s\a\n",
		len(data), size.PixelWidth, size.PixelHeight, base64.StdEncoding.EncodeToString(data))
	_, err := io.WriteString(p.Out, seq)
	return err
}

// sendChafa pipes PNG data to chafa for a block-character rendering.
func (p *Previewer) sendChafa(data []byte, size PreviewSize) error {
	cmd := exec.Command("chafa", "--fill=block", "--symbols=block", "-s", fmt.Sprintf("%dx%d", size.Cols, size.Rows), "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = p.Out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("chafa failed: %w", err)
	}
	return nil
}
