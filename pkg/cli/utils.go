package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/disintegration/imaging"
	"github.com/spakin/netpbm"

	"github.com/Fepozopo/rgbedit/pkg/stdimg"
)

// ErrUnsupportedFormat is returned for file extensions no codec handles.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Prompter reads whole lines from one shared reader so that no input is lost
// between prompts.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps r and w. Pass os.Stdin and os.Stdout for the terminal.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// Line displays a prompt and reads a full line of input. The result is trimmed.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// LineOrFzf reads a full line and treats a lone "/" as a request to pick a file
// with fzf. When fzf is unavailable or cancelled the prompt is shown again.
func (p *Prompter) LineOrFzf(prompt string) (string, error) {
	input, err := p.Line(prompt)
	if err != nil {
		return "", err
	}
	if input != "/" {
		return input, nil
	}
	sel, selErr := SelectFileWithFzf(".")
	if selErr == nil && sel != "" {
		fmt.Fprintf(p.out, " [fzf] %s\n", sel)
		return sel, nil
	}
	return p.Line(prompt)
}

// ReadKey returns the first non-space rune of the next line.
func (p *Prompter) ReadKey(prompt string) (rune, error) {
	line, err := p.Line(prompt)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return 0, nil
	}
	r, _ := utf8.DecodeRuneInString(line)
	return r, nil
}

// isNetpbm reports whether path names a PPM/PGM/PBM/PNM file.
func isNetpbm(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm", ".pgm", ".pbm", ".pnm":
		return true
	}
	return false
}

// LoadImage reads path into an Image and returns a lowercase format name.
// Netpbm files go through netpbm (plain and raw variants). Everything else goes
// through imaging, which honours the EXIF orientation of JPEGs.
func LoadImage(path string) (*stdimg.Image, string, error) {
	if isNetpbm(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		img, err := netpbm.Decode(f, &netpbm.DecodeOptions{Target: netpbm.PPM})
		if err != nil {
			return nil, "", fmt.Errorf("decode %s: %w", path, err)
		}
		return stdimg.FromImage(img), "ppm", nil
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return stdimg.FromImage(img), strings.ToLower(format.String()), nil
}

// SaveImage writes img to path, picking the encoder from the extension.
// .ppm and .pnm are written as plain (P3) text with a maximum value of 255.
func SaveImage(path string, img *stdimg.Image, jpegQuality int) error {
	if img == nil {
		return stdimg.ErrNilImage
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".ppm" || ext == ".pnm" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		err = netpbm.Encode(f, img.ToNRGBA(), &netpbm.EncodeOptions{
			Format:   netpbm.PPM,
			MaxValue: 255,
			Plain:    true,
		})
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return err
	}
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return imaging.Save(img.ToNRGBA(), path, imaging.JPEGQuality(jpegQuality))
}

// ImageInfo returns a one-line summary of img.
func ImageInfo(img *stdimg.Image, format string) string {
	if format == "" {
		format = "unknown"
	}
	return fmt.Sprintf("Format: %s, Width: %d, Height: %d", strings.ToUpper(format), img.Width(), img.Height())
}
