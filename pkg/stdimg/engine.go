package stdimg

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ApplyCommand runs the named command against img and returns a new image.
// Splittable commands take an optional trailing split percentage: the left split%
// of the columns show the result, the rest show img unchanged. Omitting it is the
// same as 100.
func ApplyCommand(img *Image, commandName string, args []string) (*Image, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	spec, ok := LookupCommand(commandName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, commandName)
	}
	vals, split, err := parseArgs(spec, args)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var out *Image
	switch commandName {
	case "red-component":
		out = img.RedComponent()
	case "green-component":
		out = img.GreenComponent()
	case "blue-component":
		out = img.BlueComponent()
	case "value-component":
		out = img.ValueComponent()
	case "intensity-component":
		out = img.IntensityComponent()
	case "luma-component":
		out = img.LumaComponent()
	case "horizontal-flip":
		out = img.HorizontalFlip()
	case "vertical-flip":
		out = img.VerticalFlip()
	case "brighten":
		out = img.Brighten(vals[0])
	case "blur":
		out = img.Blur()
	case "sharpen":
		out = img.Sharpen()
	case "sepia":
		out = img.Sepia()
	case "histogram":
		out = RenderHistogram(ComputeHistogram(img))
	case "color-correct":
		out = ColorCorrect(img)
	case "levels-adjust":
		out, err = LevelsAdjust(img, vals[0], vals[1], vals[2])
		if err != nil {
			return nil, err
		}
	case "compress":
		var stats CompressionStats
		out, stats = CompressWithStats(img, vals[0])
		logger.WithFields(logrus.Fields{
			"grid":      stats.GridSize,
			"distinct":  stats.Distinct,
			"threshold": stats.Threshold,
			"zeroed":    stats.Zeroed,
			"encoded":   stats.EncodedBytes,
		}).Debug("compressed")
	default:
		return nil, fmt.Errorf("%w: %q has no implementation", ErrUnknownCommand, commandName)
	}

	if spec.Splittable && split < 100 {
		out = SplitView(out, img, split)
	}
	logger.WithFields(logrus.Fields{
		"command":  commandName,
		"args":     strings.Join(args, " "),
		"height":   out.Height(),
		"width":    out.Width(),
		"duration": time.Since(start),
	}).Debug("applied command")
	return out, nil
}

// ApplyCombine merges three images into one, taking red from r, green from g and
// blue from b. All three must share dimensions.
func ApplyCombine(r, g, b *Image) (*Image, error) {
	if r == nil || g == nil || b == nil {
		return nil, ErrNilImage
	}
	if r.Height() != g.Height() || r.Height() != b.Height() ||
		r.Width() != g.Width() || r.Width() != b.Width() {
		return nil, fmt.Errorf("%w: combine needs equal sizes, got %dx%d %dx%d %dx%d",
			ErrInvalidArgument, r.Width(), r.Height(), g.Width(), g.Height(), b.Width(), b.Height())
	}
	return CombineChannels(r, g, b), nil
}

// parseArgs validates args against spec. It returns the required integer values in
// order plus the split (100 when absent or not applicable).
func parseArgs(spec CommandSpec, args []string) ([]int, int, error) {
	var required []ArgSpec
	var optional []ArgSpec
	for _, a := range spec.Args {
		if a.Required {
			required = append(required, a)
		} else {
			optional = append(optional, a)
		}
	}
	if len(args) < len(required) || len(args) > len(required)+len(optional) {
		return nil, 0, fmt.Errorf("%w: usage: %s", ErrInvalidArgument, spec.Usage)
	}

	vals := make([]int, 0, len(args))
	for i, raw := range args {
		var a ArgSpec
		if i < len(required) {
			a = required[i]
		} else {
			a = optional[i-len(required)]
		}
		v, err := parseIntArg(a, raw)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", spec.Name, err)
		}
		vals = append(vals, v)
	}

	split := 100
	if spec.Splittable && len(vals) > len(required) {
		split = vals[len(required)]
	}
	return vals[:len(required)], split, nil
}

func parseIntArg(a ArgSpec, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidArgument, a.Name, raw)
	}
	if a.Min != nil && float64(v) < *a.Min {
		return 0, fmt.Errorf("%w: %s must be >= %g, got %d", ErrInvalidArgument, a.Name, *a.Min, v)
	}
	if a.Max != nil && float64(v) > *a.Max {
		return 0, fmt.Errorf("%w: %s must be <= %g, got %d", ErrInvalidArgument, a.Name, *a.Max, v)
	}
	return v, nil
}
