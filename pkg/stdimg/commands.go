// Package stdimg: authoritative registry of engine commands.
//
// This file mirrors the commands implemented in ApplyCommand in
// pkg/stdimg/engine.go. Keep this list up-to-date when you add or
// modify commands so callers (CLI, docs, help text) can read a single
// source of truth.

package stdimg

// ArgSpec describes a single argument for a command. Min and Max, when set,
// bound numeric values inclusively.
type ArgSpec struct {
	Name        string // human name
	Type        string // "int", "percent", "path"
	Required    bool
	Default     string // textual default (for help only)
	Description string
	Min         *float64
	Max         *float64
}

// CommandSpec defines a single command and its expected arguments.
type CommandSpec struct {
	Name        string
	Args        []ArgSpec
	Usage       string // short usage string
	Description string // brief description
	Splittable  bool   // accepts a trailing split percentage for before/after preview
}

func bound(v float64) *float64 { return &v }

func intArg(name string, lo, hi float64, desc string) ArgSpec {
	return ArgSpec{Name: name, Type: "int", Required: true, Description: desc, Min: bound(lo), Max: bound(hi)}
}

// splitArg is appended to every splittable command.
var splitArg = ArgSpec{
	Name:        "split",
	Type:        "percent",
	Default:     "100",
	Description: "percentage of width (from the left) showing the effect; the rest shows the original",
	Min:         bound(0),
	Max:         bound(100),
}

// Commands is the authoritative list of commands implemented by the engine.
// Keep this synchronized with ApplyCommand in pkg/stdimg/engine.go.
var Commands = []CommandSpec{
	{Name: "red-component", Usage: "red-component", Description: "Keep only the red channel."},
	{Name: "green-component", Usage: "green-component", Description: "Keep only the green channel."},
	{Name: "blue-component", Usage: "blue-component", Description: "Keep only the blue channel."},
	{
		Name:        "value-component",
		Args:        []ArgSpec{splitArg},
		Usage:       "value-component [split]",
		Description: "Grayscale from max(r,g,b).",
		Splittable:  true,
	},
	{
		Name:        "intensity-component",
		Args:        []ArgSpec{splitArg},
		Usage:       "intensity-component [split]",
		Description: "Grayscale from the channel mean.",
		Splittable:  true,
	},
	{
		Name:        "luma-component",
		Args:        []ArgSpec{splitArg},
		Usage:       "luma-component [split]",
		Description: "Grayscale from Rec.709 luma.",
		Splittable:  true,
	},
	{Name: "horizontal-flip", Usage: "horizontal-flip", Description: "Mirror left to right."},
	{Name: "vertical-flip", Usage: "vertical-flip", Description: "Mirror top to bottom."},
	{
		Name:        "brighten",
		Args:        []ArgSpec{intArg("increment", -255, 255, "amount added to every channel (negative darkens)")},
		Usage:       "brighten <increment>",
		Description: "Brighten or darken.",
	},
	{
		Name:        "blur",
		Args:        []ArgSpec{splitArg},
		Usage:       "blur [split]",
		Description: "3x3 Gaussian blur.",
		Splittable:  true,
	},
	{
		Name:        "sharpen",
		Args:        []ArgSpec{splitArg},
		Usage:       "sharpen [split]",
		Description: "5x5 sharpen.",
		Splittable:  true,
	},
	{
		Name:        "sepia",
		Args:        []ArgSpec{splitArg},
		Usage:       "sepia [split]",
		Description: "Sepia tone.",
		Splittable:  true,
	},
	{Name: "histogram", Usage: "histogram", Description: "Render the RGB histogram as a 256x256 image."},
	{
		Name:        "color-correct",
		Args:        []ArgSpec{splitArg},
		Usage:       "color-correct [split]",
		Description: "Align the channel histogram peaks.",
		Splittable:  true,
	},
	{
		Name: "levels-adjust",
		Args: []ArgSpec{
			intArg("black", 0, 255, "input value mapped to 0"),
			intArg("mid", 0, 255, "input value mapped to 128"),
			intArg("white", 0, 255, "input value mapped to 255"),
			splitArg,
		},
		Usage:       "levels-adjust <black> <mid> <white> [split]",
		Description: "Quadratic levels curve through black/mid/white.",
		Splittable:  true,
	},
	{
		Name:        "compress",
		Args:        []ArgSpec{{Name: "percent", Type: "percent", Required: true, Description: "share of distinct wavelet magnitudes to drop", Min: bound(0), Max: bound(100)}},
		Usage:       "compress <percent>",
		Description: "Lossy Haar wavelet compression.",
	},
}

// LookupCommand returns the spec registered under name.
func LookupCommand(name string) (CommandSpec, bool) {
	for _, c := range Commands {
		if c.Name == name {
			return c, true
		}
	}
	return CommandSpec{}, false
}
