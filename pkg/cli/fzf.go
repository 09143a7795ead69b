package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Fepozopo/rgbedit/pkg/stdimg"
)

// imageGlobs lists the file types offered by the fzf file picker.
var imageGlobs = []string{"*.jpg", "*.jpeg", "*.png", "*.gif", "*.bmp", "*.tif", "*.tiff", "*.ppm", "*.pnm"}

// SelectCommandWithFzf displays the command registry in fzf and returns the selected name.
func SelectCommandWithFzf(commands []stdimg.CommandSpec) (string, error) {
	cmd := exec.Command("fzf", "--prompt=Command> ")
	cmd.Stdin = strings.NewReader(fzfCommandList(commands))

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running fzf: %w", err)
	}
	return parseFzfSelection(out.String())
}

// fzfCommandList formats one "name: description" line per command.
func fzfCommandList(commands []stdimg.CommandSpec) string {
	var b strings.Builder
	for _, c := range commands {
		fmt.Fprintf(&b, "%s: %s\n", c.Name, c.Description)
	}
	return b.String()
}

func parseFzfSelection(s string) (string, error) {
	name, _, _ := strings.Cut(strings.TrimSpace(s), ":")
	if name = strings.TrimSpace(name); name == "" {
		return "", fmt.Errorf("no command selected")
	}
	return name, nil
}

// SelectFileWithFzf lists image files under startDir in fzf and returns the chosen
// path. It needs find and fzf on PATH; the preview pane uses whichever terminal
// renderer the preview backend detection picks.
func SelectFileWithFzf(startDir string) (string, error) {
	var previewCmd string
	switch {
	case isKitty():
		previewCmd = "kitty +kitten icat --clear --transfer-mode=memory --stdin=no --place=${FZF_PREVIEW_COLUMNS}x${FZF_PREVIEW_LINES}@0x0 {} 2>/dev/null || chafa -s 80x40 {} 2>/dev/null"
	case isInlineImageCapable():
		previewCmd = "imgcat {} 2>/dev/null || chafa -s 80x40 {} 2>/dev/null"
	default:
		previewCmd = "chafa --fill=block --symbols=block -s 80x40 {} 2>/dev/null"
	}

	cmdStr := fmt.Sprintf(
		"find %s -type f \\( %s \\) | fzf --height 100%% --border --prompt='Files> ' --ansi --preview=%q --preview-window='right:60%%'",
		strconv.Quote(startDir),
		findNameExpr(imageGlobs),
		previewCmd,
	)
	cmd := exec.Command("bash", "-lc", cmdStr)

	var out bytes.Buffer
	cmd.Stdout = &out
	err := cmd.Run()
	clearKittyImages()
	if err != nil {
		return "", fmt.Errorf("error running fzf for files: %w", err)
	}

	selection := strings.TrimSpace(out.String())
	if selection == "" {
		return "", fmt.Errorf("no file selected")
	}
	return selection, nil
}

// findNameExpr builds "-iname 'a' -o -iname 'b'" for find.
func findNameExpr(globs []string) string {
	parts := make([]string, len(globs))
	for i, g := range globs {
		parts[i] = "-iname '" + g + "'"
	}
	return strings.Join(parts, " -o ")
}

// clearKittyImages emits the kitty graphics "delete" control sequence.
// Terminals that don't understand it will ignore it.
func clearKittyImages() {
	if isKitty() {
		fmt.Fprint(os.Stdout, "\x1b_Ga=d\x1b\\")
	}
}
