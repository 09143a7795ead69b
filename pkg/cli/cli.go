package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Fepozopo/rgbedit/pkg/stdimg"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Commands available:")
	fmt.Fprintln(w, "  /  - select and apply command")
	fmt.Fprintln(w, "  o  - open another image")
	fmt.Fprintln(w, "  s  - save current image")
	fmt.Fprintln(w, "  z  - undo last edit")
	fmt.Fprintln(w, "  r  - revert to the opened image")
	fmt.Fprintln(w, "  u  - check for updates")
	fmt.Fprintln(w, "  h  - show this help message")
	fmt.Fprintln(w, "  q  - quit")
}

// Editor is the interactive single-key editing loop.
type Editor struct {
	Config  Config
	Session *Session
	Meta    *MetaStore
	Preview *Previewer
	Log     logrus.FieldLogger

	prompt *Prompter
	out    io.Writer
	// selectCommand picks a command interactively; fzf by default.
	selectCommand func([]stdimg.CommandSpec) (string, error)
	// selectFile picks a file interactively; fzf by default.
	selectFile func(string) (string, error)
}

// NewEditor builds an editor reading keys from in and writing to out.
func NewEditor(cfg Config, log logrus.FieldLogger, in io.Reader, out io.Writer) *Editor {
	p := NewPreviewer(cfg, log)
	p.Out = out
	return &Editor{
		Config:        cfg,
		Session:       &Session{},
		Meta:          NewMetaStore(stdimg.Commands),
		Preview:       p,
		Log:           log,
		prompt:        NewPrompter(in, out),
		out:           out,
		selectCommand: SelectCommandWithFzf,
		selectFile:    SelectFileWithFzf,
	}
}

// RunCLI starts the interactive editor on stdin/stdout, optionally opening path.
func RunCLI(cfg Config, log logrus.FieldLogger, path string) error {
	return NewEditor(cfg, log, os.Stdin, os.Stdout).Run(path)
}

// Run opens path (when non-empty) and processes keys until 'q' or end of input.
func (e *Editor) Run(path string) error {
	if path != "" {
		if err := e.open(path); err != nil {
			return err
		}
	}
	fmt.Fprintln(e.out, "RGB Image Editor")
	usage(e.out)

	for {
		key, err := e.prompt.ReadKey("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		switch key {
		case '/':
			e.applySelected()
		case 'o':
			e.openSelected()
		case 's':
			e.save()
		case 'z':
			if !e.Session.Loaded() || !e.Session.Undo() {
				fmt.Fprintln(e.out, "nothing to undo")
				continue
			}
			fmt.Fprintf(e.out, "undone (%d edits left)\n", e.Session.Depth())
			e.show()
		case 'r':
			if !e.Session.Loaded() {
				fmt.Fprintln(e.out, "no image loaded")
				continue
			}
			e.Session.Revert()
			fmt.Fprintln(e.out, "reverted to original")
			e.show()
		case 'u':
			if err := CheckForUpdates(e.Config.UpdateRepo, e.prompt); err != nil {
				fmt.Fprintf(e.out, "update check error: %v\n", err)
			}
		case 'h':
			usage(e.out)
		case 'q':
			fmt.Fprintln(e.out, "Exiting...")
			return nil
		}
	}
}

func (e *Editor) open(path string) error {
	img, format, err := LoadImage(path)
	if err != nil {
		return fmt.Errorf("failed to read image %s: %w", path, err)
	}
	e.Session = NewSession(img, path, format)
	fmt.Fprintf(e.out, "Opened %s\n", path)
	e.show()
	return nil
}

// show previews the current image when enabled and prints its summary.
func (e *Editor) show() {
	cur := e.Session.Current()
	if cur == nil {
		return
	}
	if e.Config.Preview {
		if err := e.Preview.Preview(cur); err != nil && e.Log != nil {
			e.Log.WithError(err).Debug("preview skipped")
		}
	}
	fmt.Fprintln(e.out, ImageInfo(cur, e.Session.Format))
}

func (e *Editor) openSelected() {
	path, err := e.selectFile(".")
	if err != nil || path == "" {
		path, _ = e.prompt.Line("Enter path to image to open (leave empty to cancel): ")
		if path == "" {
			fmt.Fprintln(e.out, "open cancelled")
			return
		}
	}
	if err := e.open(path); err != nil {
		fmt.Fprintln(e.out, err)
	}
}

func (e *Editor) save() {
	if !e.Session.Loaded() {
		fmt.Fprintln(e.out, "no image loaded")
		return
	}
	path, _ := e.prompt.Line("Enter output filename: ")
	if path == "" {
		fmt.Fprintln(e.out, "no filename provided")
		return
	}
	if err := SaveImage(path, e.Session.Current(), e.Config.JPEGQuality); err != nil {
		fmt.Fprintf(e.out, "failed to write image: %v\n", err)
		return
	}
	fmt.Fprintf(e.out, "Saved to %s\n", path)
}

func (e *Editor) applySelected() {
	if !e.Session.Loaded() {
		fmt.Fprintln(e.out, "No image loaded. Press 'o' to open an image first, or pass an image path.")
		return
	}
	name, err := e.selectCommand(e.Meta.Commands)
	if err != nil || name == "" {
		fmt.Fprintln(e.out, "Command selection:")
		for i, c := range e.Meta.Commands {
			fmt.Fprintf(e.out, "  %d) %s - %s\n", i+1, c.Name, c.Description)
		}
		sel, _ := e.prompt.Line("Enter number or command name (leave empty to cancel): ")
		if sel == "" {
			fmt.Fprintln(e.out, "selection cancelled")
			return
		}
		if name, err = e.Meta.Resolve(sel); err != nil {
			fmt.Fprintln(e.out, err)
			return
		}
	}

	c, ok := e.Meta.Lookup(name)
	if !ok {
		fmt.Fprintf(e.out, "unknown command: %s\n", name)
		return
	}
	tooltip, _, _ := e.Meta.GetCommandHelp(name)
	fmt.Fprintln(e.out, "\n"+tooltip+"\n")

	raw := make([]string, len(c.Args))
	for i, a := range c.Args {
		label := fmt.Sprintf("%s (%s): ", a.Name, a.Type)
		if !a.Required {
			label = fmt.Sprintf("%s (%s, optional, default %s): ", a.Name, a.Type, a.Default)
		}
		raw[i], _ = e.prompt.Line(label)
	}
	args, err := e.Meta.NormalizeArgs(name, raw)
	if err != nil {
		fmt.Fprintf(e.out, "input validation error: %v\n", err)
		return
	}
	if _, err := e.Session.Apply(name, args); err != nil {
		fmt.Fprintf(e.out, "apply command error: %v\n", err)
		return
	}
	fmt.Fprintf(e.out, "Applied %s\n", name)
	e.show()
}
