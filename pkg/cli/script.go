package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Fepozopo/rgbedit/pkg/stdimg"
)

// ErrNoImage is returned when a script edits or saves before anything is loaded.
var ErrNoImage = errors.New("no image loaded")

// ScriptRunner executes editing scripts. Each non-blank line is one statement;
// '#' starts a comment. Statements:
//
//	load <path>
//	save <path>
//	undo
//	revert
//	rgb-split <red-path> <green-path> <blue-path>
//	rgb-combine <red-path> <green-path> <blue-path>
//	<command> [args...]
//
// where <command> is any name in stdimg.Commands.
type ScriptRunner struct {
	Session     *Session
	Meta        *MetaStore
	JPEGQuality int
	Out         io.Writer
	Log         logrus.FieldLogger
}

// NewScriptRunner returns a runner with no image loaded.
func NewScriptRunner(cfg Config, out io.Writer, log logrus.FieldLogger) *ScriptRunner {
	return &ScriptRunner{
		Session:     &Session{},
		Meta:        NewMetaStore(stdimg.Commands),
		JPEGQuality: cfg.JPEGQuality,
		Out:         out,
		Log:         log,
	}
}

// Run executes every statement in r and stops at the first failure. Errors carry
// the 1-based line number.
func (sr *ScriptRunner) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := sr.Exec(fields[0], fields[1:]); err != nil {
			return fmt.Errorf("line %d: %s: %w", n, fields[0], err)
		}
	}
	return sc.Err()
}

// Exec runs a single statement.
func (sr *ScriptRunner) Exec(name string, args []string) error {
	if sr.Log != nil {
		sr.Log.WithFields(logrus.Fields{"statement": name, "args": strings.Join(args, " ")}).Debug("script")
	}
	switch name {
	case "load":
		if len(args) != 1 {
			return fmt.Errorf("%w: usage: load <path>", stdimg.ErrInvalidArgument)
		}
		img, format, err := LoadImage(args[0])
		if err != nil {
			return err
		}
		sr.Session = NewSession(img, args[0], format)
		sr.printf("loaded %s (%dx%d)\n", args[0], img.Width(), img.Height())
		return nil

	case "save":
		if len(args) != 1 {
			return fmt.Errorf("%w: usage: save <path>", stdimg.ErrInvalidArgument)
		}
		if !sr.Session.Loaded() {
			return ErrNoImage
		}
		if err := SaveImage(args[0], sr.Session.Current(), sr.JPEGQuality); err != nil {
			return err
		}
		sr.printf("saved %s\n", args[0])
		return nil

	case "undo":
		if !sr.Session.Loaded() {
			return ErrNoImage
		}
		if !sr.Session.Undo() {
			return fmt.Errorf("nothing to undo")
		}
		return nil

	case "revert":
		if !sr.Session.Loaded() {
			return ErrNoImage
		}
		sr.Session.Revert()
		return nil

	case "rgb-split":
		if len(args) != 3 {
			return fmt.Errorf("%w: usage: rgb-split <red-path> <green-path> <blue-path>", stdimg.ErrInvalidArgument)
		}
		if !sr.Session.Loaded() {
			return ErrNoImage
		}
		r, g, b := sr.Session.Current().SplitChannels()
		for i, img := range []*stdimg.Image{r, g, b} {
			if err := SaveImage(args[i], img, sr.JPEGQuality); err != nil {
				return err
			}
		}
		sr.printf("split into %s\n", strings.Join(args, ", "))
		return nil

	case "rgb-combine":
		if len(args) != 3 {
			return fmt.Errorf("%w: usage: rgb-combine <red-path> <green-path> <blue-path>", stdimg.ErrInvalidArgument)
		}
		var parts [3]*stdimg.Image
		format := ""
		for i, p := range args {
			img, f, err := LoadImage(p)
			if err != nil {
				return err
			}
			parts[i], format = img, f
		}
		out, err := stdimg.ApplyCombine(parts[0], parts[1], parts[2])
		if err != nil {
			return err
		}
		if sr.Session.Loaded() {
			sr.Session.Push(out)
		} else {
			sr.Session = NewSession(out, "", format)
		}
		sr.printf("combined %s\n", strings.Join(args, ", "))
		return nil
	}

	if _, ok := sr.Meta.Lookup(name); !ok {
		return stdimg.ErrUnknownCommand
	}
	if !sr.Session.Loaded() {
		return ErrNoImage
	}
	norm, err := sr.Meta.NormalizeArgs(name, args)
	if err != nil {
		return fmt.Errorf("%w: %v", stdimg.ErrInvalidArgument, err)
	}
	if _, err := sr.Session.Apply(name, norm); err != nil {
		return err
	}
	sr.printf("applied %s\n", name)
	return nil
}

func (sr *ScriptRunner) printf(format string, args ...any) {
	if sr.Out != nil {
		fmt.Fprintf(sr.Out, format, args...)
	}
}
