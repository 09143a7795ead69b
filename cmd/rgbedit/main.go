// Command rgbedit edits RGB images from the terminal.
//
// Usage:
//
//	rgbedit edit [image]                          interactive editor
//	rgbedit apply -i in -o out <command> [args]   run one command
//	rgbedit combine -o out <red> <green> <blue>   merge channel images
//	rgbedit run <script>                          run an editing script
//	rgbedit commands                              list commands
//	rgbedit version | update
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Fepozopo/rgbedit/pkg/cli"
	"github.com/Fepozopo/rgbedit/pkg/stdimg"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "rgbedit: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg := cli.LoadConfig()
	if len(args) == 0 {
		args = []string{"edit"}
	}

	switch args[0] {
	case "edit":
		return runEdit(cfg, args[1:])
	case "apply":
		return runApply(cfg, args[1:], stdout)
	case "combine":
		return runCombine(cfg, args[1:], stdout)
	case "run":
		return runScript(cfg, args[1:], stdout)
	case "commands":
		for _, c := range stdimg.Commands {
			fmt.Fprintf(stdout, "%-22s %s\n", c.Usage, c.Description)
		}
		return nil
	case "version":
		fmt.Fprintf(stdout, "rgbedit %s\n", cli.Version)
		return nil
	case "update":
		return cli.CheckForUpdates(cfg.UpdateRepo, cli.NewPrompter(os.Stdin, stdout))
	case "-h", "-help", "--help", "help":
		printUsage(stdout)
		return nil
	default:
		// a bare image path opens the editor
		if _, err := os.Stat(args[0]); err == nil {
			return runEdit(cfg, args)
		}
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  rgbedit edit [image]                          Interactive editor
  rgbedit apply -i in -o out <command> [args]   Apply one command
  rgbedit combine -o out <red> <green> <blue>   Merge channel images
  rgbedit run <script>                          Run an editing script
  rgbedit commands                              List commands
  rgbedit version                               Print version
  rgbedit update                                Self-update from GitHub releases

Run "rgbedit <command> -h" for command-specific options.
`)
}

// newFlagSet adds the flags every subcommand shares.
func newFlagSet(name string, cfg *cli.Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.BoolFunc("debug", "enable debug logging", func(string) error {
		cfg.LogLevel = logrus.DebugLevel
		return nil
	})
	fs.IntVar(&cfg.JPEGQuality, "q", cfg.JPEGQuality, "JPEG quality 1-100")
	return fs
}

func runEdit(cfg cli.Config, args []string) error {
	fs := newFlagSet("edit", &cfg)
	noPreview := fs.Bool("no-preview", false, "disable terminal previews")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *noPreview {
		cfg.Preview = false
	}
	log := cli.InitLogger(cfg)
	return cli.RunCLI(cfg, log, fs.Arg(0))
}

func runApply(cfg cli.Config, args []string, stdout io.Writer) error {
	fs := newFlagSet("apply", &cfg)
	in := fs.String("i", "", "input image")
	out := fs.String("o", "", "output image")
	stats := fs.Bool("stats", false, "print compression statistics (compress only)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" || fs.NArg() < 1 {
		return fmt.Errorf("apply: usage: rgbedit apply -i in -o out <command> [args]")
	}
	log := cli.InitLogger(cfg)
	name := fs.Arg(0)

	meta := cli.NewMetaStore(stdimg.Commands)
	cmdArgs, err := meta.NormalizeArgs(name, fs.Args()[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	img, _, err := cli.LoadImage(*in)
	if err != nil {
		return err
	}

	var res *stdimg.Image
	if *stats && name == "compress" {
		res, err = compressWithStats(img, cmdArgs, stdout)
	} else {
		res, err = stdimg.ApplyCommand(img, name, cmdArgs)
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"in": *in, "out": *out, "command": name}).Debug("apply")
	return cli.SaveImage(*out, res, cfg.JPEGQuality)
}

func compressWithStats(img *stdimg.Image, args []string, stdout io.Writer) (*stdimg.Image, error) {
	var percent int
	if _, err := fmt.Sscan(args[0], &percent); err != nil {
		return nil, fmt.Errorf("compress: %w", stdimg.ErrInvalidArgument)
	}
	res, st := stdimg.CompressWithStats(img, percent)
	fmt.Fprintf(stdout, "grid %dx%d, %d coefficients, %d distinct magnitudes\n",
		st.GridSize, st.GridSize, st.Coefficients, st.Distinct)
	fmt.Fprintf(stdout, "threshold %.4f, zeroed %d, kept %.1f%%, zstd %d bytes\n",
		st.Threshold, st.Zeroed, 100*st.Ratio(), st.EncodedBytes)
	return res, nil
}

func runCombine(cfg cli.Config, args []string, stdout io.Writer) error {
	fs := newFlagSet("combine", &cfg)
	out := fs.String("o", "", "output image")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" || fs.NArg() != 3 {
		return fmt.Errorf("combine: usage: rgbedit combine -o out <red> <green> <blue>")
	}
	cli.InitLogger(cfg)
	var parts [3]*stdimg.Image
	for i, p := range fs.Args() {
		img, _, err := cli.LoadImage(p)
		if err != nil {
			return err
		}
		parts[i] = img
	}
	res, err := stdimg.ApplyCombine(parts[0], parts[1], parts[2])
	if err != nil {
		return err
	}
	if err := cli.SaveImage(*out, res, cfg.JPEGQuality); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s\n", *out)
	return nil
}

func runScript(cfg cli.Config, args []string, stdout io.Writer) error {
	fs := newFlagSet("run", &cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("run: usage: rgbedit run <script>")
	}
	log := cli.InitLogger(cfg)

	var r io.Reader = os.Stdin
	if p := fs.Arg(0); p != "-" {
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	return cli.NewScriptRunner(cfg, stdout, log).Run(r)
}
