package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/rybkr/termkit/internal/cli"
	"github.com/rybkr/termkit/internal/nestlog"
	"github.com/rybkr/termkit/internal/termcolor"
)

// Build-time variables set via -ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(a.rootCommand().Run(os.Args))
}

// app holds the streams and the per-run color writer and logger shared by
// every subcommand.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// tick is the pause between progress steps.
	tick time.Duration

	cw  *termcolor.Writer
	log *nestlog.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		tick:   50 * time.Millisecond,
	}
}

func (a *app) rootCommand() *cli.Command {
	root := cli.NewCommand("termkit", "terminal colors, nested logs, progress bars and prompts",
		cli.WithVersion(version),
		cli.WithTitle("Termkit"),
		cli.WithOutput(a.stdout, a.stderr),
		cli.WithStrict(),
		cli.WithRun(a.runRoot),
	)
	a.addGlobalOptions(root)

	root.Action(a.paletteCommand())
	root.Action(a.paintCommand())
	root.Action(a.logCommand())
	root.Action(a.progressCommand())
	root.Action(a.askCommand())
	root.Action(a.command("version", "show build information", func(*cli.Command) error {
		a.printVersion()
		return nil
	}))
	return root
}

// command creates a subcommand whose action runs after setup.
func (a *app) command(name, description string, run func(*cli.Command) error) *cli.Command {
	c := cli.NewCommand(name, description,
		cli.WithOutput(a.stdout, a.stderr),
		cli.WithStrict(),
		cli.WithRun(func(c *cli.Command) error {
			if err := a.setup(c); err != nil {
				return err
			}
			return run(c)
		}),
	)
	a.addGlobalOptions(c)
	return c
}

// addGlobalOptions adds the color and log level flags every command
// accepts, skipping keys c already defines.
func (a *app) addGlobalOptions(c *cli.Command) {
	defined := make(map[string]bool)
	for _, o := range c.Options() {
		defined[o.Key] = true
	}
	if !defined["color"] {
		mustOption(c, "--color [mode]", "when to color output: auto, always or never, default: auto")
		mustOption(c, "--no-color", "never color output")
	}
	if !defined["verbose"] && !defined["quiet"] {
		c.AddLogOptions(nil, nil)
	}
}

func mustOption(c *cli.Command, spec, description string) {
	if err := c.Option(spec, description); err != nil {
		panic(err)
	}
}

// setup builds the color writer and logger from c's parsed flags and the
// environment, and installs the logger as the slog default.
func (a *app) setup(c *cli.Command) error {
	mode, err := colorMode(c)
	if err != nil {
		return err
	}
	if f, ok := a.stdout.(*os.File); ok {
		a.cw = termcolor.NewWriter(f, mode)
	} else {
		p := termcolor.ProfileNone
		if mode == termcolor.ColorAlways {
			p = termcolor.ProfileBasic
		}
		a.cw = termcolor.NewProfileWriter(a.stdout, p)
	}

	level := nestlog.ParseLevel(os.Getenv("LOG_LEVEL"))
	verbose := flag(c, "verbose")
	if verbose {
		level = slog.LevelDebug
	}
	a.log = nestlog.Default(a.cw)
	a.log.Configure(
		nestlog.WithOutput(a.stdout, a.stderr),
		nestlog.WithVerbose(verbose),
		nestlog.WithQuiet(flag(c, "quiet")),
		nestlog.WithLevel(level),
	)
	slog.SetDefault(slog.New(a.log.Handler()))

	for n := c; n != nil; n = n.Parent() {
		n.TitleFunc = cli.ColorTitles(a.cw)
		if n.Parent() == n {
			break
		}
	}
	return nil
}

// lookup returns the value given for key on c or, for flags placed before
// the subcommand name, on one of its parents.
func lookup(c *cli.Command, key string) (any, bool) {
	for n := c; n != nil; n = n.Parent() {
		if v, ok := n.Lookup(key); ok {
			return v, true
		}
		if n.Parent() == n {
			break
		}
	}
	return nil, false
}

func flag(c *cli.Command, key string) bool {
	v, _ := lookup(c, key)
	b, _ := v.(bool)
	return b
}

// colorMode reads --color and --no-color, which share the "color" key.
func colorMode(c *cli.Command) (termcolor.ColorMode, error) {
	v, _ := lookup(c, "color")
	switch v := v.(type) {
	case bool:
		if !v {
			return termcolor.ColorNever, nil
		}
		return termcolor.ColorAuto, nil
	case string:
		return termcolor.ParseColorMode(v)
	default:
		return termcolor.ColorAuto, nil
	}
}

func (a *app) runRoot(c *cli.Command) error {
	if err := a.setup(c); err != nil {
		return err
	}
	args := c.Args()
	if len(args) == 0 {
		c.PrintHelp()
		return nil
	}
	err := fmt.Errorf("%w: %q is not a termkit command", cli.ErrUnknown, args[0])
	if s := cli.Suggest(args[0], c.CommandNames()); s != "" {
		err = fmt.Errorf("%w (did you mean %q?)", err, s)
	}
	return err
}

func (a *app) printVersion() {
	fmt.Fprintf(a.stdout, "Termkit %s\n", version)
	fmt.Fprintf(a.stdout, "  commit:     %s\n", commit)
	fmt.Fprintf(a.stdout, "  built:      %s\n", buildDate)
	fmt.Fprintf(a.stdout, "  go version: %s\n", runtime.Version())
	fmt.Fprintf(a.stdout, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
