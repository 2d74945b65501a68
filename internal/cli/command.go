package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrHelp is returned by Parse after the help menu was printed.
	ErrHelp = errors.New("help requested")
	// ErrVersion is returned by Parse after the version was printed.
	ErrVersion = errors.New("version requested")
	// ErrMissingValue is returned when a value option ends the argument list.
	ErrMissingValue = errors.New("missing value")
	// ErrMissingOption is returned when a function-bound command lacks a
	// mandatory option.
	ErrMissingOption = errors.New("missing required option")
	// ErrUnknown is returned by strict commands for unrecognized flags and
	// subcommands.
	ErrUnknown = errors.New("unknown argument")
)

// ExitError carries a specific exit code out of a command's action.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Command is a node in a command tree. Each node owns its options, its
// subcommands, and an optional action run after its arguments are parsed.
//
// A subcommand is a full Command, so trees may nest to any depth:
//
//	root := cli.NewCommand("tool", "does things", cli.WithVersion("1.0.0"))
//	root.Option("-v, --verbose", "show more logs")
//	build := cli.NewCommand("build", "build the docs")
//	build.Option("-o, --output [dir]", "output directory, default: _build")
//	root.Action(build)
//	os.Exit(root.Run(os.Args))
type Command struct {
	Name        string
	Description string
	Version     string
	Usage       string
	Title       string

	// Strict rejects unknown flags and subcommands instead of treating them
	// as positional arguments.
	Strict bool

	Stdout io.Writer
	Stderr io.Writer

	// TitleFunc styles section titles in the help menu.
	TitleFunc func(string) string

	options  []*Option
	commands map[string]*Command
	order    []string // insertion order preserved for help
	run      func(*Command) error
	parent   *Command

	results map[string]any
	args    []string
	pending []string // tokens not yet consumed by Parse
}

// CommandOption configures a Command at construction.
type CommandOption func(*Command)

// WithVersion sets the version and registers -V, --version.
func WithVersion(v string) CommandOption { return func(c *Command) { c.Version = v } }

// WithUsage replaces the generated usage line.
func WithUsage(u string) CommandOption { return func(c *Command) { c.Usage = u } }

// WithTitle sets the program title shown in help and version output.
func WithTitle(t string) CommandOption { return func(c *Command) { c.Title = t } }

// WithOutput redirects help and error output.
func WithOutput(stdout, stderr io.Writer) CommandOption {
	return func(c *Command) {
		c.Stdout = stdout
		c.Stderr = stderr
	}
}

// WithStrict makes unknown flags and subcommands an error.
func WithStrict() CommandOption { return func(c *Command) { c.Strict = true } }

// WithRun sets the action run after the command's arguments are parsed.
func WithRun(fn func(*Command) error) CommandOption { return func(c *Command) { c.run = fn } }

// NewCommand creates a Command with a -h, --help option and, when a version
// is configured, a -V, --version option.
func NewCommand(name, description string, opts ...CommandOption) *Command {
	c := &Command{
		Name:        name,
		Description: description,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		commands:    make(map[string]*Command),
		results:     make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.addDefaultOptions()
	return c
}

func (c *Command) addDefaultOptions() {
	c.mustOption("-h, --help", "output the help menu", WithAction(func() error {
		c.PrintHelp()
		return ErrHelp
	}))
	if c.Version != "" {
		c.mustOption("-V, --version", "output the version number", WithAction(func() error {
			c.PrintVersion()
			return ErrVersion
		}))
	}
}

func (c *Command) mustOption(name, description string, settings ...OptionSetting) {
	if err := c.Option(name, description, settings...); err != nil {
		panic(fmt.Sprintf("cli: %v", err))
	}
}

// Option parses spec and adds the resulting option.
//
//	c.Option("-v, --verbose", "show more logs")
//	c.Option("--tag <tag>", "tag of the package")
//	c.Option("-s, --source [dir]", "source directory, default: src")
func (c *Command) Option(spec, description string, settings ...OptionSetting) error {
	o, err := ParseOption(spec, description, settings...)
	if err != nil {
		return err
	}
	c.AddOption(o)
	return nil
}

// AddOption adds a prepared option. Earlier options win when flags collide.
func (c *Command) AddOption(o *Option) {
	c.options = append(c.options, o)
}

// AddLogOptions adds -v, --verbose and -q, --quiet, running the given
// functions when the flags are seen. Either function may be nil.
func (c *Command) AddLogOptions(verbose, quiet func() error) {
	c.mustOption("-v, --verbose", "show more logs", WithAction(verbose))
	c.mustOption("-q, --quiet", "show less logs", WithAction(quiet))
}

// Action attaches sub as a subcommand. It panics if a subcommand with the
// same name has already been attached.
func (c *Command) Action(sub *Command) {
	if _, exists := c.commands[sub.Name]; exists {
		panic(fmt.Sprintf("cli: duplicate command %q", sub.Name))
	}
	c.commands[sub.Name] = sub
	c.order = append(c.order, sub.Name)
	if sub.parent == nil {
		sub.parent = c
	}
}

// Subcommand returns the named subcommand, or nil if not found.
func (c *Command) Subcommand(name string) *Command {
	return c.commands[name]
}

// Subcommands returns the attached subcommands in insertion order.
func (c *Command) Subcommands() []*Command {
	subs := make([]*Command, len(c.order))
	for i, n := range c.order {
		subs[i] = c.commands[n]
	}
	return subs
}

// CommandNames returns all subcommand names in sorted order.
func (c *Command) CommandNames() []string {
	names := slices.Clone(c.order)
	sort.Strings(names)
	return names
}

// Options returns the command's options in declaration order.
func (c *Command) Options() []*Option {
	return slices.Clone(c.options)
}

// Parent returns the command this one is attached to, or nil for the root.
func (c *Command) Parent() *Command {
	return c.parent
}

// Args returns the positional arguments of the last Parse. After a
// subcommand parses, its positional arguments are visible on the parent too.
func (c *Command) Args() []string {
	return slices.Clone(c.args)
}

// Lookup returns the value parsed for key and whether the option was given.
// Keys are long names without dashes ("verbose", "color" for "--no-color")
// or the short flag for short-only options ("-f").
func (c *Command) Lookup(key string) (any, bool) {
	v, ok := c.results[key]
	return v, ok
}

// Get returns the value parsed for key, falling back to the option's
// default when it was not given.
func (c *Command) Get(key string) any {
	if v, ok := c.results[key]; ok {
		return v
	}
	for _, o := range c.options {
		if o.Key == key {
			return o.Default
		}
	}
	return nil
}

// String returns Get(key) formatted as a string, or "" when unset.
func (c *Command) String(key string) string {
	switch v := c.Get(key).(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Bool returns Get(key) as a bool; non-boolean values report whether set.
func (c *Command) Bool(key string) bool {
	switch v := c.Get(key).(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	default:
		return true
	}
}

// ParseString splits s on whitespace and parses the result.
func (c *Command) ParseString(s string) error {
	return c.Parse(strings.Fields(s))
}

// Parse walks argv, whose first element is the program or subcommand name.
// An empty argv parses os.Args.
//
// Flags are matched against the command's options. If the first positional
// argument names a subcommand, parsing continues there with the remaining
// tokens, and the flags seen so far stay on this command. Everything else
// is collected as positional arguments; a lone "--" ends flag parsing.
// Finally the command's action runs.
func (c *Command) Parse(argv []string) error {
	if len(argv) == 0 {
		argv = os.Args
	}
	c.results = make(map[string]any)
	c.args = nil
	c.pending = slices.Clone(argv[1:])

	if len(c.pending) == 0 {
		return c.invoke()
	}

	for len(c.pending) > 0 {
		arg := c.pending[0]
		c.pending = c.pending[1:]

		if arg == "--" {
			c.args = append(c.args, c.pending...)
			c.pending = nil
			break
		}

		matched, err := c.parseOption(arg)
		if err != nil {
			return err
		}
		if matched {
			continue
		}
		if len(c.args) == 0 && !strings.HasPrefix(arg, "-") {
			if sub := c.commands[arg]; sub != nil {
				sub.parent = c
				return sub.Parse(append([]string{arg}, c.pending...))
			}
			if c.Strict && len(c.commands) > 0 && c.run == nil {
				return c.unknown("command", arg, c.CommandNames())
			}
		}
		if c.Strict && strings.HasPrefix(arg, "-") && arg != "-" {
			name, _, _ := strings.Cut(arg, "=")
			return c.unknown("option", name, c.flagNames())
		}
		c.args = append(c.args, arg)
	}

	if c.parent != nil {
		c.parent.args = c.args
	}
	return c.invoke()
}

// parseOption stores arg if it names one of the command's options.
func (c *Command) parseOption(arg string) (bool, error) {
	if !strings.HasPrefix(arg, "-") {
		return false, nil
	}
	name, value, inline := strings.Cut(arg, "=")

	idx := slices.IndexFunc(c.options, func(o *Option) bool { return o.Matches(name) })
	if idx < 0 {
		return false, nil
	}
	o := c.options[idx]

	if o.Action != nil {
		if err := o.Action(); err != nil {
			return true, err
		}
	}

	if o.Boolean {
		set := !o.negated()
		if inline {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return true, fmt.Errorf("option %s: %w", o.Flag(), err)
			}
			set = b != o.negated()
		}
		c.results[o.Key] = set
		return true, nil
	}

	if !inline && len(c.pending) > 0 {
		value = c.pending[0]
		c.pending = c.pending[1:]
	}
	if value == "" {
		return true, fmt.Errorf("%w for %s", ErrMissingValue, o.Name)
	}

	v, err := o.Value(value, true)
	if err != nil {
		return true, err
	}
	c.results[o.Key] = v
	return true, nil
}

func (c *Command) invoke() error {
	if c.run == nil {
		return nil
	}
	return c.run(c)
}

func (c *Command) flagNames() []string {
	var names []string
	for _, o := range c.options {
		if o.Short != "" {
			names = append(names, o.Short)
		}
		if o.Long != "" {
			names = append(names, o.Long)
		}
	}
	return names
}

func (c *Command) unknown(kind, name string, candidates []string) error {
	err := fmt.Errorf("%w: %q is not a known %s of %s", ErrUnknown, name, kind, c.Name)
	if suggestion := Suggest(name, candidates); suggestion != "" {
		err = fmt.Errorf("%w (did you mean %q?)", err, suggestion)
	}
	return err
}

// Run parses argv and converts the outcome to an exit code: 0 on success or
// after help and version output, the ExitError code if the action returned
// one, and 1 for any other error, which is reported on Stderr.
func (c *Command) Run(argv []string) int {
	err := c.Parse(argv)
	if err == nil || errors.Is(err, ErrHelp) || errors.Is(err, ErrVersion) {
		return 0
	}

	fpf(c.Stderr, "%s: %v\n", c.Name, err)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, ErrUnknown) {
		fpf(c.Stderr, "\nRun '%s --help' for usage.\n", c.Name)
	}
	return 1
}
