package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// optionNameRe splits "-f, --force" into its short and long flags.
	optionNameRe = regexp.MustCompile(`(-\w)?(?:,\s*)?(--[\w-]+)?`)
	// defaultRe extracts "default: src" from an option description.
	defaultRe = regexp.MustCompile(`\sdefault:(.*)$`)
)

// ErrInvalidOption is returned when an option spec names no flag.
var ErrInvalidOption = errors.New("invalid option")

// Option is a single command-line flag.
//
// Options are declared with a spec string:
//
//	-f                  short flag
//	--force             long flag
//	-f, --force         both
//	-o <dir>            takes a value, which must follow the flag
//	-o, --output [dir]  takes a value, which may carry a default
//	--no-color          negated boolean stored under "color"
type Option struct {
	Name        string
	Description string
	Short       string
	Long        string

	// Key is where the parsed value is stored: the long name without its
	// dashes (and without "no-" for negated flags), or the short flag.
	Key string

	// Required reports that the flag must be followed by a value.
	Required bool
	Boolean  bool
	Default  any

	// Action runs whenever the flag is seen, before its value is stored.
	Action func() error
	// Resolve converts the raw value before it is stored.
	Resolve func(string) (any, error)
}

// OptionSetting customizes an Option after its spec is parsed.
type OptionSetting func(*Option)

// WithAction runs fn each time the option is seen.
func WithAction(fn func() error) OptionSetting {
	return func(o *Option) { o.Action = fn }
}

// WithResolve converts raw values with fn.
func WithResolve(fn func(string) (any, error)) OptionSetting {
	return func(o *Option) { o.Resolve = fn }
}

// WithDefault sets the value reported when the option is absent.
func WithDefault(v any) OptionSetting {
	return func(o *Option) {
		o.Default = v
		o.Required = false
	}
}

// ParseOption builds an Option from a spec such as "-o, --output <dir>".
// For options taking a value, a description ending in "default: <value>"
// supplies the default and makes the value optional.
func ParseOption(name, description string, settings ...OptionSetting) (*Option, error) {
	o := &Option{
		Name:        strings.TrimSpace(name),
		Description: description,
	}

	flags := o.Name
	if i := strings.Index(flags, "<"); i >= 0 {
		o.Required = true
		flags = flags[:i]
	} else if i := strings.Index(flags, "["); i >= 0 {
		flags = flags[:i]
	} else {
		o.Boolean = true
	}

	m := optionNameRe.FindStringSubmatch(strings.TrimSpace(flags))
	if m == nil || (m[1] == "" && m[2] == "") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOption, name)
	}
	o.Short, o.Long = m[1], m[2]

	switch {
	case strings.HasPrefix(o.Long, "--no-"):
		o.Key = o.Long[len("--no-"):]
	case o.Long != "":
		o.Key = o.Long[len("--"):]
	default:
		o.Key = o.Short
	}

	if o.Boolean {
		o.Default = o.negated()
	} else if m := defaultRe.FindStringSubmatch(description); m != nil {
		o.Default = trimPlaceholder(strings.TrimSpace(m[1]))
		o.Required = false
	}

	for _, set := range settings {
		set(o)
	}
	return o, nil
}

// Value returns the value to store for the option. When present is false
// the default is returned and raw is ignored.
func (o *Option) Value(raw string, present bool) (any, error) {
	if !present {
		return o.Default, nil
	}
	if o.Resolve == nil {
		return raw, nil
	}
	v, err := o.Resolve(raw)
	if err != nil {
		return nil, fmt.Errorf("option %s: %w", o.Flag(), err)
	}
	return v, nil
}

// Flag returns the preferred spelling of the option, long over short.
func (o *Option) Flag() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// Matches reports whether arg names this option.
func (o *Option) Matches(arg string) bool {
	return arg != "" && (arg == o.Short || arg == o.Long)
}

func (o *Option) negated() bool {
	return strings.HasPrefix(o.Long, "--no-")
}

// trimPlaceholder strips one pair of surrounding <> or [].
func trimPlaceholder(s string) string {
	if len(s) >= 2 {
		if (s[0] == '<' && s[len(s)-1] == '>') || (s[0] == '[' && s[len(s)-1] == ']') {
			s = s[1 : len(s)-1]
		}
	}
	return strings.TrimSpace(s)
}
