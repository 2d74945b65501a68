package cli

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	durationType = reflect.TypeOf((*time.Duration)(nil)).Elem()
	argsType     = reflect.TypeOf((*[]string)(nil)).Elem()
)

// boundField ties a struct field to the option that fills it.
type boundField struct {
	index     []int
	option    *Option
	args      bool
	mandatory bool
}

// Func derives a subcommand from fn and attaches it. See FromFunc.
func (c *Command) Func(name, description string, fn any) (*Command, error) {
	sub, err := FromFunc(name, description, fn)
	if err != nil {
		return nil, err
	}
	c.Action(sub)
	return sub, nil
}

// FromFunc builds a command whose action calls fn.
//
// fn has the shape func(), func() error, func(T) or func(T) error, where T
// is a struct or a pointer to one. Every exported field of T becomes an
// option named after the field in kebab case:
//
//	type buildArgs struct {
//		Output  string   `default:"_build" help:"the output directory"`
//		Source  string   `help:"the source directory"`
//		Color   bool     `default:"true" help:"colorize output"`
//		Verbose bool     `help:"show more logs"`
//		Files   []string `args:""`
//	}
//
// yields "-o, --output [output]", "-s, --source <source>" (mandatory),
// "--no-color", and "-v, --verbose"; Files receives positional arguments.
// Tags: name overrides the option name, short overrides the short letter,
// help is the description, default the default value. A short tag must be
// one letter or digit, and a bool default must parse with strconv.ParseBool.
func FromFunc(name, description string, fn any, opts ...CommandOption) (*Command, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("cli: command %q: action must be a function, got %T", name, fn)
	}
	ft := fv.Type()
	if ft.NumIn() > 1 || ft.NumOut() > 1 || (ft.NumOut() == 1 && ft.Out(0) != errorType) {
		return nil, fmt.Errorf("cli: command %q: unsupported action signature %s", name, ft)
	}

	c := NewCommand(name, description, opts...)
	if ft.NumIn() == 0 {
		c.run = func(*Command) error { return call(fv, nil) }
		return c, nil
	}

	in := ft.In(0)
	ptr := in.Kind() == reflect.Pointer
	if ptr {
		in = in.Elem()
	}
	if in.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cli: command %q: action parameter must be a struct, got %s", name, ft.In(0))
	}

	fields, err := c.deriveOptions(in)
	if err != nil {
		return nil, fmt.Errorf("cli: command %q: %w", name, err)
	}

	c.run = func(c *Command) error {
		arg := reflect.New(in)
		if err := c.bind(arg.Elem(), fields); err != nil {
			return err
		}
		if !ptr {
			arg = arg.Elem()
		}
		return call(fv, []reflect.Value{arg})
	}
	return c, nil
}

func call(fv reflect.Value, args []reflect.Value) error {
	out := fv.Call(args)
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}

// deriveOptions adds an option for every exported field of t.
func (c *Command) deriveOptions(t reflect.Type) ([]boundField, error) {
	taken := make(map[string]bool)
	for _, o := range c.options {
		taken[o.Short] = true
	}

	var fields []boundField
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}

		if _, ok := sf.Tag.Lookup("args"); ok {
			if sf.Type != argsType {
				return nil, fmt.Errorf("field %s: args field must be []string", sf.Name)
			}
			fields = append(fields, boundField{index: sf.Index, args: true})
			continue
		}

		parse, err := parserFor(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}

		name := sf.Tag.Get("name")
		if name == "" {
			name = kebab(sf.Name)
		}
		short := sf.Tag.Get("short")
		switch {
		case short == "":
			short = name[:1]
		case !isShortName(short):
			return nil, fmt.Errorf("field %s: short name %q must be a single letter or digit", sf.Name, short)
		}
		flags := "--" + name
		if !taken["-"+short] {
			taken["-"+short] = true
			flags = "-" + short + ", " + flags
		}

		def, hasDefault := sf.Tag.Lookup("default")
		isBool := sf.Type.Kind() == reflect.Bool

		negate := false
		if isBool && hasDefault {
			b, err := strconv.ParseBool(def)
			if err != nil {
				return nil, fmt.Errorf("field %s: default %q: %w", sf.Name, def, err)
			}
			negate = b
		}

		var spec string
		switch {
		case negate:
			spec = "--no-" + name
		case isBool:
			spec = flags
		case hasDefault:
			spec = flags + " [" + name + "]"
		default:
			spec = flags + " <" + name + ">"
		}

		o, err := ParseOption(spec, sf.Tag.Get("help"))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}

		if !isBool {
			o.Resolve = parse
			if s, ok := o.Default.(string); ok && !hasDefault {
				def, hasDefault = s, true
			}
			if hasDefault {
				v, err := parse(def)
				if err != nil {
					return nil, fmt.Errorf("field %s: default %q: %w", sf.Name, def, err)
				}
				o.Default = v
				o.Required = false
			}
		}

		c.AddOption(o)
		fields = append(fields, boundField{
			index:     sf.Index,
			option:    o,
			mandatory: !isBool && !hasDefault,
		})
	}
	return fields, nil
}

// bind copies parsed results into the fields of v.
func (c *Command) bind(v reflect.Value, fields []boundField) error {
	for _, f := range fields {
		fv := v.FieldByIndex(f.index)
		if f.args {
			fv.Set(reflect.ValueOf(slices.Clone(c.args)))
			continue
		}

		val, given := c.Lookup(f.option.Key)
		if !given {
			if f.mandatory {
				return fmt.Errorf("%w %s", ErrMissingOption, f.option.Flag())
			}
			val = f.option.Default
		}
		if val == nil {
			continue
		}

		rv := reflect.ValueOf(val)
		switch {
		case rv.Type().AssignableTo(fv.Type()):
		case rv.CanConvert(fv.Type()):
			rv = rv.Convert(fv.Type())
		default:
			return fmt.Errorf("option %s: cannot use %T as %s", f.option.Flag(), val, fv.Type())
		}
		fv.Set(rv)
	}
	return nil
}

// parserFor returns a function converting raw flag values to t.
func parserFor(t reflect.Type) (func(string) (any, error), error) {
	convert := func(v any) any { return reflect.ValueOf(v).Convert(t).Interface() }

	if t == durationType {
		return func(s string) (any, error) {
			d, err := time.ParseDuration(s)
			if err != nil {
				return nil, err
			}
			return d, nil
		}, nil
	}

	switch t.Kind() {
	case reflect.String:
		return func(s string) (any, error) { return convert(s), nil }, nil
	case reflect.Bool:
		return func(s string) (any, error) {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return nil, err
			}
			return convert(b), nil
		}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(s string) (any, error) {
			n, err := strconv.ParseInt(s, 10, t.Bits())
			if err != nil {
				return nil, err
			}
			return convert(n), nil
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(s string) (any, error) {
			n, err := strconv.ParseUint(s, 10, t.Bits())
			if err != nil {
				return nil, err
			}
			return convert(n), nil
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(s string) (any, error) {
			f, err := strconv.ParseFloat(s, t.Bits())
			if err != nil {
				return nil, err
			}
			return convert(f), nil
		}, nil
	default:
		return nil, fmt.Errorf("unsupported option type %s", t)
	}
}

// isShortName reports whether s can follow a single dash in an option spec.
func isShortName(s string) bool {
	if len(s) != 1 {
		return false
	}
	r := rune(s[0])
	return r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// kebab converts a Go field name to a flag name: OutputDir -> output-dir,
// HTTPPort -> http-port.
func kebab(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
