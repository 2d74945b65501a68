// Package nestlog writes leveled log lines that indent under Start/End
// sections. A Logger has verbose and quiet switches, counts warnings and
// errors, renders progress lines, and can serve as a slog.Handler.
package nestlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/rybkr/termkit/internal/progress"
	"github.com/rybkr/termkit/internal/termcolor"
)

// Level names passed to a Formatter.
const (
	LevelStart = "start"
	LevelEnd   = "end"
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Logger writes nested log output. The zero value is not usable; call New.
//
//	log := nestlog.New()
//	log.Info("play with log")
//	log.Start("start an indent level")
//	log.Info("this line is indented")
//	log.End("close the indent level")
type Logger struct {
	s       *state
	verbose bool
}

// state is shared between a Logger and its Verbose view.
type state struct {
	mu sync.Mutex

	depth       int
	fill        string
	icon        string
	showVerbose bool
	quiet       bool
	minLevel    slog.Level
	source      bool

	stdout io.Writer
	stderr io.Writer
	format Formatter
	bar    *progress.Bar

	warns  int
	errors int
}

// Option configures a Logger.
type Option func(*state)

// WithIndent sets the current nesting depth.
func WithIndent(depth int) Option {
	return func(s *state) { s.depth = max(depth, 0) }
}

// WithVerbose shows messages written through Verbose().
func WithVerbose(enabled bool) Option {
	return func(s *state) { s.showVerbose = enabled }
}

// WithQuiet hides debug and info messages.
func WithQuiet(enabled bool) Option {
	return func(s *state) { s.quiet = enabled }
}

// WithOutput sets where messages go. Errors are written to stderr,
// everything else to stdout.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(s *state) {
		s.stdout = stdout
		s.stderr = stderr
	}
}

// WithFormatter replaces the message formatter.
func WithFormatter(f Formatter) Option {
	return func(s *state) { s.format = f }
}

// WithIcon sets the marker written after the indentation of nested lines.
func WithIcon(icon string) Option {
	return func(s *state) { s.icon = icon }
}

// WithFill sets the indentation written once per nesting level.
func WithFill(fill string) Option {
	return func(s *state) { s.fill = fill }
}

// WithLevel drops messages below level. Start and End count as info.
func WithLevel(level slog.Level) Option {
	return func(s *state) { s.minLevel = level }
}

// WithProgress renders Progress calls through bar.
func WithProgress(bar *progress.Bar) Option {
	return func(s *state) { s.bar = bar }
}

// WithSource appends the caller's file:line to messages logged through
// Handler.
func WithSource(enabled bool) Option {
	return func(s *state) { s.source = enabled }
}

// New returns a Logger writing to os.Stdout and os.Stderr with two-space
// indentation.
func New(opts ...Option) *Logger {
	s := &state{
		fill:     "  ",
		minLevel: slog.LevelDebug,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		format:   Message,
	}
	for _, opt := range opts {
		opt(s)
	}
	return &Logger{s: s}
}

// Default returns a Logger styled for terminals: colored level bullets, a
// cyan "|-" icon on nested lines, and an arrow progress bar.
func Default(cw *termcolor.Writer) *Logger {
	bar, err := progress.New(progress.WithMarker("-"), progress.WithRight(">"))
	if err != nil {
		panic(fmt.Sprintf("nestlog: %v", err))
	}
	return New(
		WithIcon(cw.Cyan("|-")),
		WithFormatter(ColorFormatter(cw)),
		WithProgress(bar),
	)
}

// Configure applies opts to a live logger. The change is visible through
// every view of it.
func (l *Logger) Configure(opts ...Option) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	for _, opt := range opts {
		opt(l.s)
	}
}

// Verbose returns a view of l whose messages are shown only when verbose
// output is enabled. Start and End on the view do nothing.
func (l *Logger) Verbose() *Logger {
	return &Logger{s: l.s, verbose: true}
}

// IsVerbose reports whether l is a Verbose view.
func (l *Logger) IsVerbose() bool { return l.verbose }

// Depth returns the current nesting depth.
func (l *Logger) Depth() int {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return l.s.depth
}

// Start writes a start message, when args are given, and indents the
// following lines one level.
func (l *Logger) Start(args ...any) {
	if l.verbose {
		return
	}
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	if len(args) > 0 && l.enabled(LevelStart, slog.LevelInfo) {
		l.s.writeln(LevelStart, l.s.format(LevelStart, args...))
	}
	l.s.depth++
}

// End writes an end message, when args are given, and removes one level of
// indentation.
func (l *Logger) End(args ...any) {
	if l.verbose {
		return
	}
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	if len(args) > 0 && l.enabled(LevelEnd, slog.LevelInfo) {
		l.s.writeln(LevelEnd, l.s.format(LevelEnd, args...))
	}
	if l.s.depth > 0 {
		l.s.depth--
	}
}

// Debug logs args at debug level. Quiet loggers drop it.
func (l *Logger) Debug(args ...any) { l.emit(LevelDebug, slog.LevelDebug, args...) }

// Info logs args at info level. Quiet loggers drop it.
func (l *Logger) Info(args ...any) { l.emit(LevelInfo, slog.LevelInfo, args...) }

// Warn logs args to stdout and counts the warning.
func (l *Logger) Warn(args ...any) { l.emit(LevelWarn, slog.LevelWarn, args...) }

// Error logs args to stderr and counts the error.
func (l *Logger) Error(args ...any) { l.emit(LevelError, slog.LevelError, args...) }

// WarnCount returns how many warnings were logged, shown or not.
func (l *Logger) WarnCount() int {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return l.s.warns
}

// ErrorCount returns how many errors were logged, shown or not.
func (l *Logger) ErrorCount() int {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return l.s.errors
}

// Message formats args with the logger's formatter.
func (l *Logger) Message(level string, args ...any) string {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return l.s.format(level, args...)
}

// Prefix returns the indentation and icon written before nested lines, or
// "" at depth zero.
func (l *Logger) Prefix() string {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return l.s.prefix()
}

// Progress writes a "current/total" status line, drawn through the
// configured bar if any. The line ends in a carriage return while the work
// is unfinished so the next call overwrites it.
func (l *Logger) Progress(current, total int, end bool) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	if l.verbose && !l.s.showVerbose {
		return nil
	}

	status := fmt.Sprintf("%d/%d", current, total)
	text := status
	if l.s.bar != nil {
		blank := strings.Repeat(" ", termcolor.VisibleWidth(l.s.prefix()))
		var err error
		if text, err = l.s.bar.Render(current, total, blank, " "+status); err != nil {
			return fmt.Errorf("progress: %w", err)
		}
	}

	eol := "\n"
	if current < total && !end {
		eol = "\r"
	}
	_, err := io.WriteString(l.s.stdout, text+eol)
	return err
}

func (l *Logger) emit(level string, sl slog.Level, args ...any) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	switch level {
	case LevelWarn:
		l.s.warns++
	case LevelError:
		l.s.errors++
	}
	if !l.enabled(level, sl) {
		return
	}
	l.s.writeln(level, l.s.format(level, args...))
}

// enabled reports whether a message would be written. Callers hold s.mu.
func (l *Logger) enabled(level string, sl slog.Level) bool {
	if l.verbose && !l.s.showVerbose {
		return false
	}
	if l.s.quiet && (level == LevelDebug || level == LevelInfo) {
		return false
	}
	return sl >= l.s.minLevel
}

func (s *state) prefix() string {
	if s.depth == 0 {
		return ""
	}
	return strings.Repeat(s.fill, s.depth) + s.icon
}

// writeln writes msg with every line indented to the current depth.
func (s *state) writeln(level, msg string) {
	lead := strings.Repeat(s.fill, s.depth)
	if s.depth > 0 && s.icon != "" {
		lead += s.icon + " "
	}

	var b strings.Builder
	for _, line := range strings.Split(msg, "\n") {
		b.WriteString(lead)
		b.WriteString(line)
		b.WriteByte('\n')
	}

	w := s.stdout
	if level == LevelError {
		w = s.stderr
	}
	_, _ = io.WriteString(w, b.String())
}
