// Package progress provides terminal progress indicators.
package progress

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rybkr/termkit/internal/termcolor"
)

// ErrFill is returned when the fill is not exactly one single-cell character.
var ErrFill = errors.New("progress: fill must be a single narrow character")

// Bar renders a single-line progress bar sized to the terminal. The bar
// grows from the left while the status text stays right-aligned.
type Bar struct {
	marker string
	left   string
	right  string
	fill   string
	width  int
}

// Option configures a Bar.
type Option func(*Bar)

// WithMarker sets the string repeated to draw completed work. Default "#".
func WithMarker(s string) Option { return func(b *Bar) { b.marker = s } }

// WithLeft sets the cap drawn before the markers.
func WithLeft(s string) Option { return func(b *Bar) { b.left = s } }

// WithRight sets the cap drawn after the markers, e.g. ">".
func WithRight(s string) Option { return func(b *Bar) { b.right = s } }

// WithFill sets the padding character. Default " ".
func WithFill(s string) Option { return func(b *Bar) { b.fill = s } }

// WithWidth overrides the detected terminal width.
func WithWidth(n int) Option { return func(b *Bar) { b.width = n } }

// New creates a Bar. The width defaults to the width of the terminal on stdout.
func New(opts ...Option) (*Bar, error) {
	b := &Bar{marker: "#", fill: " "}
	for _, opt := range opts {
		opt(b)
	}
	if utf8.RuneCountInString(b.fill) != 1 || termcolor.VisibleWidth(b.fill) != 1 {
		return nil, fmt.Errorf("%w: got %q", ErrFill, b.fill)
	}
	if b.width <= 0 {
		b.width = termcolor.Width(os.Stdout)
	}
	return b, nil
}

// Width returns the line width the bar renders to.
func (b *Bar) Width() int {
	return b.width
}

// Render draws current out of total. blank is drawn before the bar (used to
// align with indented log output) and status is right-aligned.
func (b *Bar) Render(current, total int, blank, status string) (string, error) {
	if total <= 0 {
		return "", fmt.Errorf("progress: total must be positive, got %d", total)
	}
	if current < 0 || current > total {
		return "", fmt.Errorf("progress: current %d out of range [0, %d]", current, total)
	}

	count := termcolor.VisibleWidth(blank) + termcolor.VisibleWidth(status) +
		termcolor.VisibleWidth(b.left) + termcolor.VisibleWidth(b.right)
	room := max(b.width-count, 0)

	n := int(float64(room) / float64(total) * float64(current))
	markers := truncate(strings.Repeat(b.marker, max(n, 0)), room)

	bar := blank + b.left + markers + b.right
	line := padLeft(status, b.width, b.fill)
	return strings.Replace(line, strings.Repeat(b.fill, termcolor.VisibleWidth(bar)), bar, 1), nil
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// padLeft right-justifies s in a field of width cells.
func padLeft(s string, width int, fill string) string {
	pad := width - termcolor.VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(fill, pad) + s
}
