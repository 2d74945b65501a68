package termcolor

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Segment is a piece of text that knows how to render itself for a profile.
type Segment interface {
	Render(p Profile) string
	Len() int
}

// Plain is an unstyled Segment.
type Plain string

// Render returns s unchanged.
func (s Plain) Render(Profile) string { return string(s) }

// Len returns the number of runes in s.
func (s Plain) Len() int { return utf8.RuneCountInString(string(s)) }

// Text is a sequence of segments painted with an optional foreground,
// an optional background, and a list of SGR styles.
//
// Setters return the receiver so calls chain:
//
//	termcolor.New(termcolor.Plain("text")).Bold().Red().Italic()
type Text struct {
	items  []Segment
	fg     *uint8
	bg     *uint8
	styles []int
}

// New returns an unstyled Text made of items.
func New(items ...Segment) *Text {
	return &Text{items: items}
}

// Fg sets the foreground palette index.
func (t *Text) Fg(index uint8) *Text {
	t.fg = &index
	return t
}

// Bg sets the background palette index.
func (t *Text) Bg(index uint8) *Text {
	t.bg = &index
	return t
}

// Style appends an SGR style code.
func (t *Text) Style(code int) *Text {
	t.styles = append(t.styles, code)
	return t
}

// Color sets the foreground from a color name or hex code.
func (t *Text) Color(name string) (*Text, error) {
	i, err := LookupColor(name)
	if err != nil {
		return t, err
	}
	return t.Fg(i), nil
}

// Background sets the background from a color name or hex code.
func (t *Text) Background(name string) (*Text, error) {
	i, err := LookupColor(name)
	if err != nil {
		return t, err
	}
	return t.Bg(i), nil
}

// Attr applies a style, color, or "<color>_bg" background by name.
func (t *Text) Attr(name string) (*Text, error) {
	if base, ok := strings.CutSuffix(name, "_bg"); ok {
		if i, ok := colorIndex(base); ok {
			return t.Bg(i), nil
		}
		return t, fmt.Errorf("%w: unknown background %q", ErrInvalidColor, name)
	}
	if i, ok := colorIndex(name); ok {
		return t.Fg(i), nil
	}
	if code, ok := StyleCode(name); ok {
		return t.Style(code), nil
	}
	return t, fmt.Errorf("%w: unknown attribute %q", ErrInvalidColor, name)
}

// Add returns a new unstyled Text holding t followed by s.
func (t *Text) Add(s Segment) *Text {
	return New(t, s)
}

// Prepend returns a new unstyled Text holding s followed by t.
func (t *Text) Prepend(s Segment) *Text {
	return New(s, t)
}

// Len returns the number of runes of visible text.
func (t *Text) Len() int {
	n := 0
	for _, item := range t.items {
		n += item.Len()
	}
	return n
}

// Plain returns the text without any escape sequences.
func (t *Text) Plain() string {
	return t.Render(ProfileNone)
}

// String renders t for the profile detected on stdout.
func (t *Text) String() string {
	return t.Render(DetectProfile(os.Stdout))
}

// Render returns the text wrapped in the escape sequences p supports.
// Colors wrap first, the background outside the foreground, and styles
// wrap last.
func (t *Text) Render(p Profile) string {
	var b strings.Builder
	for _, item := range t.items {
		b.WriteString(item.Render(p))
	}
	text := b.String()

	switch p {
	case ProfileNone:
		return text
	case Profile256:
		if t.fg != nil {
			text = wrap("38;5;"+strconv.Itoa(int(*t.fg)), text)
		}
		if t.bg != nil {
			text = wrap("48;5;"+strconv.Itoa(int(*t.bg)), text)
		}
	default:
		if code, ok := basicCode(t.fg, 30, 90); ok {
			text = wrap(code, text)
		}
		if code, ok := basicCode(t.bg, 40, 100); ok {
			text = wrap(code, text)
		}
	}

	if len(t.styles) > 0 {
		codes := make([]string, len(t.styles))
		for i, c := range t.styles {
			codes[i] = strconv.Itoa(c)
		}
		text = wrap(strings.Join(codes, ";"), text)
	}
	return text
}

// basicCode maps a palette index onto the 16-color SGR range starting at
// normal (0-7) or bright (8-15). Higher indices have no basic equivalent.
func basicCode(index *uint8, normal, bright int) (string, bool) {
	switch {
	case index == nil:
		return "", false
	case *index < 8:
		return strconv.Itoa(normal + int(*index)), true
	case *index < 16:
		return strconv.Itoa(bright + int(*index) - 8), true
	default:
		return "", false
	}
}

func wrap(code, text string) string {
	return "\033[" + code + "m" + text + Reset
}
