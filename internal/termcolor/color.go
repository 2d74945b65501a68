// Package termcolor provides ANSI color output with automatic TTY detection,
// support for the NO_COLOR convention (https://no-color.org/), and conversion
// of named, hex, and RGB colors to xterm 256-color palette indices.
package termcolor

import (
	"errors"
	"fmt"
	"slices"
)

// Reset restores the default style, foreground, and background.
const Reset = "\033[0;39;49m"

// ErrInvalidColor is returned when a color name or code cannot be resolved.
var ErrInvalidColor = errors.New("invalid color")

// styleNames lists SGR attributes; a style's code is its position plus one.
var styleNames = []string{
	"bold", "faint", "italic", "underline", "blink",
	"overline", "inverse", "conceal", "strike",
}

// colorNames lists the eight system colors in palette order.
var colorNames = []string{
	"black", "red", "green", "yellow", "blue",
	"magenta", "cyan", "white",
}

// BrightBlack is the palette index used for gray.
const BrightBlack uint8 = 8

// ColorMode controls when color output is used.
type ColorMode int

const (
	// ColorAuto enables color only when writing to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces color output regardless of terminal detection.
	ColorAlways
	// ColorNever disables color output unconditionally.
	ColorNever
)

// ParseColorMode parses a string into a ColorMode.
// Accepted values are "auto", "always", and "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// Profile is the set of escape sequences a terminal understands.
type Profile int

const (
	// ProfileNone emits plain text.
	ProfileNone Profile = iota
	// ProfileBasic emits the 8 system colors and their bright variants.
	ProfileBasic
	// Profile256 emits xterm 256-color sequences.
	Profile256
)

func (p Profile) String() string {
	switch p {
	case ProfileBasic:
		return "basic"
	case Profile256:
		return "256"
	default:
		return "none"
	}
}

// StyleCode returns the SGR code for a style name such as "bold".
func StyleCode(name string) (int, bool) {
	i := slices.Index(styleNames, name)
	if i < 0 {
		return 0, false
	}
	return i + 1, true
}

// StyleNames returns the supported style names in SGR order.
func StyleNames() []string {
	return slices.Clone(styleNames)
}

// ColorNames returns the eight system color names in palette order.
func ColorNames() []string {
	return slices.Clone(colorNames)
}

// colorIndex resolves a system color name. "gray" and "grey" map to bright black.
func colorIndex(name string) (uint8, bool) {
	if name == "gray" || name == "grey" {
		return BrightBlack, true
	}
	i := slices.Index(colorNames, name)
	if i < 0 {
		return 0, false
	}
	return uint8(i), true //nolint:gosec // G115: index of an 8-element table
}
