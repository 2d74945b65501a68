package termcolor

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// defaultWidth is used when neither the terminal nor COLUMNS report a width.
const defaultWidth = 79

// IsTerminal reports whether the given file descriptor refers to a terminal.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) //nolint:gosec // G115: fd comes from os.File.Fd(); safe on all supported platforms
}

// ShouldColorize reports whether color output should be enabled for f.
// It is true when DetectProfile finds any color support. See
// https://no-color.org/.
func ShouldColorize(f *os.File) bool {
	return DetectProfile(f) != ProfileNone
}

// DetectProfile reports which escape sequences f can display.
//
// NO_COLOR always disables color. Otherwise f must be a terminal, unless
// TERMINAL_COLOR is set, and the environment must advertise color support
// through COLORTERM or TERM.
func DetectProfile(f *os.File) Profile {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return ProfileNone
	}
	_, forced := os.LookupEnv("TERMINAL_COLOR")
	if !forced && (f == nil || !IsTerminal(f.Fd())) {
		return ProfileNone
	}
	return envProfile()
}

// envProfile derives the profile from COLORTERM and TERM alone.
func envProfile() Profile {
	name := strings.ToLower(os.Getenv("TERM"))
	if name == "" {
		name = "dumb"
	}

	_, colorterm := os.LookupEnv("COLORTERM")
	if !colorterm && name != "xterm" && name != "linux" && !strings.Contains(name, "color") {
		return ProfileNone
	}
	if strings.Contains(name, "256") {
		return Profile256
	}
	return ProfileBasic
}

// Width returns the column count of the terminal behind f. When f is not a
// terminal it falls back to COLUMNS-1, then to 79.
func Width(f *os.File) int {
	if f != nil {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 { //nolint:gosec // G115: see IsTerminal
			return w
		}
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 1 {
		return cols - 1
	}
	return defaultWidth
}

// VisibleWidth returns the number of terminal cells s occupies once escape
// sequences are removed.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(pterm.RemoveColorFromString(s))
}
