package termcolor

import (
	"io"
	"os"
)

// Writer wraps an io.Writer and renders Text for the profile resolved at
// construction. With ProfileNone every helper returns its input unchanged.
type Writer struct {
	io.Writer
	profile Profile
}

// NewWriter creates a Writer that resolves the given ColorMode against the
// file's terminal status. In ColorAuto mode, color is enabled only when f
// is a terminal and NO_COLOR is not set. ColorAlways uses the richest
// profile TERM advertises, and at least ProfileBasic.
func NewWriter(f *os.File, mode ColorMode) *Writer {
	var profile Profile
	switch mode {
	case ColorAlways:
		profile = max(envProfile(), ProfileBasic)
	case ColorNever:
		profile = ProfileNone
	default:
		profile = DetectProfile(f)
	}
	return &Writer{Writer: f, profile: profile}
}

// NewProfileWriter wraps w with a fixed profile.
func NewProfileWriter(w io.Writer, p Profile) *Writer {
	return &Writer{Writer: w, profile: p}
}

// Enabled reports whether color output is active.
func (w *Writer) Enabled() bool {
	return w.profile != ProfileNone
}

// Profile returns the resolved profile.
func (w *Writer) Profile() Profile {
	return w.profile
}

// Paint renders t for the writer's profile.
func (w *Writer) Paint(t *Text) string {
	return t.Render(w.profile)
}

// Red returns s wrapped in red ANSI codes, or s unchanged if color is disabled.
func (w *Writer) Red(s string) string { return w.Paint(Red(s)) }

// Green returns s wrapped in green ANSI codes, or s unchanged if color is disabled.
func (w *Writer) Green(s string) string { return w.Paint(Green(s)) }

// Yellow returns s wrapped in yellow ANSI codes, or s unchanged if color is disabled.
func (w *Writer) Yellow(s string) string { return w.Paint(Yellow(s)) }

// Cyan returns s wrapped in cyan ANSI codes, or s unchanged if color is disabled.
func (w *Writer) Cyan(s string) string { return w.Paint(Cyan(s)) }

// Magenta returns s wrapped in magenta ANSI codes, or s unchanged if color is disabled.
func (w *Writer) Magenta(s string) string { return w.Paint(Magenta(s)) }

// White returns s wrapped in white ANSI codes, or s unchanged if color is disabled.
func (w *Writer) White(s string) string { return w.Paint(White(s)) }

// Gray returns s wrapped in gray ANSI codes, or s unchanged if color is disabled.
func (w *Writer) Gray(s string) string { return w.Paint(Gray(s)) }

// Bold returns s wrapped in bold ANSI codes, or s unchanged if color is disabled.
func (w *Writer) Bold(s string) string { return w.Paint(Bold(s)) }

// BoldCyan returns s in bold cyan, or s unchanged if color is disabled.
func (w *Writer) BoldCyan(s string) string { return w.Paint(Cyan(s).Bold()) }
