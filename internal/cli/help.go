package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rybkr/termkit/internal/termcolor"
)

// fpf is a shorthand for fmt.Fprintf that discards the error, used for
// writing help text where write failures are non-actionable.
func fpf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...) //nolint:gosec // CLI output, not web output
}

// PrintVersion writes "name version", or "Title (name version)" when a
// title is set. It writes nothing when the command has no version.
func (c *Command) PrintVersion() {
	if c.Version == "" {
		return
	}
	if c.Title == "" {
		fpf(c.Stdout, "  %s %s\n", c.Name, c.Version)
		return
	}
	fpf(c.Stdout, "  %s (%s %s)\n", c.Title, c.Name, c.Version)
}

// PrintTitle writes a help section title, styled by the nearest TitleFunc
// found walking up from c.
func (c *Command) PrintTitle(title string) {
	for n := c; n != nil; n = n.parent {
		if n.TitleFunc != nil {
			title = n.TitleFunc(title)
			break
		}
		if n.parent == n {
			break
		}
	}
	fpf(c.Stdout, "\n  %s\n\n", title)
}

// PrintHelp writes the help menu: header, usage, options, and subcommands.
func (c *Command) PrintHelp() {
	w := c.Stdout

	title := c.Title
	if title == "" {
		title = c.Name
	}
	fpf(w, "\n  %s\n", strings.TrimSpace(title+" "+c.Version))
	fpf(w, "\n  %s\n", c.usage())

	width := 0
	for _, o := range c.options {
		width = max(width, runewidth.StringWidth(o.Name))
	}
	width += 2

	c.PrintTitle("Options:")
	for _, o := range c.options {
		fpf(w, "    %s %s\n", runewidth.FillRight(o.Name, width), o.Description)
	}

	if len(c.order) == 0 {
		fpf(w, "\n")
		return
	}

	c.PrintTitle("Commands:")
	for _, sub := range c.Subcommands() {
		fpf(w, "    %s %s\n", runewidth.FillRight(sub.Name, width), sub.Description)
	}
	fpf(w, "\n")
}

func (c *Command) usage() string {
	if c.Usage != "" {
		return c.Usage
	}
	name := c.Name
	if c.parent != nil && c.parent != c {
		name = c.parent.Name + " " + name
	}
	if len(c.order) > 0 {
		return fmt.Sprintf("Usage: %s <command> [option]", name)
	}
	return fmt.Sprintf("Usage: %s [option]", name)
}

// ColorTitles returns a TitleFunc painting option titles green and command
// titles magenta.
func ColorTitles(cw *termcolor.Writer) func(string) string {
	return func(title string) string {
		switch {
		case strings.Contains(title, "Option"):
			return cw.Green(title)
		case strings.Contains(title, "Command"):
			return cw.Magenta(title)
		default:
			return title
		}
	}
}
