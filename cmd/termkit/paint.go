package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rybkr/termkit/internal/cli"
	"github.com/rybkr/termkit/internal/termcolor"
)

var errNoText = errors.New("nothing to paint")

func (a *app) paintCommand() *cli.Command {
	c := a.command("paint", "print text in a color and style", func(c *cli.Command) error {
		text, err := paint(strings.Join(c.Args(), " "), c.String("fg"), c.String("bg"), c.String("style"))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.stdout, a.cw.Paint(text))
		return err
	})
	c.Usage = "Usage: termkit paint [option] <text>..."
	mustOption(c, "-f, --fg [color]", "foreground: a color name, gray, or a hex code")
	mustOption(c, "-b, --bg [color]", "background: a color name, gray, or a hex code")
	mustOption(c, "-s, --style [names]", "comma-separated styles: "+strings.Join(termcolor.StyleNames(), ", "))
	return c
}

// paint applies colors and styles to text. Empty names are skipped.
func paint(text, fg, bg, styles string) (*termcolor.Text, error) {
	if text == "" {
		return nil, errNoText
	}
	t := termcolor.New(termcolor.Plain(text))
	if fg != "" {
		if _, err := t.Color(fg); err != nil {
			return nil, err
		}
	}
	if bg != "" {
		if _, err := t.Background(bg); err != nil {
			return nil, err
		}
	}
	for _, name := range strings.Split(styles, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		code, ok := termcolor.StyleCode(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown style %q", termcolor.ErrInvalidColor, name)
		}
		t.Style(code)
	}
	return t, nil
}
