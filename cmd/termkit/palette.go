package main

import (
	"fmt"
	"strings"

	"github.com/rybkr/termkit/internal/cli"
	"github.com/rybkr/termkit/internal/termcolor"
)

func (a *app) paletteCommand() *cli.Command {
	return a.command("palette", "show the 256 color palette", func(*cli.Command) error {
		_, err := fmt.Fprint(a.stdout, renderPalette(a.cw))
		return err
	})
}

// renderPalette draws the 16 system colors, the 6x6x6 color cube, the
// grayscale ramp, and every foreground color by number.
func renderPalette(cw *termcolor.Writer) string {
	swatch := func(i int) string {
		return cw.Paint(termcolor.New(termcolor.Plain("  ")).Bg(uint8(i))) //nolint:gosec // G115: palette index below 256
	}

	var b strings.Builder
	b.WriteString(cw.Bold("System colors") + "\n")
	for i := 0; i < 16; i++ {
		if i == 8 {
			b.WriteByte('\n')
		}
		b.WriteString(swatch(i))
	}

	b.WriteString("\n\n" + cw.Bold("Color cube") + "\n")
	for green := 0; green < 6; green++ {
		for red := 0; red < 6; red++ {
			for blue := 0; blue < 6; blue++ {
				b.WriteString(swatch(16 + red*36 + green*6 + blue))
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n" + cw.Bold("Grayscale") + "\n")
	for i := 232; i < 256; i++ {
		b.WriteString(swatch(i))
	}

	b.WriteString("\n\n" + cw.Bold("Colors") + "\n")
	for i := 0; i < 256; i++ {
		if i != 0 && i%16 == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(cw.Paint(termcolor.New(termcolor.Plain(fmt.Sprintf("%-5d", i))).Fg(uint8(i)))) //nolint:gosec // G115: i < 256
	}
	b.WriteByte('\n')
	return b.String()
}
