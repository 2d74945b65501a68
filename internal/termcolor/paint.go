package termcolor

import "fmt"

// Colorize paints text with a style name, a color name, or a hex code.
// When background is set, colors apply to the background instead.
//
//	Colorize("hello", "ff0000", false)
//	Colorize("hello", "#f00", true)
//	Colorize("hello", "bold", false)
func Colorize(text, color string, background bool) (*Text, error) {
	t := New(Plain(text))
	if code, ok := StyleCode(color); ok {
		return t.Style(code), nil
	}
	i, err := LookupColor(color)
	if err != nil {
		return nil, fmt.Errorf("colorize: %w", err)
	}
	if background {
		return t.Bg(i), nil
	}
	return t.Fg(i), nil
}

// ColorizeRGB paints text with the palette color nearest to r, g, b.
func ColorizeRGB(text string, r, g, b uint8, background bool) *Text {
	t := New(Plain(text))
	if background {
		return t.Bg(RGBToANSI(r, g, b))
	}
	return t.Fg(RGBToANSI(r, g, b))
}

func styled(s string, code int) *Text { return New(Plain(s)).Style(code) }
func fg(s string, i uint8) *Text      { return New(Plain(s)).Fg(i) }
func bg(s string, i uint8) *Text      { return New(Plain(s)).Bg(i) }

// Bold returns s rendered bold.
func Bold(s string) *Text { return styled(s, 1) }

// Faint returns s rendered faint.
func Faint(s string) *Text { return styled(s, 2) }

// Italic returns s rendered italic.
func Italic(s string) *Text { return styled(s, 3) }

// Underline returns s rendered underlined.
func Underline(s string) *Text { return styled(s, 4) }

// Blink returns s rendered blinking.
func Blink(s string) *Text { return styled(s, 5) }

// Overline returns s rendered overlined.
func Overline(s string) *Text { return styled(s, 6) }

// Inverse returns s rendered inverse.
func Inverse(s string) *Text { return styled(s, 7) }

// Conceal returns s rendered concealed.
func Conceal(s string) *Text { return styled(s, 8) }

// Strike returns s rendered struck through.
func Strike(s string) *Text { return styled(s, 9) }

// Black returns s in black.
func Black(s string) *Text { return fg(s, 0) }

// Red returns s in red.
func Red(s string) *Text { return fg(s, 1) }

// Green returns s in green.
func Green(s string) *Text { return fg(s, 2) }

// Yellow returns s in yellow.
func Yellow(s string) *Text { return fg(s, 3) }

// Blue returns s in blue.
func Blue(s string) *Text { return fg(s, 4) }

// Magenta returns s in magenta.
func Magenta(s string) *Text { return fg(s, 5) }

// Cyan returns s in cyan.
func Cyan(s string) *Text { return fg(s, 6) }

// White returns s in white.
func White(s string) *Text { return fg(s, 7) }

// Gray returns s in gray.
func Gray(s string) *Text { return fg(s, BrightBlack) }

// Grey is an alias of Gray.
func Grey(s string) *Text { return fg(s, BrightBlack) }

// BlackBg returns s on a black background.
func BlackBg(s string) *Text { return bg(s, 0) }

// RedBg returns s on a red background.
func RedBg(s string) *Text { return bg(s, 1) }

// GreenBg returns s on a green background.
func GreenBg(s string) *Text { return bg(s, 2) }

// YellowBg returns s on a yellow background.
func YellowBg(s string) *Text { return bg(s, 3) }

// BlueBg returns s on a blue background.
func BlueBg(s string) *Text { return bg(s, 4) }

// MagentaBg returns s on a magenta background.
func MagentaBg(s string) *Text { return bg(s, 5) }

// CyanBg returns s on a cyan background.
func CyanBg(s string) *Text { return bg(s, 6) }

// WhiteBg returns s on a white background.
func WhiteBg(s string) *Text { return bg(s, 7) }

// GrayBg returns s on a gray background.
func GrayBg(s string) *Text { return bg(s, BrightBlack) }

// GreyBg is an alias of GrayBg.
func GreyBg(s string) *Text { return bg(s, BrightBlack) }

// Bold adds the bold style to t.
func (t *Text) Bold() *Text { return t.Style(1) }

// Faint adds the faint style to t.
func (t *Text) Faint() *Text { return t.Style(2) }

// Italic adds the italic style to t.
func (t *Text) Italic() *Text { return t.Style(3) }

// Underline adds the underline style to t.
func (t *Text) Underline() *Text { return t.Style(4) }

// Blink adds the blink style to t.
func (t *Text) Blink() *Text { return t.Style(5) }

// Overline adds the overline style to t.
func (t *Text) Overline() *Text { return t.Style(6) }

// Inverse adds the inverse style to t.
func (t *Text) Inverse() *Text { return t.Style(7) }

// Conceal adds the conceal style to t.
func (t *Text) Conceal() *Text { return t.Style(8) }

// Strike adds the strike style to t.
func (t *Text) Strike() *Text { return t.Style(9) }

// Black sets the foreground of t to black.
func (t *Text) Black() *Text { return t.Fg(0) }

// Red sets the foreground of t to red.
func (t *Text) Red() *Text { return t.Fg(1) }

// Green sets the foreground of t to green.
func (t *Text) Green() *Text { return t.Fg(2) }

// Yellow sets the foreground of t to yellow.
func (t *Text) Yellow() *Text { return t.Fg(3) }

// Blue sets the foreground of t to blue.
func (t *Text) Blue() *Text { return t.Fg(4) }

// Magenta sets the foreground of t to magenta.
func (t *Text) Magenta() *Text { return t.Fg(5) }

// Cyan sets the foreground of t to cyan.
func (t *Text) Cyan() *Text { return t.Fg(6) }

// White sets the foreground of t to white.
func (t *Text) White() *Text { return t.Fg(7) }

// Gray sets the foreground of t to gray.
func (t *Text) Gray() *Text { return t.Fg(BrightBlack) }

// BlackBg sets the background of t to black.
func (t *Text) BlackBg() *Text { return t.Bg(0) }

// RedBg sets the background of t to red.
func (t *Text) RedBg() *Text { return t.Bg(1) }

// GreenBg sets the background of t to green.
func (t *Text) GreenBg() *Text { return t.Bg(2) }

// YellowBg sets the background of t to yellow.
func (t *Text) YellowBg() *Text { return t.Bg(3) }

// BlueBg sets the background of t to blue.
func (t *Text) BlueBg() *Text { return t.Bg(4) }

// MagentaBg sets the background of t to magenta.
func (t *Text) MagentaBg() *Text { return t.Bg(5) }

// CyanBg sets the background of t to cyan.
func (t *Text) CyanBg() *Text { return t.Bg(6) }

// WhiteBg sets the background of t to white.
func (t *Text) WhiteBg() *Text { return t.Bg(7) }

// GrayBg sets the background of t to gray.
func (t *Text) GrayBg() *Text { return t.Bg(BrightBlack) }
