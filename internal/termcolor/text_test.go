package termcolor

import (
	"errors"
	"testing"
)

func TestRGBToANSI(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"black", 0, 0, 0, 232},
		{"white", 255, 255, 255, 255},
		{"dark gray", 80, 80, 80, 239},
		{"red", 255, 0, 0, 196},
		{"green", 0, 255, 0, 46},
		{"blue", 0, 0, 255, 21},
		{"steel", 100, 150, 200, 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToANSI(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGBToANSI(%d, %d, %d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestHexToANSI(t *testing.T) {
	tests := []struct {
		code    string
		want    uint8
		wantErr bool
	}{
		{"ff0000", 196, false},
		{"#ff0000", 196, false},
		{"f00", 196, false},
		{"#000", 232, false},
		{"ffbbccd", 0, true},
		{"zzzzzz", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := HexToANSI(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HexToANSI(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidColor) {
				t.Errorf("HexToANSI(%q) error = %v, want ErrInvalidColor", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("HexToANSI(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestLookupColor(t *testing.T) {
	for name, want := range map[string]uint8{"black": 0, "red": 1, "white": 7, "gray": 8, "grey": 8, "d64": 209} {
		got, err := LookupColor(name)
		if err != nil {
			t.Fatalf("LookupColor(%q) error = %v", name, err)
		}
		if got != want {
			t.Errorf("LookupColor(%q) = %d, want %d", name, got, want)
		}
	}
	if _, err := LookupColor("chartreuse"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("LookupColor(chartreuse) error = %v, want ErrInvalidColor", err)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		text *Text
		p    Profile
		want string
	}{
		{"none", Red("hi"), ProfileNone, "hi"},
		{"basic fg", Red("hi"), ProfileBasic, "\033[31mhi" + Reset},
		{"basic bg", BlueBg("hi"), ProfileBasic, "\033[44mhi" + Reset},
		{"basic bright", GrayBg("hi"), ProfileBasic, "\033[100mhi" + Reset},
		{"basic drops palette", New(Plain("hi")).Fg(196), ProfileBasic, "hi"},
		{"256 fg", Red("hi"), Profile256, "\033[38;5;1mhi" + Reset},
		{"256 fg and bg", Red("hi").WhiteBg(), Profile256, "\033[48;5;7m\033[38;5;1mhi" + Reset + Reset},
		{"styles joined", New(Plain("hi")).Bold().Underline(), ProfileBasic, "\033[1;4mhi" + Reset},
		{"styles outside color", Green("hi").Italic(), ProfileBasic, "\033[3m\033[32mhi" + Reset + Reset},
		{"nested", Red("a").Add(Green("b")), ProfileBasic, "\033[31ma" + Reset + "\033[32mb" + Reset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.Render(tt.p); got != tt.want {
				t.Errorf("Render(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestAttr(t *testing.T) {
	text, err := New(Plain("text")).Attr("bold")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"red", "underline", "green_bg"} {
		if text, err = text.Attr(name); err != nil {
			t.Fatalf("Attr(%q) error = %v", name, err)
		}
	}
	want := "\033[1;4m\033[42m\033[31mtext" + Reset + Reset + Reset
	if got := text.Render(ProfileBasic); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	for _, name := range []string{"unknown", "unknown_bg", "bold_bg"} {
		if _, err := New(Plain("text")).Attr(name); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("Attr(%q) error = %v, want ErrInvalidColor", name, err)
		}
	}
}

func TestColorSetters(t *testing.T) {
	text := New(Plain("text"))
	if _, err := text.Color("white"); err != nil {
		t.Fatal(err)
	}
	if _, err := text.Background("d64"); err != nil {
		t.Fatal(err)
	}
	want := "\033[48;5;209m\033[38;5;7mtext" + Reset + Reset
	if got := text.Render(Profile256); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if _, err := text.Color("nope"); err == nil {
		t.Error("Color(nope) error = nil, want error")
	}
}

func TestConcatenation(t *testing.T) {
	foo := New(Plain("foo"))
	if foo.Len() != 3 {
		t.Errorf("Len() = %d, want 3", foo.Len())
	}

	joined := foo.Green().Add(Plain("bar"))
	if joined.Len() != 6 {
		t.Errorf("(foo + bar).Len() = %d, want 6", joined.Len())
	}
	if got, want := joined.Render(ProfileBasic), "\033[32mfoo"+Reset+"bar"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	prefixed := foo.Prepend(Plain("bar"))
	if got := prefixed.Plain(); got != "barfoo" {
		t.Errorf("Plain() = %q, want %q", got, "barfoo")
	}
	if got := New(Plain("héllo")).Len(); got != 5 {
		t.Errorf("Len() of multibyte text = %d, want 5", got)
	}
}

func TestColorize(t *testing.T) {
	tests := []struct {
		name       string
		color      string
		background bool
		want       string
	}{
		{"style", "bold", false, "\033[1mx" + Reset},
		{"name", "red", false, "\033[38;5;1mx" + Reset},
		{"hex", "#ff0000", false, "\033[38;5;196mx" + Reset},
		{"short hex", "f00", false, "\033[38;5;196mx" + Reset},
		{"background", "f00", true, "\033[48;5;196mx" + Reset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Colorize("x", tt.color, tt.background)
			if err != nil {
				t.Fatal(err)
			}
			if got := text.Render(Profile256); got != tt.want {
				t.Errorf("Colorize(x, %q).Render() = %q, want %q", tt.color, got, tt.want)
			}
		})
	}

	if _, err := Colorize("x", "not-a-color", false); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Colorize(invalid) error = %v, want ErrInvalidColor", err)
	}

	if got, want := ColorizeRGB("x", 80, 80, 80, false).Render(Profile256), "\033[38;5;239mx"+Reset; got != want {
		t.Errorf("ColorizeRGB() = %q, want %q", got, want)
	}
}

func TestStringFollowsStdoutProfile(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("NO_COLOR", "1")
	if got := Bold("plain").String(); got != "plain" {
		t.Errorf("String() with NO_COLOR = %q, want %q", got, "plain")
	}
}
