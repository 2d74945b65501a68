package termcolor

import (
	"os"
	"testing"
)

// clearColorEnv unsets every variable DetectProfile consults and restores
// them when the test ends.
func clearColorEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NO_COLOR", "TERMINAL_COLOR", "COLORTERM", "TERM", "COLUMNS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"", ColorAuto, true},
		{"yes", ColorAuto, true},
		{"Auto", ColorAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriterColorNever(t *testing.T) {
	f, err := os.CreateTemp("", "colortest")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	w := NewWriter(f, ColorNever)

	if w.Enabled() {
		t.Error("expected Enabled() = false for ColorNever")
	}

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Red", w.Red},
		{"Green", w.Green},
		{"Yellow", w.Yellow},
		{"Cyan", w.Cyan},
		{"Magenta", w.Magenta},
		{"Gray", w.Gray},
		{"Bold", w.Bold},
		{"BoldCyan", w.BoldCyan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn("hello")
			if got != "hello" {
				t.Errorf("%s(\"hello\") = %q, want %q", tt.name, got, "hello")
			}
		})
	}
}

func TestWriterColorAlways(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("TERM", "xterm")

	f, err := os.CreateTemp("", "colortest")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	w := NewWriter(f, ColorAlways)

	if !w.Enabled() {
		t.Error("expected Enabled() = true for ColorAlways")
	}
	if w.Profile() != ProfileBasic {
		t.Errorf("Profile() = %v, want basic", w.Profile())
	}

	tests := []struct {
		name string
		fn   func(string) string
		want string
	}{
		{"Red", w.Red, "\033[31mhello" + Reset},
		{"Green", w.Green, "\033[32mhello" + Reset},
		{"Yellow", w.Yellow, "\033[33mhello" + Reset},
		{"Cyan", w.Cyan, "\033[36mhello" + Reset},
		{"Gray", w.Gray, "\033[90mhello" + Reset},
		{"Bold", w.Bold, "\033[1mhello" + Reset},
		{"BoldCyan", w.BoldCyan, "\033[1m\033[36mhello" + Reset + Reset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn("hello")
			if got != tt.want {
				t.Errorf("%s(\"hello\") = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestWriterColorAlways256(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("TERM", "xterm-256color")

	w := NewWriter(os.Stdout, ColorAlways)
	if w.Profile() != Profile256 {
		t.Fatalf("Profile() = %v, want 256", w.Profile())
	}
	if got, want := w.Red("x"), "\033[38;5;1mx"+Reset; got != want {
		t.Errorf("Red(\"x\") = %q, want %q", got, want)
	}
}

func TestShouldColorize_Pipe(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("TERM", "xterm-256color")

	// A pipe fd is not a terminal, so ShouldColorize should return false.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if ShouldColorize(r) {
		t.Error("ShouldColorize(pipe) = true, want false")
	}
}

func TestShouldColorize_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERMINAL_COLOR", "1")

	// Even if we pass a real file, NO_COLOR should force false.
	f, err := os.CreateTemp("", "colortest")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if ShouldColorize(f) {
		t.Error("ShouldColorize with NO_COLOR set = true, want false")
	}
}

func TestNewWriterAutoMode_Pipe(t *testing.T) {
	clearColorEnv(t)

	// In auto mode with a pipe, color should be disabled.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	cw := NewWriter(r, ColorAuto)
	if cw.Enabled() {
		t.Error("NewWriter(pipe, ColorAuto).Enabled() = true, want false")
	}
}

func TestDetectProfileForced(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	tests := []struct {
		name string
		env  map[string]string
		want Profile
	}{
		{"xterm", map[string]string{"TERM": "xterm"}, ProfileBasic},
		{"linux", map[string]string{"TERM": "linux"}, ProfileBasic},
		{"256color", map[string]string{"TERM": "xterm-256color"}, Profile256},
		{"screen-color", map[string]string{"TERM": "screen-color"}, ProfileBasic},
		{"dumb", map[string]string{"TERM": "dumb"}, ProfileNone},
		{"unset term", map[string]string{}, ProfileNone},
		{"colorterm", map[string]string{"COLORTERM": "truecolor", "TERM": "dumb"}, ProfileBasic},
		{"colorterm 256", map[string]string{"COLORTERM": "1", "TERM": "screen-256"}, Profile256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearColorEnv(t)
			t.Setenv("TERMINAL_COLOR", "1")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := DetectProfile(r); got != tt.want {
				t.Errorf("DetectProfile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWidthFallback(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	clearColorEnv(t)
	if got := Width(r); got != defaultWidth {
		t.Errorf("Width(pipe) = %d, want %d", got, defaultWidth)
	}

	t.Setenv("COLUMNS", "120")
	if got := Width(r); got != 119 {
		t.Errorf("Width(pipe) with COLUMNS=120 = %d, want 119", got)
	}

	t.Setenv("COLUMNS", "wide")
	if got := Width(nil); got != defaultWidth {
		t.Errorf("Width(nil) with bad COLUMNS = %d, want %d", got, defaultWidth)
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain", "hello", 5},
		{"basic", Red("hello").Render(ProfileBasic), 5},
		{"256 nested", Bold("ab").Add(Plain("cd")).Fg(200).Render(Profile256), 4},
		{"wide runes", "日本", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleWidth(tt.in); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
