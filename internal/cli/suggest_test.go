package cli

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"build", "biuld", 2}, // transposition
		{"--verbose", "--verbos", 1},
		{"héllo", "hello", 1}, // counted in runes
		{"日本", "日本語", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got := levenshtein(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if rev := levenshtein(tt.b, tt.a); rev != got {
				t.Errorf("levenshtein(%q, %q) = %d, but reverse = %d", tt.a, tt.b, got, rev)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"build", "serve", "publish", "-h", "--help", "-v", "--verbose", "--no-color"}

	tests := []struct {
		input string
		want  string
	}{
		{"biuld", "build"},
		{"serv", "serve"},
		{"pubilsh", "publish"},
		{"--verbos", "--verbose"},
		{"--no-colour", "--no-color"},
		{"--hlep", "--help"},
		{"deploy", ""},
		{"", ""},
		{"build", "build"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Suggest(tt.input, candidates); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
