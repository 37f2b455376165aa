package bank

import "testing"

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		// Direct case-insensitive containment.
		{"antenna", "The ANTENNA gain is", true},
		{"GAIN", "the antenna gain is", true},
		{"xyz", "abc", false},

		// Confusable characters: l/I/1 and o/O/0.
		{"l0ve", "I0VE", true},
		{"LK0123", "lk0l23", true},
		{"O5", "05 watts", true},
		{"1", "Initial", true}, // digit 1 matches letter I, by design

		// Substring anywhere, not anchored.
		{"2.1", "chapter 12.1.3", true},

		// Empty inputs never match.
		{"", "abc", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		if got := fuzzyMatch(tt.pattern, tt.text); got != tt.want {
			t.Errorf("fuzzyMatch(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "heii0"},
		{"L1O0oi", "ii000i"},
		{"73 de KC3LF", "73 de kc3if"},
	}

	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
