package phrase

import (
	"testing"
	"unicode"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Word
	}{
		{name: "empty input", raw: "", want: ""},
		{name: "plain lowercase", raw: "zebra", want: "Zebra"},
		{name: "shouting", raw: "ZEBRA", want: "Zebra"},
		{name: "mixed case", raw: "zEbRa", want: "Zebra"},
		{name: "digits and punctuation stripped", raw: "1. apple,", want: "Apple"},
		{name: "inner whitespace stripped", raw: " ma ngo ", want: "Mango"},
		{name: "only symbols", raw: "#42!", want: ""},
		{name: "non-ascii letters dropped", raw: "café", want: "Caf"},
		{name: "already normalized", raw: "Zebra", want: "Zebra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.raw); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSanitizeIsIdempotentAndWellFormed(t *testing.T) {
	inputs := []string{
		"", "a", "Z", "hello world", "  ABANDON  ", "x1y2z3", "ÄÖÜ", "tab\tsep",
		"word-with-dash", "12", "ab cd", "SeVeNtEeN",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(string(once)); twice != once {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", in, once, twice)
		}
		for i, r := range string(once) {
			if r < 'A' || (r > 'Z' && r < 'a') || r > 'z' {
				t.Errorf("Sanitize(%q) = %q contains non-letter %q", in, once, r)
			}
			if i == 0 && !unicode.IsUpper(r) {
				t.Errorf("Sanitize(%q) = %q does not start upper-case", in, once)
			}
			if i > 0 && !unicode.IsLower(r) {
				t.Errorf("Sanitize(%q) = %q has upper-case after first letter", in, once)
			}
		}
	}
}
