package llm

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short", in: "abc", n: 5, want: "abc"},
		{name: "exact", in: "abc", n: 3, want: "abc"},
		{name: "ascii cut", in: "abcdef", n: 4, want: "abcd"},
		{name: "inside multibyte", in: "café ok", n: 4, want: "caf"},
		{name: "after multibyte", in: "café ok", n: 5, want: "café"},
		{name: "inside emoji", in: "☕☕", n: 5, want: "☕"},
		{name: "zero", in: "abc", n: 0, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.n)
			if got != tt.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("Truncate(%q, %d) produced invalid UTF-8", tt.in, tt.n)
			}
		})
	}
}
