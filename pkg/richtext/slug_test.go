package richtext

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "simple title",
			text: "Getting Started",
			want: "getting-started",
		},
		{
			name: "already lowercase",
			text: "hello",
			want: "hello",
		},
		{
			name: "accented characters decompose",
			text: "Café au Lait",
			want: "cafe-au-lait",
		},
		{
			name: "punctuation stripped",
			text: "What's New? (2026 Edition!)",
			want: "whats-new-2026-edition",
		},
		{
			name: "interior whitespace runs collapse",
			text: "a   b\t\tc",
			want: "a-b-c",
		},
		{
			name: "leading and trailing whitespace trimmed",
			text: "  padded title  ",
			want: "padded-title",
		},
		{
			name: "existing hyphens kept and runs collapsed",
			text: "re-use -- carefully",
			want: "re-use-carefully",
		},
		{
			name: "digits survive",
			text: "Chapter 12: The End",
			want: "chapter-12-the-end",
		},
		{
			name: "only symbols yields empty",
			text: "!!! ??? ***",
			want: "",
		},
		{
			name: "non-latin script strips to empty",
			text: "日本語",
			want: "",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.text)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Anchors only resolve when re-slugifying is a no-op.
func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Getting Started",
		"Café au Lait",
		"What's New? (2026 Edition!)",
		"a   b\t\tc",
		"re-use -- carefully",
	}

	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
