package richtext

import (
	"testing"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "empty",
			text: "",
			want: 0,
		},
		{
			name: "simple sentence",
			text: "the quick brown fox",
			want: 4,
		},
		{
			name: "punctuation is not a word",
			text: "hello, world!",
			want: 2,
		},
		{
			name: "numbers count",
			text: "chapter 12 begins",
			want: 3,
		},
		{
			name: "hyphenated words segment",
			text: "well-known pattern",
			want: 3,
		},
		{
			name: "contractions stay one word",
			text: "don't stop",
			want: 2,
		},
		{
			name: "only punctuation",
			text: "... --- !!!",
			want: 0,
		},
		{
			name: "japanese characters segment individually",
			text: "日本語",
			want: 3,
		},
		{
			name: "invalid utf8 falls back to hybrid",
			text: "hello \xff\xfe world",
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountWords(tt.text)
			if got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountWordsHybrid(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "latin only splits on whitespace",
			text: "three plain words",
			want: 3,
		},
		{
			name: "cjk counts one per character",
			text: "日本語",
			want: 3,
		},
		{
			name: "mixed script",
			text: "I read 日本語 daily",
			want: 6,
		},
		{
			name: "hangul",
			text: "한국",
			want: 2,
		},
		{
			name: "empty",
			text: "",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountWordsHybrid(tt.text)
			if got != tt.want {
				t.Errorf("CountWordsHybrid(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

// Appending non-empty text never lowers the count: a suffix can merge
// with the final segment at most, it cannot remove earlier words.
func TestCountWordsMonotonicUnderAppend(t *testing.T) {
	seeds := []string{
		"",
		"the quick brown fox",
		"hello, world!",
		"... --- !!!",
		"日本語",
		"mixed 日本語 and latin",
	}
	suffixes := []string{"s", " more words", "!", " ", "語", ", then", "123"}

	counters := []struct {
		name  string
		count func(string) int
	}{
		{"CountWords", CountWords},
		{"CountWordsHybrid", CountWordsHybrid},
	}

	for _, c := range counters {
		t.Run(c.name, func(t *testing.T) {
			for _, seed := range seeds {
				text := seed
				prev := c.count(text)
				for _, suffix := range suffixes {
					text += suffix
					got := c.count(text)
					if got < prev {
						t.Errorf("%s(%q) = %d, below %d before appending %q",
							c.name, text, got, prev, suffix)
					}
					prev = got
				}
			}
		})
	}
}

func TestReadingTimeMinutes(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{-5, 0},
		{1, 1},
		{199, 1},
		{200, 1},
		{201, 2},
		{400, 2},
		{401, 3},
		{1000, 5},
	}

	for _, tt := range tests {
		got := ReadingTimeMinutes(tt.words)
		if got != tt.want {
			t.Errorf("ReadingTimeMinutes(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}
