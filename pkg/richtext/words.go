package richtext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// wordsPerMinute is the assumed reading speed for the estimate.
const wordsPerMinute = 200

// CountWords counts word-like segments in text using Unicode word
// segmentation (UAX #29). Segments without a letter or digit
// (punctuation, whitespace) are not words. Input that is not valid
// UTF-8 cannot be segmented and falls back to the hybrid counter.
func CountWords(text string) int {
	if text == "" {
		return 0
	}
	if !utf8.ValidString(text) {
		return CountWordsHybrid(text)
	}

	count := 0
	state := -1
	var segment string
	rest := text
	for len(rest) > 0 {
		segment, rest, state = uniseg.FirstWordInString(rest, state)
		if isWordLike(segment) {
			count++
		}
	}
	return count
}

// CountWordsHybrid approximates a word count without a segmenter:
// CJK characters are stripped and counted one word each (those scripts
// use no inter-word spaces), the remainder is split on whitespace runs.
// Mixed tokens like "日本語test" are approximate by design.
func CountWordsHybrid(text string) int {
	cjk := 0
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if isCJK(r) {
			cjk++
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(r)
	}
	return len(strings.Fields(sb.String())) + cjk
}

// ReadingTimeMinutes converts a word count to whole minutes, rounded up.
func ReadingTimeMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

func isWordLike(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}
