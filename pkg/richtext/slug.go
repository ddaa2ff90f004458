package richtext

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Slugify normalizes heading text into a URL-safe anchor id.
//
// The heading renderer and the TOC extractor both call this, and the
// anchors only resolve if the two results are byte-identical, so the
// steps are fixed: lowercase, NFD-decompose and strip combining marks,
// drop anything outside [a-z0-9\s-], trim, turn whitespace runs into a
// single hyphen, collapse hyphen runs.
//
// The result may be empty; callers treat an empty slug as "no anchor".
func Slugify(text string) string {
	lowered := strings.ToLower(text)
	decomposed := norm.NFD.String(lowered)

	var sb strings.Builder
	sb.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue // combining diacritical mark
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			sb.WriteRune(' ')
		}
	}

	slug := strings.TrimSpace(sb.String())
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = hyphenRun.ReplaceAllString(slug, "-")
	return slug
}
