package highlight

import (
	"context"
	"strings"
	"testing"
)

func TestHighlight(t *testing.T) {
	h := New("github")

	markup, err := h.Highlight(context.Background(), `print("hi")`, "python")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if !strings.Contains(markup, "<pre") {
		t.Errorf("markup missing pre wrapper: %q", markup)
	}
	if !strings.Contains(markup, "print") {
		t.Errorf("markup missing source text: %q", markup)
	}
}

func TestHighlightUnknownLanguageFallsBack(t *testing.T) {
	h := New("")

	markup, err := h.Highlight(context.Background(), "some text", "not-a-language")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if !strings.Contains(markup, "some text") {
		t.Errorf("fallback lexer lost the source text: %q", markup)
	}
}

func TestHighlightMemoizes(t *testing.T) {
	h := New("github")

	first, err := h.Highlight(context.Background(), "SELECT 1", "sql")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	second, err := h.Highlight(context.Background(), "SELECT 1", "sql")
	if err != nil {
		t.Fatalf("Highlight (cached): %v", err)
	}
	if first != second {
		t.Error("cached result differs from first render")
	}
}

func TestHighlightCancelledContext(t *testing.T) {
	h := New("github")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := h.Highlight(ctx, "x", "go"); err == nil {
		t.Error("expected error for cancelled context")
	}
}
