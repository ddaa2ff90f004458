package richtext

import (
	"strings"
	"testing"
)

func textNode(s string) *Node {
	return &Node{Type: TypeText, Text: s}
}

func paragraph(children ...*Node) *Node {
	return &Node{Type: TypeParagraph, Children: children}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "nil node",
			node: nil,
			want: "",
		},
		{
			name: "text leaf",
			node: textNode("hello"),
			want: "hello",
		},
		{
			name: "paragraph joins children with single space",
			node: paragraph(textNode("hello"), textNode("world")),
			want: "hello world",
		},
		{
			name: "empty fragments skipped",
			node: paragraph(textNode("a"), textNode(""), &Node{Type: TypeLinebreak}, textNode("b")),
			want: "a b",
		},
		{
			name: "nested containers flatten",
			node: &Node{Type: TypeRoot, Children: []*Node{
				paragraph(textNode("first")),
				&Node{Type: TypeQuote, Children: []*Node{
					paragraph(textNode("second")),
				}},
			}},
			want: "first second",
		},
		{
			name: "non-text leaf yields nothing",
			node: &Node{Type: TypeUpload},
			want: "",
		},
		{
			name: "unknown type with children still traversed",
			node: &Node{Type: "customBlock", Children: []*Node{textNode("inside")}},
			want: "inside",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := ExtractText(tt.node, DefaultBudget())
			if got != tt.want {
				t.Errorf("ExtractText = %q, want %q", got, tt.want)
			}
			if stats.BudgetExhausted {
				t.Errorf("unexpected budget exhaustion: %s", stats.ExhaustionReason)
			}
		})
	}
}

func TestExtractTextMaxNodes(t *testing.T) {
	// A flat tree far above the node limit: extraction must stop at the
	// limit and report it, not error out.
	children := make([]*Node, 20000)
	for i := range children {
		children[i] = textNode("w")
	}
	root := &Node{Type: TypeRoot, Children: children}

	b := DefaultBudget()
	text, stats := ExtractText(root, b)

	if !stats.BudgetExhausted {
		t.Fatal("expected budget exhaustion")
	}
	if stats.ExhaustionReason != ReasonMaxNodes {
		t.Errorf("ExhaustionReason = %q, want %q", stats.ExhaustionReason, ReasonMaxNodes)
	}
	if stats.NodesProcessed > b.MaxNodes {
		t.Errorf("NodesProcessed = %d, exceeds limit %d", stats.NodesProcessed, b.MaxNodes)
	}
	if text == "" {
		t.Error("expected partial text before exhaustion")
	}
}

func TestExtractTextMaxDepth(t *testing.T) {
	// Chain deeper than the depth limit.
	leaf := textNode("deep")
	node := paragraph(leaf)
	for i := 0; i < 60; i++ {
		node = paragraph(node)
	}

	text, stats := ExtractText(node, DefaultBudget())

	if !stats.BudgetExhausted {
		t.Fatal("expected budget exhaustion")
	}
	if stats.ExhaustionReason != ReasonMaxDepth {
		t.Errorf("ExhaustionReason = %q, want %q", stats.ExhaustionReason, ReasonMaxDepth)
	}
	if text != "" {
		t.Errorf("text = %q, want empty (leaf below cutoff)", text)
	}
}

func TestExtractTextMaxChars(t *testing.T) {
	b := Budget{MaxDepth: 50, MaxNodes: 10000, MaxChars: 10}
	root := paragraph(textNode("12345678"), textNode("abcdefgh"))

	text, stats := ExtractText(root, b)

	if !stats.BudgetExhausted {
		t.Fatal("expected budget exhaustion")
	}
	if stats.ExhaustionReason != ReasonMaxChars {
		t.Errorf("ExhaustionReason = %q, want %q", stats.ExhaustionReason, ReasonMaxChars)
	}
	if stats.CharsCollected != 10 {
		t.Errorf("CharsCollected = %d, want 10", stats.CharsCollected)
	}
	if text != "12345678 ab" {
		t.Errorf("text = %q, want clipped %q", text, "12345678 ab")
	}
}

func TestExtractTextCharBudgetCountsRunes(t *testing.T) {
	b := Budget{MaxDepth: 50, MaxNodes: 10000, MaxChars: 3}
	text, stats := ExtractText(textNode("日本語テスト"), b)

	if text != "日本語" {
		t.Errorf("text = %q, want %q", text, "日本語")
	}
	if stats.CharsCollected != 3 {
		t.Errorf("CharsCollected = %d, want 3", stats.CharsCollected)
	}
}

func TestExtractTextSharedReference(t *testing.T) {
	// The same node referenced twice: the second visit must terminate
	// instead of double-counting or looping.
	shared := paragraph(textNode("once"))
	root := &Node{Type: TypeRoot, Children: []*Node{shared, shared}}

	text, stats := ExtractText(root, DefaultBudget())

	if text != "once" {
		t.Errorf("text = %q, want %q", text, "once")
	}
	if stats.BudgetExhausted {
		t.Errorf("unexpected exhaustion: %s", stats.ExhaustionReason)
	}
}

func TestExtractTextCycle(t *testing.T) {
	// A true cycle built in memory. Stored JSON can't express this, but
	// the walker must still terminate if handed one.
	a := &Node{Type: TypeParagraph}
	b := &Node{Type: TypeParagraph, Children: []*Node{textNode("loop"), a}}
	a.Children = []*Node{b}

	text, stats := ExtractText(a, DefaultBudget())

	if text != "loop" {
		t.Errorf("text = %q, want %q", text, "loop")
	}
	if stats.NodesProcessed > 10 {
		t.Errorf("NodesProcessed = %d, cycle was not cut", stats.NodesProcessed)
	}
}

func TestExtractNodesTextSharesBudget(t *testing.T) {
	b := Budget{MaxDepth: 50, MaxNodes: 3, MaxChars: 500000}
	nodes := []*Node{textNode("a"), textNode("b"), textNode("c"), textNode("d")}

	text, stats := ExtractNodesText(nodes, b)

	if !stats.BudgetExhausted || stats.ExhaustionReason != ReasonMaxNodes {
		t.Fatalf("expected maxNodes exhaustion, got %+v", stats)
	}
	if text != "a b c" {
		t.Errorf("text = %q, want %q", text, "a b c")
	}
}

func TestExtractDocumentText(t *testing.T) {
	doc := &Document{Root: &Node{Type: TypeRoot, Children: []*Node{
		paragraph(textNode("body")),
	}}}

	text, _ := ExtractDocumentText(doc, DefaultBudget())
	if text != "body" {
		t.Errorf("text = %q, want %q", text, "body")
	}

	if text, _ := ExtractDocumentText(nil, DefaultBudget()); text != "" {
		t.Errorf("nil document yielded %q", text)
	}
	if text, _ := ExtractDocumentText(&Document{}, DefaultBudget()); text != "" {
		t.Errorf("missing root yielded %q", text)
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(`{"root":{"type":"root","children":[{"type":"paragraph","children":[{"type":"text","text":"hi","format":1}]}]}}`)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	text, _ := ExtractDocumentText(doc, DefaultBudget())
	if text != "hi" {
		t.Errorf("text = %q, want %q", text, "hi")
	}

	leaf := doc.Root.Children[0].Children[0]
	if leaf.FormatBits() != FormatBold {
		t.Errorf("FormatBits = %d, want %d", leaf.FormatBits(), FormatBold)
	}

	if _, err := ParseDocument("not json"); err == nil {
		t.Error("expected error for invalid json")
	}
}

func TestExtractTextLongContent(t *testing.T) {
	// A realistic long document well inside the default limits.
	var children []*Node
	for i := 0; i < 500; i++ {
		children = append(children, paragraph(textNode(strings.Repeat("word ", 20))))
	}
	root := &Node{Type: TypeRoot, Children: children}

	_, stats := ExtractText(root, DefaultBudget())
	if stats.BudgetExhausted {
		t.Errorf("unexpected exhaustion: %+v", stats)
	}
	if stats.NodesProcessed != 1001 {
		t.Errorf("NodesProcessed = %d, want 1001", stats.NodesProcessed)
	}
}
