package richtext

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Document represents the top-level structure stored by the editor:
// a single "root" node wrapping the article body.
type Document struct {
	Root *Node `json:"root"`
}

// Node represents any node in the rich-text tree.
// The schema is a tagged union discriminated by Type; unused fields
// stay at their zero value for variants that do not carry them.
type Node struct {
	Type     string  `json:"type"`
	Version  int     `json:"version,omitempty"`
	Children []*Node `json:"children,omitempty"`

	// Base metadata shared by block nodes
	Direction string `json:"direction,omitempty"`
	Indent    int    `json:"indent,omitempty"`

	// Text specific
	Text   string      `json:"text,omitempty"`
	Format interface{} `json:"format,omitempty"` // int bitmask on text nodes, string alignment on blocks
	Style  string      `json:"style,omitempty"`
	Mode   string      `json:"mode,omitempty"`

	// Heading / list specific
	Tag      string `json:"tag,omitempty"`      // h1..h6, ul, ol
	ListType string `json:"listType,omitempty"` // check, bullet, number
	Start    int    `json:"start,omitempty"`

	// ListItem specific
	Checked bool `json:"checked,omitempty"`

	// Link / autolink / upload specific. Links carry the target here,
	// uploads an optional caption.
	Fields *LinkFields `json:"fields,omitempty"`

	// Code specific
	Language string `json:"language,omitempty"`

	// Shared "value" key: an ordinal int on listitem nodes, a media
	// reference (bare id or populated object) on upload nodes.
	Value json.RawMessage `json:"value,omitempty"`
}

// LinkFields holds the target description of a link or autolink node.
type LinkFields struct {
	URL      string                 `json:"url,omitempty"`
	NewTab   *bool                  `json:"newTab,omitempty"`
	LinkType string                 `json:"linkType,omitempty"`
	Doc      map[string]interface{} `json:"doc,omitempty"`
	Caption  string                 `json:"caption,omitempty"`
}

// Media is the populated form of an upload node's value.
// ID is untyped because upstream stores either string or numeric ids.
type Media struct {
	ID     interface{} `json:"id"`
	URL    string      `json:"url,omitempty"`
	Alt    string      `json:"alt,omitempty"`
	Width  int         `json:"width,omitempty"`
	Height int         `json:"height,omitempty"`
}

// Constants for the text format bitmask
const (
	FormatBold          = 1
	FormatItalic        = 2
	FormatStrikethrough = 4
	FormatUnderline     = 8
	FormatCode          = 16
	FormatSubscript     = 32
	FormatSuperscript   = 64
)

// Node type tags
const (
	TypeRoot      = "root"
	TypeText      = "text"
	TypeLinebreak = "linebreak"
	TypeParagraph = "paragraph"
	TypeHeading   = "heading"
	TypeList      = "list"
	TypeListItem  = "listitem"
	TypeQuote     = "quote"
	TypeLink      = "link"
	TypeAutolink  = "autolink"
	TypeCode      = "code"
	TypeUpload    = "upload"
)

// ParseDocument decodes the stored JSON form ({"root": {...}}) into a Document.
func ParseDocument(jsonContent string) (*Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(jsonContent), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rich-text json: %w", err)
	}
	return &doc, nil
}

// IsText reports whether the node is a text leaf.
func (n *Node) IsText() bool {
	return n != nil && n.Type == TypeText
}

// HasChildren reports whether the node carries a child sequence.
func (n *Node) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// FormatBits returns the integer format bitmask of a text node.
// Block nodes reuse the same JSON key for string alignment, so the
// field is untyped and normalized here.
func (n *Node) FormatBits() int {
	switch f := n.Format.(type) {
	case float64:
		return int(f)
	case int:
		return f
	default:
		return 0
	}
}

// HeadingLevel maps the heading tag to its numeric level (h2 -> 2).
// Returns 0 for anything that is not h1..h6.
func (n *Node) HeadingLevel() int {
	if len(n.Tag) != 2 || n.Tag[0] != 'h' {
		return 0
	}
	level := int(n.Tag[1] - '0')
	if level < 1 || level > 6 {
		return 0
	}
	return level
}

// ListValue returns the ordinal of a listitem node, or 0 when absent.
func (n *Node) ListValue() int {
	if len(n.Value) == 0 {
		return 0
	}
	var v int
	if err := json.Unmarshal(n.Value, &v); err != nil {
		return 0
	}
	return v
}

// Media resolves the upload node's value.
// Returns nil when the reference is unpopulated (a bare identifier or
// an object without a URL cannot be rendered).
func (n *Node) Media() *Media {
	if len(n.Value) == 0 {
		return nil
	}
	trimmed := strings.TrimSpace(string(n.Value))
	if !strings.HasPrefix(trimmed, "{") {
		return nil // bare id (string or number), not populated
	}
	var m Media
	if err := json.Unmarshal(n.Value, &m); err != nil {
		return nil
	}
	return &m
}
