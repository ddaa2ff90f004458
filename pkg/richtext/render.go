package richtext

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"strings"
)

// Highlighter is the external syntax-highlighting collaborator.
// It may fail; the renderer falls back to escaped plain text.
type Highlighter interface {
	Highlight(ctx context.Context, code, language string) (string, error)
}

// Renderer converts a document tree into HTML through per-type
// dispatch. It is stateless across calls; rendering never fails, it
// degrades.
type Renderer struct {
	highlighter Highlighter
	logger      Logger
	siteURL     *url.URL
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithHighlighter wires the code-highlighting collaborator.
func WithHighlighter(h Highlighter) RendererOption {
	return func(r *Renderer) { r.highlighter = h }
}

// WithLogger wires the diagnostics sink.
func WithLogger(l Logger) RendererOption {
	return func(r *Renderer) { r.logger = l }
}

// WithSiteURL sets the site origin used to classify link targets as
// internal or external. An unparseable origin is ignored.
func WithSiteURL(origin string) RendererOption {
	return func(r *Renderer) {
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			r.siteURL = u
		}
	}
}

// NewRenderer creates a renderer. Without options it renders with no
// highlighting, no diagnostics and external-only link classification.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{logger: NopLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderHTML renders the document body to an HTML fragment. A nil
// document or missing root yields no output.
func (r *Renderer) RenderHTML(ctx context.Context, doc *Document) string {
	if doc == nil || doc.Root == nil {
		return ""
	}
	var sb strings.Builder
	for _, child := range doc.Root.Children {
		r.renderNode(ctx, child, &sb)
	}
	return sb.String()
}

func (r *Renderer) renderChildren(ctx context.Context, n *Node, sb *strings.Builder) {
	for _, child := range n.Children {
		r.renderNode(ctx, child, sb)
	}
}

func (r *Renderer) renderNode(ctx context.Context, n *Node, sb *strings.Builder) {
	if n == nil {
		return
	}

	switch n.Type {
	case TypeText:
		r.renderText(n, sb)

	case TypeLinebreak:
		sb.WriteString("<br>")

	case TypeParagraph:
		sb.WriteString("<p>")
		r.renderChildren(ctx, n, sb)
		sb.WriteString("</p>")

	case TypeQuote:
		sb.WriteString("<blockquote>")
		r.renderChildren(ctx, n, sb)
		sb.WriteString("</blockquote>")

	case TypeHeading:
		r.renderHeading(ctx, n, sb)

	case TypeList:
		r.renderList(ctx, n, sb)

	case TypeListItem:
		// Loose list item outside a list wrapper
		sb.WriteString("<li>")
		r.renderChildren(ctx, n, sb)
		sb.WriteString("</li>")

	case TypeLink, TypeAutolink:
		r.renderLink(ctx, n, sb)

	case TypeCode:
		r.renderCode(ctx, n, sb)

	case TypeUpload:
		r.renderUpload(n, sb)

	case TypeRoot:
		r.renderChildren(ctx, n, sb)

	default:
		// Forward compatibility: new upstream node types must not break
		// rendering of existing content.
		r.logger.Warn("renderer", "unknown node type", map[string]interface{}{
			"type": n.Type,
		})
		r.renderChildren(ctx, n, sb)
	}
}

// inlineWrappers lists the format-flag tags outer-to-inner. The order
// keeps the markup shape deterministic when several bits are set.
var inlineWrappers = []struct {
	bit int
	tag string
}{
	{FormatBold, "strong"},
	{FormatItalic, "em"},
	{FormatUnderline, "u"},
	{FormatStrikethrough, "s"},
	{FormatCode, "code"},
	{FormatSubscript, "sub"},
	{FormatSuperscript, "sup"},
}

func (r *Renderer) renderText(n *Node, sb *strings.Builder) {
	bits := n.FormatBits()

	var open []string
	for _, w := range inlineWrappers {
		if bits&w.bit != 0 {
			sb.WriteString("<" + w.tag + ">")
			open = append(open, w.tag)
		}
	}

	sb.WriteString(html.EscapeString(n.Text))

	for i := len(open) - 1; i >= 0; i-- {
		sb.WriteString("</" + open[i] + ">")
	}
}

func (r *Renderer) renderHeading(ctx context.Context, n *Node, sb *strings.Builder) {
	level := n.HeadingLevel()
	if level == 0 {
		r.logger.Warn("renderer", "heading with invalid tag", map[string]interface{}{
			"tag": n.Tag,
		})
		r.renderChildren(ctx, n, sb)
		return
	}

	// Same extraction rule and Slugify as the TOC extractor, so the
	// anchor ids line up with the navigation entries.
	text, _ := ExtractNodesText(n.Children, DefaultBudget())
	id := Slugify(text)

	tag := fmt.Sprintf("h%d", level)
	if id == "" {
		sb.WriteString("<" + tag + ">")
		r.renderChildren(ctx, n, sb)
		sb.WriteString("</" + tag + ">")
		return
	}

	sb.WriteString(`<` + tag + ` id="` + id + `">`)
	r.renderChildren(ctx, n, sb)
	sb.WriteString(`<a href="#` + id + `" class="heading-anchor" aria-label="Link to this heading">#</a>`)
	sb.WriteString("</" + tag + ">")
}

func (r *Renderer) renderList(ctx context.Context, n *Node, sb *strings.Builder) {
	switch n.ListType {
	case "number":
		if n.Start > 1 {
			fmt.Fprintf(sb, `<ol start="%d">`, n.Start)
		} else {
			sb.WriteString("<ol>")
		}
		for _, child := range n.Children {
			r.renderListItem(ctx, child, n.ListType, sb)
		}
		sb.WriteString("</ol>")

	case "check":
		sb.WriteString(`<ul class="checklist">`)
		for _, child := range n.Children {
			r.renderListItem(ctx, child, n.ListType, sb)
		}
		sb.WriteString("</ul>")

	default: // bullet and anything unrecognized
		sb.WriteString("<ul>")
		for _, child := range n.Children {
			r.renderListItem(ctx, child, n.ListType, sb)
		}
		sb.WriteString("</ul>")
	}
}

func (r *Renderer) renderListItem(ctx context.Context, n *Node, listType string, sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type != TypeListItem {
		// Lists should only hold listitems; render strays as-is.
		r.renderNode(ctx, n, sb)
		return
	}

	// An item wrapping a nested list renders without its own marker,
	// otherwise the nesting level gets double-marked.
	nested := false
	for _, child := range n.Children {
		if child != nil && child.Type == TypeList {
			nested = true
			break
		}
	}

	switch {
	case nested:
		sb.WriteString(`<li class="nested-list-item">`)
	case listType == "check":
		if n.Checked {
			sb.WriteString(`<li role="checkbox" aria-checked="true" class="checklist-item checked">`)
		} else {
			sb.WriteString(`<li role="checkbox" aria-checked="false" class="checklist-item">`)
		}
	default:
		sb.WriteString("<li>")
	}

	r.renderChildren(ctx, n, sb)
	sb.WriteString("</li>")
}

func (r *Renderer) renderLink(ctx context.Context, n *Node, sb *strings.Builder) {
	href := "#"
	var fields *LinkFields
	if n.Fields != nil {
		fields = n.Fields
		if fields.URL != "" {
			href = fields.URL
		}
	}

	lower := strings.ToLower(href)
	special := strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "tel:")

	newTab := false
	if !special {
		newTab = r.isExternal(href)
		if fields != nil && fields.NewTab != nil {
			newTab = *fields.NewTab
		}
	}

	sb.WriteString(`<a href="` + html.EscapeString(href) + `"`)
	if newTab {
		sb.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	sb.WriteString(">")
	r.renderChildren(ctx, n, sb)
	sb.WriteString("</a>")
}

// isExternal classifies a link target. Relative paths, fragments and
// same-origin absolute URLs are internal navigation. A protocol-relative
// target ("//host/path") carries a host and is classified by it, not by
// the leading slash.
func (r *Renderer) isExternal(href string) bool {
	if strings.HasPrefix(href, "#") || strings.HasPrefix(href, "?") ||
		strings.HasPrefix(href, ".") ||
		(strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//")) {
		return false
	}
	u, err := url.Parse(href)
	if err != nil || u.Host == "" {
		return false
	}
	if r.siteURL != nil && strings.EqualFold(u.Host, r.siteURL.Host) {
		return false
	}
	return true
}

func (r *Renderer) renderCode(ctx context.Context, n *Node, sb *strings.Builder) {
	code := codeText(n)
	language := NormalizeLanguage(n.Language)

	if r.highlighter != nil {
		markup, err := r.highlighter.Highlight(ctx, code, language)
		if err == nil {
			sb.WriteString(markup)
			return
		}
		r.logger.Error("renderer", "syntax highlighting failed", map[string]interface{}{
			"language": language,
			"error":    err.Error(),
		})
	}

	// The block must always render something readable and safe.
	sb.WriteString(`<pre><code class="language-` + html.EscapeString(language) + `">`)
	sb.WriteString(html.EscapeString(code))
	sb.WriteString("</code></pre>")
}

// codeText flattens a code block's text/linebreak leaves into the raw
// source string handed to the highlighter.
func codeText(n *Node) string {
	var sb strings.Builder
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		switch child.Type {
		case TypeText:
			sb.WriteString(child.Text)
		case TypeLinebreak:
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (r *Renderer) renderUpload(n *Node, sb *strings.Builder) {
	media := n.Media()
	if media == nil || media.URL == "" {
		r.logger.Warn("renderer", "upload node without populated media", map[string]interface{}{
			"value": string(n.Value),
		})
		return
	}

	width, height := media.Width, media.Height
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 450
	}

	sb.WriteString(`<figure class="media">`)
	fmt.Fprintf(sb, `<img src="%s" alt="%s" width="%d" height="%d" loading="lazy">`,
		html.EscapeString(media.URL), html.EscapeString(media.Alt), width, height)
	if n.Fields != nil && n.Fields.Caption != "" {
		sb.WriteString("<figcaption>" + html.EscapeString(n.Fields.Caption) + "</figcaption>")
	}
	sb.WriteString("</figure>")
}
