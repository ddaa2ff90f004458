package richtext

import "strings"

// TOCHeading is one table-of-contents entry. Level is always 1, 2 or 3.
type TOCHeading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// maxTOCLevel bounds which headings appear in the TOC. Deeper headings
// (h4..h6) stay renderable but are not navigation anchors.
const maxTOCLevel = 3

// ExtractHeadings walks the whole document in reading order and returns
// the ordered list of TOC entries. Headings nested inside other block
// types are found too. A nil document yields an empty list.
func ExtractHeadings(doc *Document) []TOCHeading {
	if doc == nil || doc.Root == nil {
		return []TOCHeading{}
	}

	toc := []TOCHeading{}
	visited := make(map[*Node]struct{})
	collectHeadings(doc.Root, visited, &toc)
	return toc
}

func collectHeadings(n *Node, visited map[*Node]struct{}, toc *[]TOCHeading) {
	if n == nil {
		return
	}
	if _, seen := visited[n]; seen {
		return
	}
	visited[n] = struct{}{}

	if n.Type == TypeHeading {
		if entry, ok := headingEntry(n); ok {
			*toc = append(*toc, entry)
		}
	}

	// Recurse into every container, including the heading itself:
	// nested structures may hold further headings.
	for _, child := range n.Children {
		collectHeadings(child, visited, toc)
	}
}

// headingEntry builds a TOC entry for one heading node. The text runs
// through the same extraction rule and the id through the same Slugify
// as the renderer, which is what keeps anchors resolvable.
func headingEntry(n *Node) (TOCHeading, bool) {
	level := n.HeadingLevel()
	if level < 1 || level > maxTOCLevel {
		return TOCHeading{}, false
	}

	text, _ := ExtractNodesText(n.Children, DefaultBudget())
	if strings.TrimSpace(text) == "" {
		return TOCHeading{}, false
	}

	id := Slugify(text)
	if id == "" {
		return TOCHeading{}, false
	}

	return TOCHeading{ID: id, Text: text, Level: level}, true
}
