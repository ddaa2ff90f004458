package richtext

import "strings"

// Exhaustion reasons reported in ExtractStats.
const (
	ReasonMaxDepth = "maxDepth"
	ReasonMaxNodes = "maxNodes"
	ReasonMaxChars = "maxChars"
)

// Budget bounds a single extraction traversal. The limits substitute
// for a wall-clock timeout: worst-case work is deterministic in node
// count, character count and depth.
type Budget struct {
	MaxDepth int
	MaxNodes int
	MaxChars int
}

// DefaultBudget returns the standard extraction limits.
func DefaultBudget() Budget {
	return Budget{
		MaxDepth: 50,
		MaxNodes: 10000,
		MaxChars: 500000,
	}
}

// ExtractStats reports what a single traversal consumed.
// Budget exhaustion is a normal outcome, never an error.
type ExtractStats struct {
	NodesProcessed   int    `json:"nodes_processed"`
	CharsCollected   int    `json:"chars_collected"`
	MaxDepthReached  int    `json:"max_depth_reached"`
	BudgetExhausted  bool   `json:"budget_exhausted"`
	ExhaustionReason string `json:"exhaustion_reason,omitempty"`
}

// walker carries the per-call traversal state. The visited set is keyed
// by node identity so a shared or reentrant reference terminates that
// branch instead of looping.
type walker struct {
	budget  Budget
	stats   ExtractStats
	visited map[*Node]struct{}
}

func newWalker(b Budget) *walker {
	return &walker{
		budget:  b,
		visited: make(map[*Node]struct{}),
	}
}

func (w *walker) exhaust(reason string) {
	if !w.stats.BudgetExhausted {
		w.stats.BudgetExhausted = true
		w.stats.ExhaustionReason = reason
	}
}

// extractNode reduces one subtree to plain text, depth-first pre-order.
func (w *walker) extractNode(n *Node, depth int) string {
	if n == nil || w.stats.BudgetExhausted {
		return ""
	}
	if depth > w.budget.MaxDepth {
		w.exhaust(ReasonMaxDepth)
		return ""
	}
	if _, seen := w.visited[n]; seen {
		return ""
	}
	w.visited[n] = struct{}{}

	if w.stats.NodesProcessed >= w.budget.MaxNodes {
		w.exhaust(ReasonMaxNodes)
		return ""
	}
	w.stats.NodesProcessed++
	if depth > w.stats.MaxDepthReached {
		w.stats.MaxDepthReached = depth
	}

	if n.IsText() {
		return w.collectText(n.Text)
	}

	if len(n.Children) > 0 {
		return w.extractChildren(n.Children, depth+1)
	}

	// Leaf of a non-text variant (linebreak, upload, unknown)
	return ""
}

// extractChildren joins non-empty child fragments with a single space,
// stopping mid-list once the budget is exhausted.
func (w *walker) extractChildren(children []*Node, depth int) string {
	var parts []string
	for _, child := range children {
		if w.stats.BudgetExhausted {
			break
		}
		if fragment := w.extractNode(child, depth); fragment != "" {
			parts = append(parts, fragment)
		}
	}
	return strings.Join(parts, " ")
}

// collectText appends a text leaf's content, clipped to the remaining
// character budget.
func (w *walker) collectText(text string) string {
	remaining := w.budget.MaxChars - w.stats.CharsCollected
	if remaining <= 0 {
		w.exhaust(ReasonMaxChars)
		return ""
	}
	runes := []rune(text)
	if len(runes) > remaining {
		runes = runes[:remaining]
		w.stats.CharsCollected += len(runes)
		w.exhaust(ReasonMaxChars)
		return string(runes)
	}
	w.stats.CharsCollected += len(runes)
	return text
}

// ExtractText reduces a subtree to a plain-text string under the given
// budget. A nil node yields empty text.
func ExtractText(n *Node, b Budget) (string, ExtractStats) {
	w := newWalker(b)
	text := w.extractNode(n, 0)
	return text, w.stats
}

// ExtractNodesText reduces an ordered node sequence to plain text,
// sharing one budget across the whole list.
func ExtractNodesText(nodes []*Node, b Budget) (string, ExtractStats) {
	w := newWalker(b)
	text := w.extractChildren(nodes, 0)
	return text, w.stats
}

// ExtractDocumentText unwraps the stored {"root": ...} shape and
// extracts the whole document body. A nil document or missing root is
// treated as empty content.
func ExtractDocumentText(doc *Document, b Budget) (string, ExtractStats) {
	if doc == nil || doc.Root == nil {
		return "", ExtractStats{}
	}
	return ExtractText(doc.Root, b)
}
