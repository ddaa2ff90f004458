package richtext

import (
	"strings"
	"testing"
)

func TestEstimateReadingTime(t *testing.T) {
	body := func(words int) *Document {
		return &Document{Root: &Node{Type: TypeRoot, Children: []*Node{
			paragraph(textNode(strings.TrimSpace(strings.Repeat("word ", words)))),
		}}}
	}

	tests := []struct {
		name        string
		doc         *Document
		status      string
		wantMinutes int
		wantWords   int
	}{
		{
			name:        "draft is zero without extraction",
			doc:         body(5000),
			status:      "draft",
			wantMinutes: 0,
			wantWords:   0,
		},
		{
			name:        "published short article reads in one minute",
			doc:         body(50),
			status:      StatusPublished,
			wantMinutes: 1,
			wantWords:   50,
		},
		{
			name:        "published long article rounds up",
			doc:         body(401),
			status:      StatusPublished,
			wantMinutes: 3,
			wantWords:   401,
		},
		{
			name:        "published at exact boundary",
			doc:         body(200),
			status:      StatusPublished,
			wantMinutes: 1,
			wantWords:   200,
		},
		{
			name:        "nil document",
			doc:         nil,
			status:      StatusPublished,
			wantMinutes: 0,
			wantWords:   0,
		},
		{
			name:        "empty body",
			doc:         &Document{Root: &Node{Type: TypeRoot}},
			status:      StatusPublished,
			wantMinutes: 0,
			wantWords:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateReadingTime(tt.doc, tt.status, DefaultBudget(), nil)
			if got.Minutes != tt.wantMinutes {
				t.Errorf("Minutes = %d, want %d", got.Minutes, tt.wantMinutes)
			}
			if got.Words != tt.wantWords {
				t.Errorf("Words = %d, want %d", got.Words, tt.wantWords)
			}
		})
	}
}

func TestEstimateReadingTimeBudgetExhaustionDegrades(t *testing.T) {
	children := make([]*Node, 20000)
	for i := range children {
		children[i] = textNode("w")
	}
	doc := &Document{Root: &Node{Type: TypeRoot, Children: children}}

	got := EstimateReadingTime(doc, StatusPublished, DefaultBudget(), nil)

	if !got.Stats.BudgetExhausted {
		t.Fatal("expected budget exhaustion")
	}
	// Degraded, not failed: partial count from the nodes reached.
	if got.Words == 0 || got.Minutes == 0 {
		t.Errorf("expected partial estimate, got %+v", got)
	}
}
