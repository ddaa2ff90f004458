package richtext

// Article status values the reading-time gate understands.
const StatusPublished = "published"

// ReadingTimeResult is the write-time estimate for one article.
type ReadingTimeResult struct {
	Minutes int
	Words   int
	Stats   ExtractStats
}

// EstimateReadingTime computes the stored reading-time estimate for an
// article's content field.
//
// Drafts are defined as zero without walking the tree. Budget
// exhaustion degrades to a possibly underestimated result with a logged
// warning. Any unexpected panic is caught and logged and the estimate
// falls back to zero: this computation must never abort the save that
// triggered it.
func EstimateReadingTime(doc *Document, status string, b Budget, log Logger) (result ReadingTimeResult) {
	if log == nil {
		log = NopLogger()
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error("richtext", "reading time computation failed", map[string]interface{}{
				"panic":       r,
				"status":      status,
				"has_content": doc != nil && doc.Root != nil,
			})
			result = ReadingTimeResult{}
		}
	}()

	if status != StatusPublished {
		return ReadingTimeResult{}
	}
	if doc == nil || doc.Root == nil {
		return ReadingTimeResult{}
	}

	text, stats := ExtractDocumentText(doc, b)
	if stats.BudgetExhausted {
		log.Warn("richtext", "text extraction budget exhausted", map[string]interface{}{
			"reason":          stats.ExhaustionReason,
			"nodes_processed": stats.NodesProcessed,
			"chars_collected": stats.CharsCollected,
		})
	}

	words := CountWords(text)
	return ReadingTimeResult{
		Minutes: ReadingTimeMinutes(words),
		Words:   words,
		Stats:   stats,
	}
}
