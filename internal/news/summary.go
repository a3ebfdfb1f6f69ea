// Package news condenses a symbol's headlines into a short synopsis.
package news

import (
	"strings"

	"finboard/internal/catalog"
)

// maxSummaryLen bounds the synopsis so the dashboard card never overflows.
const maxSummaryLen = 300

const ellipsis = "..."

// Summarize joins article descriptions with single spaces, in input order,
// and truncates the result to the first maxSummaryLen characters plus an
// ellipsis when it runs long. No articles means an empty synopsis, not an
// error.
func Summarize(items []catalog.NewsItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Description)
	}
	joined := strings.Join(parts, " ")
	runes := []rune(joined)
	if len(runes) <= maxSummaryLen {
		return joined
	}
	return string(runes[:maxSummaryLen]) + ellipsis
}
