// Package matcher scores a single document against a parsed query.
package matcher

import (
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/searcher/parser"
)

// Match returns the number of distinct query words that occur anywhere in
// doc. Frequency and position do not matter.
func Match(doc index.Document, query parser.QueryWordSet) int {
	if query.Len() == 0 {
		return 0
	}
	matched := make(map[string]struct{}, query.Len())
	for _, word := range doc.Words {
		if _, seen := matched[word]; seen {
			continue
		}
		if query.Contains(word) {
			matched[word] = struct{}{}
		}
	}
	return len(matched)
}
