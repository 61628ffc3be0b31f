package ranker

import (
	"sort"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/searcher/matcher"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/searcher/parser"
)

// MaxResultDocumentCount is the default number of results returned per query.
const MaxResultDocumentCount = 5

// RankedEntry is the ordering record. It never leaves this package.
type RankedEntry struct {
	Relevance  int
	DocumentID int
}

// Result is one ranked document as returned to callers.
type Result struct {
	DocumentID int `json:"document_id"`
	Relevance  int `json:"relevance"`
}

type Ranker struct {
	limit int
}

// New returns a Ranker that keeps at most limit results. A non-positive
// limit means MaxResultDocumentCount.
func New(limit int) *Ranker {
	if limit <= 0 {
		limit = MaxResultDocumentCount
	}
	return &Ranker{limit: limit}
}

func (r *Ranker) Limit() int {
	return r.limit
}

// FindTopDocuments parses rawQuery and ranks every document in store.
func (r *Ranker) FindTopDocuments(store *index.Store, stopWords tokenizer.StopWords, rawQuery string) []Result {
	plan := parser.Parse(rawQuery, stopWords)
	return r.Rank(store.Documents(), plan.Words)
}

// Rank scores docs against query and returns the top results ordered by
// relevance descending, then document id descending.
func (r *Ranker) Rank(docs []index.Document, query parser.QueryWordSet) []Result {
	results, _ := r.RankWithTotal(docs, query)
	return results
}

// RankWithTotal is Rank that also reports how many documents matched before
// truncation.
func (r *Ranker) RankWithTotal(docs []index.Document, query parser.QueryWordSet) ([]Result, int) {
	entries := findAll(docs, query)
	return r.top(entries), len(entries)
}

// findAll returns an entry for every document with non-zero relevance, in
// document order.
func findAll(docs []index.Document, query parser.QueryWordSet) []RankedEntry {
	entries := make([]RankedEntry, 0)
	for _, doc := range docs {
		relevance := matcher.Match(doc, query)
		if relevance > 0 {
			entries = append(entries, RankedEntry{
				Relevance:  relevance,
				DocumentID: doc.ID,
			})
		}
	}
	return entries
}

func (r *Ranker) top(entries []RankedEntry) []Result {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Relevance != entries[j].Relevance {
			return entries[i].Relevance > entries[j].Relevance
		}
		return entries[i].DocumentID > entries[j].DocumentID
	})
	if len(entries) > r.limit {
		entries = entries[:r.limit]
	}
	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, Result{
			DocumentID: e.DocumentID,
			Relevance:  e.Relevance,
		})
	}
	return results
}
