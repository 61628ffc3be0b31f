package parser

import (
	"sort"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/tokenizer"
)

// QueryWordSet is the set of distinct non-stop words of one query.
type QueryWordSet map[string]struct{}

func (q QueryWordSet) Contains(word string) bool {
	_, ok := q[word]
	return ok
}

func (q QueryWordSet) Len() int {
	return len(q)
}

// Terms returns the query words in lexical order.
func (q QueryWordSet) Terms() []string {
	terms := make([]string, 0, len(q))
	for term := range q {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

type QueryPlan struct {
	Words    QueryWordSet
	RawQuery string
}

func Parse(query string, stopWords tokenizer.StopWords) *QueryPlan {
	words := tokenizer.RemoveStopWords(query, stopWords)
	plan := &QueryPlan{
		Words:    make(QueryWordSet, len(words)),
		RawQuery: query,
	}
	for _, word := range words {
		plan.Words[word] = struct{}{}
	}
	return plan
}
