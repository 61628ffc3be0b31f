package executor

import (
	"context"
	"time"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/analytics"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/searcher/parser"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/searcher/ranker"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/pkg/metrics"
)

type SearchResult struct {
	Query     string          `json:"query"`
	Terms     []string        `json:"terms"`
	TotalHits int             `json:"total_hits"`
	Results   []ranker.Result `json:"results"`
}

// Tracker receives one event per executed query.
type Tracker interface {
	Track(event analytics.SearchEvent)
}

type Executor struct {
	store     *index.Store
	stopWords tokenizer.StopWords
	ranker    *ranker.Ranker
	metrics   *metrics.Metrics
	tracker   Tracker
}

type Option func(*Executor)

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Executor) {
		e.metrics = m
	}
}

func WithTracker(t Tracker) Option {
	return func(e *Executor) {
		e.tracker = t
	}
}

func New(store *index.Store, stopWords tokenizer.StopWords, r *ranker.Ranker, opts ...Option) *Executor {
	e := &Executor{
		store:     store,
		stopWords: stopWords,
		ranker:    r,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Executor) Limit() int {
	return e.ranker.Limit()
}

func (e *Executor) Document(id int) (index.Document, bool) {
	return e.store.Document(id)
}

func (e *Executor) DocCount() int {
	return e.store.DocCount()
}

// Execute ranks the store against rawQuery. limit narrows the ranker's own
// limit; zero, negative or larger values leave it unchanged.
func (e *Executor) Execute(ctx context.Context, rawQuery string, limit int) (*SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := e.ranker
	if limit > 0 && limit < r.Limit() {
		r = ranker.New(limit)
	}
	start := time.Now()
	plan := parser.Parse(rawQuery, e.stopWords)
	results, total := r.RankWithTotal(e.store.Documents(), plan.Words)
	elapsed := time.Since(start)

	result := &SearchResult{
		Query:     rawQuery,
		Terms:     plan.Words.Terms(),
		TotalHits: total,
		Results:   results,
	}

	logger.FromContext(ctx).Debug("query executed",
		"component", "query-executor",
		"query", rawQuery,
		"terms", result.Terms,
		"total_hits", total,
		"returned", len(results),
		"latency", elapsed,
	)
	e.observe(plan, result, elapsed)
	if e.tracker != nil {
		eventType := analytics.EventSearch
		if len(results) == 0 {
			eventType = analytics.EventZeroResult
		}
		e.tracker.Track(analytics.SearchEvent{
			Type:      eventType,
			Query:     rawQuery,
			Terms:     result.Terms,
			TotalHits: total,
			Returned:  len(results),
			LatencyUs: elapsed.Microseconds(),
			Timestamp: time.Now().UTC(),
			RequestID: logger.RequestID(ctx),
		})
	}
	return result, nil
}

func (e *Executor) observe(plan *parser.QueryPlan, result *SearchResult, elapsed time.Duration) {
	if e.metrics == nil {
		return
	}
	resultType := "hit"
	switch {
	case plan.Words.Len() == 0:
		resultType = "empty_query"
	case len(result.Results) == 0:
		resultType = "zero_result"
	}
	e.metrics.SearchQueriesTotal.WithLabelValues(resultType).Inc()
	e.metrics.SearchLatency.Observe(elapsed.Seconds())
	e.metrics.SearchResultsCount.Observe(float64(len(result.Results)))
}
