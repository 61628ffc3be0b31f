package executor

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/analytics"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/searcher/ranker"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/pkg/metrics"
)

type trackerFunc func(analytics.SearchEvent)

func (f trackerFunc) Track(e analytics.SearchEvent) { f(e) }

func newExecutor(t *testing.T, opts ...Option) *Executor {
	t.Helper()
	stop := tokenizer.ParseStopWords("и в на")
	store := index.NewStore()
	for id, text := range []string{
		"белый кот и модный ошейник",
		"пушистый кот пушистый хвост",
		"ухоженный пёс выразительные глаза",
	} {
		store.AddDocument(stop, id, text)
	}
	return New(store, stop, ranker.New(ranker.MaxResultDocumentCount), opts...)
}

func TestExecute(t *testing.T) {
	m := metrics.New()
	var events []analytics.SearchEvent
	e := newExecutor(t, WithMetrics(m), WithTracker(trackerFunc(func(ev analytics.SearchEvent) {
		events = append(events, ev)
	})))

	res, err := e.Execute(context.Background(), "пушистый ухоженный кот", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalHits)
	assert.Equal(t, []string{"кот", "пушистый", "ухоженный"}, res.Terms)
	assert.Equal(t, []ranker.Result{
		{DocumentID: 1, Relevance: 2},
		{DocumentID: 2, Relevance: 1},
		{DocumentID: 0, Relevance: 1},
	}, res.Results)

	res, err = e.Execute(context.Background(), "и в", 0)
	require.NoError(t, err)
	assert.Empty(t, res.Results)

	res, err = e.Execute(context.Background(), "рыба", 0)
	require.NoError(t, err)
	assert.Empty(t, res.Results)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchQueriesTotal.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchQueriesTotal.WithLabelValues("empty_query")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchQueriesTotal.WithLabelValues("zero_result")))

	require.Len(t, events, 3)
	assert.Equal(t, analytics.EventSearch, events[0].Type)
	assert.Equal(t, 3, events[0].Returned)
	assert.Equal(t, analytics.EventZeroResult, events[2].Type)
}

func TestExecuteCancelled(t *testing.T) {
	e := newExecutor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Execute(ctx, "кот", 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecuteLimit(t *testing.T) {
	stop := tokenizer.StopWords{}
	store := index.NewStore()
	for id := 0; id < 4; id++ {
		store.AddDocument(stop, id, "cat")
	}
	e := New(store, stop, ranker.New(2))
	res, err := e.Execute(context.Background(), "cat", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, res.TotalHits)
	assert.Equal(t, []ranker.Result{{DocumentID: 3, Relevance: 1}, {DocumentID: 2, Relevance: 1}}, res.Results)
	assert.Equal(t, 2, e.Limit())

	res, err = e.Execute(context.Background(), "cat", 1)
	require.NoError(t, err)
	assert.Equal(t, []ranker.Result{{DocumentID: 3, Relevance: 1}}, res.Results)

	res, err = e.Execute(context.Background(), "cat", 10)
	require.NoError(t, err)
	assert.Len(t, res.Results, 2)
}
