package ingestion

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/pkg/metrics"
)

// Corpus is the loaded stop-word set and document store.
type Corpus struct {
	StopWords tokenizer.StopWords
	Store     *index.Store
}

type loadOptions struct {
	metrics *metrics.Metrics
	logger  *slog.Logger
}

type LoadOption func(*loadOptions)

func WithMetrics(m *metrics.Metrics) LoadOption {
	return func(o *loadOptions) {
		o.metrics = m
	}
}

func WithLogger(l *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Load reads the stop-word line, the document count and that many document
// lines, assigning ids from 0. A malformed count loads no documents. Input
// that ends early stops ingestion at the last complete line.
func Load(r *Reader, opts ...LoadOption) (*Corpus, error) {
	o := &loadOptions{logger: slog.Default().With("component", "ingestion")}
	for _, opt := range opts {
		opt(o)
	}

	stopLine, err := r.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading stop words: %w", err)
	}
	corpus := &Corpus{
		StopWords: tokenizer.ParseStopWords(stopLine),
		Store:     index.NewStore(),
	}

	count, ok, err := r.ReadLineWithNumber()
	if err != nil {
		return nil, fmt.Errorf("reading document count: %w", err)
	}
	if !ok {
		o.logger.Warn("document count is not a number, loading no documents")
	}

	for id := 0; id < count; id++ {
		text, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			o.logger.Warn("input ended before all documents were read", "expected", count, "read", id)
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading document %d: %w", id, err)
		}
		corpus.Store.AddDocument(corpus.StopWords, id, text)
		if o.metrics != nil {
			o.metrics.DocsIndexedTotal.Inc()
		}
	}
	if o.metrics != nil {
		o.metrics.DocumentCount.Set(float64(corpus.Store.DocCount()))
	}

	o.logger.Info("corpus loaded",
		"stop_words", corpus.StopWords.Len(),
		"documents", corpus.Store.DocCount(),
		"words", corpus.Store.WordCount(),
	)
	o.logger.Debug("stop words", "words", corpus.StopWords.Words())
	return corpus, nil
}
