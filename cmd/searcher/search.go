package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/ingestion"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/searcher/executor"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/searcher/ranker"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/pkg/config"
)

func searchCommand(c *cli.Context) error {
	return runSearch(c.Context, loadedConfig(c), c.App.Reader, c.App.Writer)
}

// runSearch performs one search over the corpus and query read from in.
func runSearch(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	r := ingestion.NewReader(in)
	corpus, err := ingestion.Load(r)
	if err != nil {
		return err
	}
	query, err := r.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading query: %w", err)
	}

	exec := executor.New(corpus.Store, corpus.StopWords, ranker.New(cfg.Search.MaxResults))
	result, err := exec.Execute(ctx, query, 0)
	if err != nil {
		return err
	}
	return ingestion.WriteResults(out, result.Results)
}
