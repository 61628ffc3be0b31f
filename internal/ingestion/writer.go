package ingestion

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/searcher/ranker"
)

// WriteResults prints one "{ document_id = N, relevance = M }" line per result.
func WriteResults(w io.Writer, results []ranker.Result) error {
	bw := bufio.NewWriter(w)
	for _, res := range results {
		if _, err := fmt.Fprintf(bw, "{ document_id = %d, relevance = %d }\n", res.DocumentID, res.Relevance); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing results: %w", err)
	}
	return nil
}
