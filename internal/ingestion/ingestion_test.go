package ingestion

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/searcher/ranker"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/pkg/metrics"
)

func TestReadLine(t *testing.T) {
	r := NewReader(strings.NewReader("first\r\nsecond\n\nlast"))

	for _, want := range []string{"first", "second", "", "last"} {
		line, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
	line, err := r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, line)
}

func TestReadLineWithNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
		rest  string
	}{
		{"plain", "3\nnext", 3, true, "next"},
		{"trailing garbage dropped", "3 docs follow\nnext", 3, true, "next"},
		{"glued garbage dropped", "12abc\nnext", 12, true, "next"},
		{"leading blank lines skipped", "\n  \n 2\nnext", 2, true, "next"},
		{"negative", "-4\nnext", -4, true, "next"},
		{"plus sign", "+1\nnext", 1, true, "next"},
		{"not a number", "many\nnext", 0, false, "next"},
		{"sign only", "-\nnext", 0, false, "next"},
		{"overflow", "99999999999999999999999\nnext", 0, false, "next"},
		{"no newline", "7", 7, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))
			n, ok, err := r.ReadLineWithNumber()
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
			assert.Equal(t, tt.ok, ok)

			rest, _ := r.ReadLine()
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestReadLineWithNumberEmptyInput(t *testing.T) {
	n, ok, err := NewReader(strings.NewReader("")).ReadLineWithNumber()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	input := "и в на\n3\nбелый кот и модный ошейник\nпушистый кот пушистый хвост\nухоженный пёс выразительные глаза\nпушистый ухоженный кот\n"
	m := metrics.New()
	r := NewReader(strings.NewReader(input))

	corpus, err := Load(r, WithMetrics(m))
	require.NoError(t, err)
	assert.Equal(t, 3, corpus.StopWords.Len())
	docs := corpus.Store.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, 2, docs[2].ID)
	assert.Equal(t, []string{"белый", "кот", "модный", "ошейник"}, docs[0].Words)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DocsIndexedTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DocumentCount))

	query, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "пушистый ухоженный кот", query)
}

func TestLoadEdgeCases(t *testing.T) {
	t.Run("malformed count", func(t *testing.T) {
		corpus, err := Load(NewReader(strings.NewReader("a\nlots\ncat\ncat\n")))
		require.NoError(t, err)
		assert.Equal(t, 0, corpus.Store.DocCount())
	})

	t.Run("negative count", func(t *testing.T) {
		corpus, err := Load(NewReader(strings.NewReader("\n-2\ncat\n")))
		require.NoError(t, err)
		assert.Equal(t, 0, corpus.Store.DocCount())
	})

	t.Run("input ends early", func(t *testing.T) {
		corpus, err := Load(NewReader(strings.NewReader("\n5\none\ntwo")))
		require.NoError(t, err)
		assert.Equal(t, 2, corpus.Store.DocCount())
	})

	t.Run("empty input", func(t *testing.T) {
		corpus, err := Load(NewReader(strings.NewReader("")))
		require.NoError(t, err)
		assert.Equal(t, 0, corpus.StopWords.Len())
		assert.Equal(t, 0, corpus.Store.DocCount())
	})
}

func TestLoadLogsStopWords(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Load(NewReader(strings.NewReader("на и в\n1\nкот\n")), WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "corpus loaded")
	assert.Contains(t, logs.String(), "words=\"[в и на]\"")
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResults(&buf, []ranker.Result{
		{DocumentID: 1, Relevance: 2},
		{DocumentID: 0, Relevance: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "{ document_id = 1, relevance = 2 }\n{ document_id = 0, relevance = 1 }\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteResults(&buf, nil))
	assert.Empty(t, buf.String())
}
