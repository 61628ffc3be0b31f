package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/ingestion"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/pkg/metrics"
)

const exampleInput = "и в на\n" +
	"3\n" +
	"белый кот и модный ошейник\n" +
	"пушистый кот пушистый хвост\n" +
	"ухоженный пёс выразительные глаза\n" +
	"пушистый ухоженный кот\n"

func TestRunSearchExample(t *testing.T) {
	var out bytes.Buffer
	err := runSearch(context.Background(), config.Default(), strings.NewReader(exampleInput), &out)
	require.NoError(t, err)
	assert.Equal(t,
		"{ document_id = 1, relevance = 2 }\n"+
			"{ document_id = 2, relevance = 1 }\n"+
			"{ document_id = 0, relevance = 1 }\n",
		out.String())
}

func TestRunSearchEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "", ""},
		{"no documents", "a\n0\nquery\n", ""},
		{"malformed count", "\nmany\ncat\ncat\n", ""},
		{"query of stop words", "the\n1\nthe cat\nthe\n", ""},
		{"no trailing newline", "\n1\ncat\ncat", "{ document_id = 0, relevance = 1 }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runSearch(context.Background(), config.Default(), strings.NewReader(tt.input), &out))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunSearchTopFive(t *testing.T) {
	var in strings.Builder
	in.WriteString("\n7\n")
	for i := 0; i < 7; i++ {
		in.WriteString("cat\n")
	}
	in.WriteString("cat\n")

	var out bytes.Buffer
	require.NoError(t, runSearch(context.Background(), config.Default(), strings.NewReader(in.String()), &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "{ document_id = 6, relevance = 1 }", lines[0])
	assert.Equal(t, "{ document_id = 2, relevance = 1 }", lines[4])
}

func TestAppRunsDefaultAction(t *testing.T) {
	app := newApp()
	var out, errOut bytes.Buffer
	app.Reader = strings.NewReader(exampleInput)
	app.Writer = &out
	app.ErrWriter = &errOut

	require.NoError(t, app.Run([]string{"searcher", "--log-level", "debug", "--max-results", "1"}))
	assert.Equal(t, "{ document_id = 1, relevance = 2 }\n", out.String())
	assert.Contains(t, errOut.String(), "corpus loaded")
}

func TestAppRejectsBadFlags(t *testing.T) {
	app := newApp()
	app.Reader = strings.NewReader(exampleInput)
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}

	err := app.Run([]string{"searcher", "--log-level", "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	app = newApp()
	app.Reader = strings.NewReader(exampleInput)
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	err = app.Run([]string{"searcher", "--max-results", "0"})
	require.Error(t, err)
}

func TestAppLoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  maxResults: 2\n"), 0o644))

	app := newApp()
	var out bytes.Buffer
	app.Reader = strings.NewReader(exampleInput)
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}

	require.NoError(t, app.Run([]string{"searcher", "--config", path}))
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))
}

func TestServeRequiresCorpus(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run([]string{"searcher", "serve"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corpus")
}

func TestBuildServer(t *testing.T) {
	corpus, err := ingestion.Load(ingestion.NewReader(strings.NewReader(exampleInput)))
	require.NoError(t, err)

	cfg := config.Default()
	srv, cleanup := buildServer(context.Background(), cfg, corpus, metrics.New())
	defer cleanup()

	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/v1/documents/2")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
