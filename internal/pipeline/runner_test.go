package pipeline

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

	"bookstats/internal/config"
	"bookstats/internal/crawler"
	"bookstats/internal/logger"
)

var catalog = map[string]string{
	"ISBN:0441013597": `{
		"title": "Dune",
		"key": "/books/OL1M",
		"authors": [{"name": "Frank Herbert"}],
		"publishers": [{"name": "Ace"}],
		"publish_date": "August 2005",
		"identifiers": {"goodreads": ["234225"]},
		"number_of_pages": 528
	}`,
	"ISBN:0593099322": `{
		"title": "Dune",
		"key": "/books/OL2M",
		"authors": [{"name": "Frank Herbert"}],
		"publishers": [{"name": "Ace"}],
		"publish_date": "2019",
		"number_of_pages": 688
	}`,
	"ISBN:0141439513": `{
		"title": "Pride and Prejudice",
		"authors": [{"name": "Jane Austen"}],
		"publishers": [{"name": "Penguin"}],
		"publish_date": "April 2003",
		"excerpts": [{"text": "It is a truth universally acknowledged."}]
	}`,
}

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/books", func(w http.ResponseWriter, r *http.Request) {
		bibkey := r.URL.Query().Get("bibkeys")

		body, ok := catalog[bibkey]
		if !ok {
			_, _ = w.Write([]byte(`{}`))

			return
		}

		_, _ = w.Write([]byte(`{"` + bibkey + `": ` + body + `}`))
	})
	mux.HandleFunc("/books/OL1M.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"description": "Melange and sandworms.", "last_modified": {"type": "/type/datetime", "value": "2021-03-04T10:11:12.123456"}}`))
	})
	mux.HandleFunc("/books/OL2M.json", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func testConfig(t *testing.T, baseURL, isbns string) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Input.Path = filepath.Join(t.TempDir(), "books-isbns.txt")
	cfg.OpenLibrary.BaseURL = baseURL

	if isbns != "" {
		require.NoError(t, os.WriteFile(cfg.Input.Path, []byte(isbns), 0644))
	}

	return cfg
}

func TestRunner_Run(t *testing.T) {
	srv := newCatalogServer(t)
	cfg := testConfig(t, srv.URL, "0441013597\n0593099322\n0000000001\n0141439513\n")

	var out, logs bytes.Buffer

	r, err := NewRunner(cfg, logger.NewLoggerWithWriter("info", &logs), &out)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))

	report := out.String()
	assert.Equal(t, 12, strings.Count(report, "--------------------------------\n"))
	assert.True(t, strings.HasPrefix(report, "1. How many different books are in the list?\nAnswer: \n 2\n"))
	assert.Contains(t, report, "2. What is the book with the most number of different ISBNs?\nAnswer: \n Dune\n")
	assert.Contains(t, report, "4. How many books have more than one author?\nAnswer: \n 0\n")
	assert.Contains(t, report, "6. What is the median number of pages for books in this list?\nAnswer: \n 608\n")
	assert.Contains(t, report, "9. What was the last book published in the list?\nAnswer: \n Dune\n")
	assert.Contains(t, report, "10. What is the year of the most updated entry in the list?\nAnswer: \n 2021\n")
	assert.Contains(t, report, "(Ace, Frank Herbert)")

	assert.Contains(t, logs.String(), "run_id="+r.RunID())
	assert.Contains(t, logs.String(), "catalog: 3 ok, 1 missing, 0 failed")
	assert.Contains(t, logs.String(), "detail: 1 ok, 1 missing, 1 failed")
	assert.Contains(t, logs.String(), "Suspicious ISBN in input")
	assert.Contains(t, logs.String(), "line=3")
}

func TestRunner_Run_MissingInput(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1", "")

	var out, logs bytes.Buffer

	r, err := NewRunner(cfg, logger.NewLoggerWithWriter("info", &logs), &out)
	require.NoError(t, err)

	err = r.Run(context.Background())
	require.ErrorIs(t, err, crawler.ErrInputNotFound)
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "Could not read ISBN list")
}

func TestRunner_Collect_Cancelled(t *testing.T) {
	srv := newCatalogServer(t)
	cfg := testConfig(t, srv.URL, "")

	r, err := NewRunner(cfg, logger.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Collect(ctx, []string{"0441013597"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRunner_InvalidTableStyle(t *testing.T) {
	cfg := config.Default()
	cfg.Output.TableStyle = "html"

	_, err := NewRunner(cfg, logger.Discard())
	assert.Error(t, err)
}
