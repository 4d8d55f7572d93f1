package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "sintagrab/cmd/sintagrab"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "sintagrab")
	assert.Contains(t, stdout.String(), "url")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_InvalidURL(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"not a url"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_MalformedCookies(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cookies.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"https://sinta.example.org/authors/profile/1", "--cookies", path}, &stdout, &stderr)

	// Configuration error surfaces before any fetch.
	assert.Error(t, err)
}

func TestMain_Run_CrawlAndExport(t *testing.T) {
	t.Parallel()

	// The server returns the same listing for every page, so the crawl
	// stops with a duplicate-page fingerprint after page 2.
	listing := `<html><body><div class="ar-list-item">` +
		`<a href="documents/detail/1">Deep Learning for X</a>` +
		`<a class="ar-pub">Journal of Y, Vol 3 No 1</a>` +
		`<a class="ar-year">2021</a>` +
		`<div class="ar-meta">Author Order: 1 of 2 Smith, J.; Doe, A. 2021 DOI: 10.1/abc Accred: Sinta 2</div>` +
		`</div></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listing))
	}))
	defer server.Close()

	output := filepath.Join(t.TempDir(), "export.csv")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		server.URL + "/authors/profile/1",
		"--delay", "0",
		"--max-pages", "5",
		"-o", output,
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "page 1: 1 rows | HTTP 200")
	assert.Contains(t, stdout.String(), "Rows before dedup: 1 | After dedup: 1")
	assert.Contains(t, stdout.String(), "Stopped: page identical to a previous page")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No;Judul Artikel;Tahun;Authors;Nama Jurnal;Sinta;DOI;SourceFile")
	assert.Contains(t, string(data), "Deep Learning for X")
	assert.Contains(t, string(data), "10.1/abc")
}
