package browser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html>
<html><head><title>Gophers</title></head>
<body><article>
<h1>Gophers</h1>
<p>The gopher is the mascot of the Go programming language. It was designed by Renee French
and has appeared in many talks, blog posts and conference badges over the years.</p>
<p>Read more on the <a href="/about">about page</a> or visit <a href="https://go.dev">go.dev</a>.</p>
<p>Gophers are burrowing rodents, and the mascot borrows their friendly look. This paragraph
is long enough for the readability scorer to keep the article body intact.</p>
</article></body></html>`

func newTestServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testPage))
	})
	mux.HandleFunc("/plain", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("just <text>"))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/page", http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestLoader(t *testing.T, srv *httptest.Server) *Loader {
	t.Helper()
	f := NewFetcher(FetcherConfig{Transport: srv.Client().Transport})
	l, err := NewLoader(f, NewRenderer("notty"), 4, nil)
	require.NoError(t, err)
	return l
}

func TestFetchHTML(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	f := NewFetcher(FetcherConfig{Transport: srv.Client().Transport, UserAgent: "test-agent"})

	res, err := f.Fetch(srv.URL + "/old")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, srv.URL+"/page", res.FinalURL)
	assert.True(t, IsHTML(res.ContentType))
	assert.Contains(t, string(res.Body), "Gophers")
}

func TestFetchStatusError(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	f := NewFetcher(FetcherConfig{Transport: srv.Client().Transport})

	_, err := f.Fetch(srv.URL + "/missing")
	var se *StatusError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestFetchServerErrorAfterRetries(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	f := NewFetcher(FetcherConfig{Transport: srv.Client().Transport, RetryMax: 1})

	_, err := f.Fetch(srv.URL + "/broken")
	var se *StatusError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestFetchCancelled(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	f := NewFetcher(FetcherConfig{Transport: srv.Client().Transport})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.FetchWithContext(ctx, srv.URL+"/page")
	assert.Error(t, err)
}

func TestLoaderCachesPages(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	l := newTestLoader(t, srv)

	page, err := l.Load(context.Background(), srv.URL+"/page", 80, true)
	require.NoError(t, err)
	assert.NotEmpty(t, page.Content)

	_, err = l.Load(context.Background(), srv.URL+"/page", 80, true)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second load should be served from cache")

	_, err = l.Load(context.Background(), srv.URL+"/page", 80, false)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "reload bypasses the cache")

	_, err = l.Load(context.Background(), srv.URL+"/page", 120, true)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits), "different width renders again")

	l.Purge()
	assert.Equal(t, 0, l.cacheLen())
}

func TestLoaderPlainText(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	l := newTestLoader(t, srv)

	page, err := l.Load(context.Background(), srv.URL+"/plain", 80, true)
	require.NoError(t, err)
	assert.Contains(t, page.Content, "just <text>")
}

func TestLoaderFailureIsNotCached(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	l := newTestLoader(t, srv)

	_, err := l.Load(context.Background(), srv.URL+"/missing", 80, true)
	assert.Error(t, err)
	assert.Equal(t, 0, l.cacheLen())
}

func TestFetchLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(testPage), 0o644))
	f := NewFetcher(FetcherConfig{})

	res, err := f.Fetch("file://" + filepath.ToSlash(path))
	require.NoError(t, err)
	assert.True(t, IsHTML(res.ContentType))
	assert.Contains(t, string(res.Body), "Gophers")

	_, err = f.Fetch("file://" + filepath.ToSlash(path) + ".missing")
	assert.Error(t, err)
}
