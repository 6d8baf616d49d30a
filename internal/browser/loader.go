package browser

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const defaultCacheSize = 50

type cacheKey struct {
	url   string
	width int
}

// Loader fetches, extracts and renders pages. A successful Load is the
// reachability check that must pass before a location is recorded as
// visited. Rendered pages are cached so that back/forward is instant.
type Loader struct {
	fetcher  *Fetcher
	renderer *Renderer
	cache    *lru.Cache[cacheKey, *RenderedPage]
	log      *zap.Logger
}

// NewLoader creates a Loader. cacheSize <= 0 uses a default size.
func NewLoader(fetcher *Fetcher, renderer *Renderer, cacheSize int, log *zap.Logger) (*Loader, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[cacheKey, *RenderedPage](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating page cache: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		fetcher:  fetcher,
		renderer: renderer,
		cache:    cache,
		log:      log,
	}, nil
}

// Load returns the rendered page at rawURL for the given width.
// With useCache false the page is always fetched again.
func (l *Loader) Load(ctx context.Context, rawURL string, width int, useCache bool) (*RenderedPage, error) {
	key := cacheKey{url: rawURL, width: width}
	if useCache {
		if page, ok := l.cache.Get(key); ok {
			l.log.Debug("page cache hit", zap.String("url", rawURL))
			return page, nil
		}
	}

	start := time.Now()
	result, err := l.fetcher.FetchWithContext(ctx, rawURL)
	if err != nil {
		l.log.Info("page load failed", zap.String("url", rawURL), zap.Error(err))
		return nil, err
	}

	article, err := Extract(result)
	if err != nil {
		l.log.Info("page extract failed", zap.String("url", rawURL), zap.Error(err))
		return nil, err
	}

	page := l.renderer.Render(article, width)
	l.cache.Add(key, page)

	l.log.Debug("page loaded",
		zap.String("url", rawURL),
		zap.String("final_url", result.FinalURL),
		zap.Int("status", result.StatusCode),
		zap.Int("bytes", len(result.Body)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return page, nil
}

// Purge drops all cached pages.
func (l *Loader) Purge() {
	l.cache.Purge()
}

func (l *Loader) cacheLen() int {
	return l.cache.Len()
}
