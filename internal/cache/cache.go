// Package cache keeps rendered public pages in memory until the content
// behind them changes.
package cache

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/madrasa/internal/content"
	"github.com/rs/zerolog"
)

// DefaultMaxEntries bounds the cache when Options.MaxEntries is not set.
const DefaultMaxEntries = 512

// DefaultQueryKeys are the query parameters public pages read.
var DefaultQueryKeys = []string{"page", "category"}

type entry struct {
	status      int
	contentType string
	body        []byte
}

// Options configures a PageCache.
type Options struct {
	// TTL expires entries; zero keeps them until they are invalidated or evicted.
	TTL        time.Duration
	MaxEntries int
	// QueryKeys lists the query parameters that make up the key. Others are ignored.
	QueryKeys []string
}

// PageCache stores successful GET responses keyed by path and the relevant query parameters.
type PageCache struct {
	entries   *expirable.LRU[string, entry]
	queryKeys []string
	logger    zerolog.Logger
}

// New creates a cache bounded to opts.MaxEntries entries.
func New(opts Options, logger zerolog.Logger) *PageCache {
	size := opts.MaxEntries
	if size <= 0 {
		size = DefaultMaxEntries
	}
	keys := opts.QueryKeys
	if keys == nil {
		keys = DefaultQueryKeys
	}
	return &PageCache{
		entries:   expirable.NewLRU[string, entry](size, nil, opts.TTL),
		queryKeys: keys,
		logger:    logger,
	}
}

func (p *PageCache) cacheKey(r *http.Request) string {
	query := r.URL.Query()
	kept := url.Values{}
	for _, key := range p.queryKeys {
		if v := strings.TrimSpace(query.Get(key)); v != "" {
			kept.Set(key, v)
		}
	}
	if len(kept) == 0 {
		return r.URL.Path
	}
	return r.URL.Path + "?" + kept.Encode()
}

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(data []byte) (int, error) {
	w.buf.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Middleware serves cached GET responses and stores fresh 200 responses.
func (p *PageCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := p.cacheKey(c.Request)
		if e, ok := p.entries.Get(key); ok {
			c.Header("X-Cache", "HIT")
			c.Data(e.status, e.contentType, e.body)
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")
		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if writer.Status() != http.StatusOK || len(c.Errors) > 0 {
			return
		}
		p.entries.Add(key, entry{
			status:      writer.Status(),
			contentType: writer.Header().Get("Content-Type"),
			body:        append([]byte(nil), writer.buf.Bytes()...),
		})
	}
}

// Invalidate drops each path and every sub-path below it.
// "/" drops only the home page; content.AllPaths drops everything.
func (p *PageCache) Invalidate(paths ...string) {
	dropped := 0
	for _, key := range p.entries.Keys() {
		keyPath, _, _ := strings.Cut(key, "?")
		for _, path := range paths {
			if matches(keyPath, path) {
				if p.entries.Remove(key) {
					dropped++
				}
				break
			}
		}
	}
	p.logger.Debug().Strs("paths", paths).Int("dropped", dropped).Msg("cache invalidated")
}

func matches(keyPath, path string) bool {
	switch path {
	case content.AllPaths:
		return true
	case "/":
		return keyPath == "/"
	}
	path = strings.TrimRight(path, "/")
	return keyPath == path || strings.HasPrefix(keyPath, path+"/")
}

// Purge drops every entry and returns how many there were.
func (p *PageCache) Purge() int {
	n := p.entries.Len()
	p.entries.Purge()
	p.logger.Info().Int("dropped", n).Msg("cache purged")
	return n
}

// Len returns the number of cached entries.
func (p *PageCache) Len() int {
	return p.entries.Len()
}
