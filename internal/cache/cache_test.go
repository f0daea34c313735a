package cache

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/content"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(pc *PageCache, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(pc.Middleware())
	handler := func(c *gin.Context) {
		*hits++
		c.String(http.StatusOK, "page %s", c.Request.URL.Path)
	}
	r.GET("/news", handler)
	r.GET("/news/:slug", handler)
	r.GET("/newsletter", handler)
	r.GET("/contact", handler)
	r.GET("/", handler)
	r.GET("/missing", func(c *gin.Context) {
		*hits++
		c.String(http.StatusNotFound, "nope")
	})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestMiddlewareServesFromCache(t *testing.T) {
	pc := New(Options{}, zerolog.Nop())
	hits := 0
	r := newTestRouter(pc, &hits)

	first := get(r, "/news")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := get(r, "/news")
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, hits)

	get(r, "/news?page=2")
	assert.Equal(t, 2, hits, "page is part of the key")

	get(r, "/news?junk=1&page=2")
	get(r, "/news?utm_source=x")
	assert.Equal(t, 2, hits, "unknown query parameters share the entry")
	assert.Equal(t, 2, pc.Len())
}

func TestCacheIsBounded(t *testing.T) {
	pc := New(Options{MaxEntries: 3}, zerolog.Nop())
	hits := 0
	r := newTestRouter(pc, &hits)

	for i := 0; i < 20; i++ {
		get(r, fmt.Sprintf("/news?page=%d", i+1))
	}
	assert.Equal(t, 3, pc.Len())

	get(r, "/news?page=20")
	assert.Equal(t, 20, hits, "most recent entry is still cached")
	get(r, "/news?page=1")
	assert.Equal(t, 21, hits, "oldest entry was evicted")
}

func TestMiddlewareSkipsErrors(t *testing.T) {
	pc := New(Options{}, zerolog.Nop())
	hits := 0
	r := newTestRouter(pc, &hits)

	get(r, "/missing")
	get(r, "/missing")
	assert.Equal(t, 2, hits)
	assert.Zero(t, pc.Len())
}

func TestInvalidateDropsSubPaths(t *testing.T) {
	pc := New(Options{}, zerolog.Nop())
	hits := 0
	r := newTestRouter(pc, &hits)

	for _, p := range []string{"/news", "/news?page=2", "/news/first-post", "/newsletter", "/contact"} {
		get(r, p)
	}
	require.Equal(t, 5, pc.Len())

	pc.Invalidate("/news")
	assert.Equal(t, 2, pc.Len(), "only /newsletter and /contact survive")

	get(r, "/newsletter")
	assert.Equal(t, 5, hits)

	pc.Invalidate(content.AllPaths)
	assert.Zero(t, pc.Len())
}

func TestInvalidateHomeIsExact(t *testing.T) {
	pc := New(Options{}, zerolog.Nop())
	hits := 0
	r := newTestRouter(pc, &hits)

	get(r, "/")
	get(r, "/news")
	get(r, "/contact")
	require.Equal(t, 3, pc.Len())

	pc.Invalidate("/")
	assert.Equal(t, 2, pc.Len(), "only the home page is dropped")
	assert.Equal(t, "MISS", get(r, "/").Header().Get("X-Cache"))
	assert.Equal(t, "HIT", get(r, "/news").Header().Get("X-Cache"))
}

func TestEntriesExpire(t *testing.T) {
	pc := New(Options{TTL: 20 * time.Millisecond}, zerolog.Nop())
	hits := 0
	r := newTestRouter(pc, &hits)

	get(r, "/contact")
	get(r, "/contact")
	assert.Equal(t, 1, hits)

	time.Sleep(60 * time.Millisecond)
	get(r, "/contact")
	assert.Equal(t, 2, hits)
}

func TestPurge(t *testing.T) {
	pc := New(Options{}, zerolog.Nop())
	hits := 0
	r := newTestRouter(pc, &hits)
	get(r, "/news")
	get(r, "/contact")
	assert.Equal(t, 2, pc.Purge())
	assert.Zero(t, pc.Len())
}
