package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func get(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth("X-Auth-Username"))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, Username(c))
	})

	w := get(r, "/whoami", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/whoami", map[string]string{"X-Auth-Username": "tenant"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tenant", w.Body.String())
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(rate.Limit(1), 1))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, get(r, "/", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/", nil).Code)
}

func TestCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hits := 0
	r := gin.New()
	r.Use(Cache(cache.New(time.Minute, time.Minute), time.Minute))
	r.GET("/counted", func(c *gin.Context) {
		hits++
		c.String(http.StatusOK, "ok")
	})
	r.POST("/counted", func(c *gin.Context) {
		hits++
		c.Status(http.StatusOK)
	})

	get(r, "/counted", nil)
	w := get(r, "/counted", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.Equal(t, 1, hits, "second GET should be served from cache")

	// Distinct query strings are distinct cache entries.
	get(r, "/counted?page=2", nil)
	assert.Equal(t, 2, hits)

	// Writes are never cached.
	req := httptest.NewRequest(http.MethodPost, "/counted", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	req = httptest.NewRequest(http.MethodPost, "/counted", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, 4, hits)
}
