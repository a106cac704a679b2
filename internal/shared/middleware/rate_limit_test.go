package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// memCache is an in-memory cache.Cache for middleware tests.
type memCache struct {
	mu       sync.Mutex
	counters map[string]int64
	expiry   map[string]time.Time
	failing  bool
}

func newMemCache() *memCache {
	return &memCache{
		counters: make(map[string]int64),
		expiry:   make(map[string]time.Time),
	}
}

func (m *memCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (m *memCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (m *memCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (m *memCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (m *memCache) Ping(ctx context.Context) error { return nil }

func (m *memCache) Increment(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return 0, errors.New("connection refused")
	}
	if exp, ok := m.expiry[key]; ok && time.Now().After(exp) {
		delete(m.counters, key)
		delete(m.expiry, key)
	}
	m.counters[key]++
	return m.counters[key], nil
}

func (m *memCache) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.counters[key]
	return ok, nil
}

func (m *memCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expiry[key] = time.Now().Add(ttl)
	return nil
}

func (m *memCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if exp, ok := m.expiry[key]; ok {
		return time.Until(exp), nil
	}
	return -1, nil
}

func newLimitedRouter(c *memCache, max int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/contact", RateLimit(c, "contact", max, window), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func doRequest(router *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.Header.Set("X-Real-IP", ip)
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitBlocksAfterMax(t *testing.T) {
	router := newLimitedRouter(newMemCache(), 5, time.Minute)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(router, "203.0.113.10"))
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "203.0.113.10"))
}

func TestRateLimitIsPerIP(t *testing.T) {
	router := newLimitedRouter(newMemCache(), 1, time.Minute)

	assert.Equal(t, http.StatusOK, doRequest(router, "203.0.113.20"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "203.0.113.20"))
	assert.Equal(t, http.StatusOK, doRequest(router, "203.0.113.21"))
}

func TestRateLimitResetsAfterWindow(t *testing.T) {
	router := newLimitedRouter(newMemCache(), 1, 50*time.Millisecond)

	assert.Equal(t, http.StatusOK, doRequest(router, "203.0.113.30"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "203.0.113.30"))

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, http.StatusOK, doRequest(router, "203.0.113.30"))
}

func TestRateLimitFailsOpenWhenCacheDown(t *testing.T) {
	c := newMemCache()
	c.failing = true
	router := newLimitedRouter(c, 1, time.Minute)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest(router, "203.0.113.40"))
	}
}
