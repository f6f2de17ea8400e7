package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// CacheStore is a Redis-backed response cache for read endpoints.
// A nil store (Redis not configured) disables caching without any
// call-site branching.
type CacheStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheStore(client *redis.Client, ttl time.Duration) *CacheStore {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CacheStore{client: client, ttl: ttl}
}

func (s *CacheStore) key(entity, path, query string) string {
	sum := sha1.Sum([]byte(path + "?" + query))
	return fmt.Sprintf("cache:%s:%x", entity, sum)
}

// Invalidate drops every cached response for one entity. Called by
// write handlers after a successful mutation.
func (s *CacheStore) Invalidate(ctx context.Context, entity string) {
	if s == nil {
		return
	}
	var cursor uint64
	pattern := fmt.Sprintf("cache:%s:*", entity)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			s.client.Del(ctx, keys...)
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

// CachedList serves GET responses for one entity from Redis when
// present and captures fresh 200 responses on the way out.
func CachedList(store *CacheStore, entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := store.key(entity, c.Request.URL.Path, c.Request.URL.RawQuery)

		if body, err := store.client.Get(ctx, key).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()

		if cw.Status() == http.StatusOK {
			store.client.Set(ctx, key, cw.body.Bytes(), store.ttl)
		}
	}
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
