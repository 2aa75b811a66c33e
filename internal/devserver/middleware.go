package devserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const accountKey = "devserver.account"

// authMiddleware resolves the bearer token; requests without a valid one
// get a 401 with an envelope body.
func authMiddleware(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		acc, ok := store.authenticate(token)
		if !ok {
			respondError(c, http.StatusUnauthorized, "Session expired")
			c.Abort()
			return
		}
		c.Set(accountKey, acc)
		c.Next()
	}
}

// currentAccount returns the account resolved by authMiddleware.
func currentAccount(c *gin.Context) *account {
	return c.MustGet(accountKey).(*account)
}

const idempotencyHeader = "Idempotency-Key"

type cachedResponse struct {
	StatusCode int
	Body       json.RawMessage
}

// responseRecorder wraps gin.ResponseWriter to capture the body for the
// idempotency cache.
type responseRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// idempotencyMiddleware replays the cached response for a repeated
// Idempotency-Key on mutating requests, so a retried booking create does
// not place two bookings. Cache is in-memory and unbounded; acceptable
// for a dev stub.
func idempotencyMiddleware() gin.HandlerFunc {
	var mu sync.Mutex
	cache := make(map[string]cachedResponse)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut {
			c.Next()
			return
		}
		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		mu.Lock()
		if cached, ok := cache[key]; ok {
			mu.Unlock()
			c.Data(cached.StatusCode, "application/json", cached.Body)
			c.Abort()
			return
		}
		mu.Unlock()

		rec := &responseRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec
		c.Next()

		mu.Lock()
		cache[key] = cachedResponse{
			StatusCode: rec.Status(),
			Body:       json.RawMessage(rec.body.Bytes()),
		}
		mu.Unlock()
	}
}
