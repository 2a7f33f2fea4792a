package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newChatLimiterRouter(t *testing.T, limit int, window time.Duration, userID uuid.UUID) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewChatRateLimiterWithConfig(client, limit, window)

	router := gin.New()
	router.POST("/chat",
		func(c *gin.Context) { c.Set(string(UserIDKey), userID) },
		limiter.Middleware(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return router, mr
}

func postChat(router *gin.Engine) int {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestChatRateLimiter(t *testing.T) {
	t.Run("allows up to the quota then returns 429", func(t *testing.T) {
		router, _ := newChatLimiterRouter(t, 2, time.Hour, uuid.New())

		for i := 0; i < 2; i++ {
			if code := postChat(router); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, code)
			}
		}
		if code := postChat(router); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 over quota, got %d", code)
		}
	})

	t.Run("quota resets after the window", func(t *testing.T) {
		router, mr := newChatLimiterRouter(t, 1, time.Minute, uuid.New())

		if code := postChat(router); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if code := postChat(router); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}

		mr.FastForward(2 * time.Minute)

		if code := postChat(router); code != http.StatusOK {
			t.Fatalf("expected 200 after window expiry, got %d", code)
		}
	})

	t.Run("missing user yields 401", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		limiter := NewChatRateLimiter(client)
		router := gin.New()
		router.POST("/chat", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
