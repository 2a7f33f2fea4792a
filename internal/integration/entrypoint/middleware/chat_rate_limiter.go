package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/smart-finance/backend/internal/domain/error"
	"github.com/smart-finance/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultChatMaxRequests is the default number of advisor questions per window.
	defaultChatMaxRequests = 20
	// defaultChatWindow is the default quota window for advisor questions.
	defaultChatWindow = 1 * time.Hour
)

// ChatRateLimiter enforces a per-user quota on AI advisor requests, backed
// by Redis so the quota holds across instances.
type ChatRateLimiter struct {
	client      redis.UniversalClient
	maxRequests int
	window      time.Duration
}

// NewChatRateLimiter creates a chat rate limiter with default settings.
func NewChatRateLimiter(client redis.UniversalClient) *ChatRateLimiter {
	return &ChatRateLimiter{
		client:      client,
		maxRequests: defaultChatMaxRequests,
		window:      defaultChatWindow,
	}
}

// NewChatRateLimiterWithConfig creates a chat rate limiter with custom settings.
func NewChatRateLimiterWithConfig(client redis.UniversalClient, maxRequests int, window time.Duration) *ChatRateLimiter {
	return &ChatRateLimiter{
		client:      client,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Middleware returns a Gin middleware handler that enforces the per-user
// advisor quota. It must run after Authenticate. When Redis is unreachable
// the request is let through rather than failing the endpoint.
func (rl *ChatRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not authenticated",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		key := fmt.Sprintf("chat:quota:%s", userID)

		count, err := rl.client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rl.client.Expire(c.Request.Context(), key, rl.window)
		}

		if count > int64(rl.maxRequests) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Advisor request limit reached. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
