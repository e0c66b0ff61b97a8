package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/visalhout/PagePair/internal/util"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	allow, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allow {
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Too many requests",
			util.GenerateErrorMessages(errors.New("rate limit exceeded, retry later"), "rateLimit"), nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
