package ratelimiter

import (
	"sync"
	"time"

	"github.com/visalhout/PagePair/internal/config"
	"go.uber.org/zap"
)

type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]int
	window  map[string]time.Time
	cfg     config.RateLimiterConfig
	logger  *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		window:  make(map[string]time.Time),
		cfg:     cfg,
		logger:  logger,
	}
}

// Allow reports whether the client identified by ip may proceed, and when it
// may retry if not. Counters reset once the fixed window has elapsed.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	if !rl.cfg.Enabled {
		return true, 0
	}

	rl.Lock()
	defer rl.Unlock()

	now := time.Now()

	start, seen := rl.window[ip]
	if !seen || now.Sub(start) >= rl.cfg.TimeFrame {
		rl.window[ip] = now
		rl.clients[ip] = 0
		start = now
	}

	if rl.clients[ip] >= rl.cfg.RequestsPerTimeFrame {
		retryAfter := rl.cfg.TimeFrame - now.Sub(start)
		rl.logger.Debugf("Rate limit exceeded for %s, retry after %s", ip, retryAfter)
		return false, retryAfter
	}

	rl.clients[ip]++
	return true, 0
}
