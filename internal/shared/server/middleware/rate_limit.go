package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"chromalyze-backend/internal/shared/server/respond"
)

// SlidingWindowLimiter tracks request timestamps per client and admits a
// request only when fewer than Limit requests fall inside the trailing
// Window.
type SlidingWindowLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients map[string][]time.Time
	now     func() time.Time
}

func NewSlidingWindowLimiter(limit int, window time.Duration, now func() time.Time) *SlidingWindowLimiter {
	if now == nil {
		now = time.Now
	}
	return &SlidingWindowLimiter{
		limit:   limit,
		window:  window,
		clients: make(map[string][]time.Time),
		now:     now,
	}
}

// Allow records the request when admitted. On rejection it reports how long
// the client must wait before the oldest in-window request expires.
func (l *SlidingWindowLimiter) Allow(clientID string) (bool, time.Duration) {
	if l == nil || l.limit <= 0 || l.window <= 0 {
		return true, 0
	}
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	stamps := l.clients[clientID]
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.limit {
		l.clients[clientID] = kept
		retryAfter := kept[0].Add(l.window).Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return false, retryAfter
	}
	l.clients[clientID] = append(kept, now)
	return true, 0
}

// Sweep drops clients whose every timestamp has aged out of the window and
// returns how many entries were removed.
func (l *SlidingWindowLimiter) Sweep() int {
	if l == nil {
		return 0
	}
	cutoff := l.now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, stamps := range l.clients {
		live := false
		for _, ts := range stamps {
			if ts.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(l.clients, id)
			removed++
		}
	}
	return removed
}

func RateLimit(limiter *SlidingWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := strings.TrimSpace(c.ClientIP())
		if clientID == "" {
			clientID = "unknown"
		}
		allowed, retryAfter := limiter.Allow(clientID)
		if allowed {
			c.Next()
			return
		}
		retryAfterSeconds := int(math.Ceil(retryAfter.Seconds()))
		if retryAfterSeconds <= 0 {
			retryAfterSeconds = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Too many requests, slow down", map[string]any{
			"retryAfterSeconds": retryAfterSeconds,
		})
		c.Abort()
	}
}
