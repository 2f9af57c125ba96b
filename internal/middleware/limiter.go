package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Rate limit tiers
const (
	// WhatsApp simulation endpoints can be flooded by a chat loop
	limitStrict = rate.Limit(5)
	burstStrict = 10

	// General API traffic
	limitGeneral = rate.Limit(20)
	burstGeneral = 40
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

func init() {
	go cleanupVisitors()
}

// getVisitor retrieves or creates a rate limiter for the given bucket key.
func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes stale entries so the map does not grow forever.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimit rejects requests over the per-client quota with 429.
func RateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, burst, tier := resolveRateTier(c)

		identity := "ip:" + c.RealIP()
		if deviceID := c.Request().Header.Get("X-Device-ID"); deviceID != "" {
			identity = "device:" + deviceID
		}

		key := fmt.Sprintf("%s:%s", identity, tier)

		limiter := getVisitor(key, limit, burst)
		if !limiter.Allow() {
			return c.JSON(http.StatusTooManyRequests, echo.Map{
				"error": http.StatusText(http.StatusTooManyRequests),
			})
		}

		return next(c)
	}
}

// resolveRateTier determines which rate limit policy applies to the request.
func resolveRateTier(c echo.Context) (rate.Limit, int, string) {
	if strings.HasPrefix(c.Request().URL.Path, "/api/whatsapp") {
		return limitStrict, burstStrict, "strict"
	}
	return limitGeneral, burstGeneral, "general"
}
