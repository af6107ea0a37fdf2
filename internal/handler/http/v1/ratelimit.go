package v1

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// limiterIdleTTL - через сколько без запросов ограничитель клиента забывается
const limiterIdleTTL = 10 * time.Minute

type clientLimiters struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	visitors *cache.Cache
}

// RateLimitMiddleware ограничивает частоту запросов с одного IP клиента
func RateLimitMiddleware(rps float64, burst int, log *logrus.Logger) gin.HandlerFunc {
	l := &clientLimiters{
		limit:    rate.Limit(rps),
		burst:    burst,
		visitors: cache.New(limiterIdleTTL, limiterIdleTTL),
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.get(ip).Allow() {
			log.WithFields(logrus.Fields{
				"middleware": "rate_limit",
				"ip":         ip,
				"path":       c.FullPath(),
			}).Warn("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func (l *clientLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.visitors.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	// Каждый запрос продлевает жизнь ограничителя
	l.visitors.SetDefault(ip, limiter)
	return limiter.(*rate.Limiter)
}
