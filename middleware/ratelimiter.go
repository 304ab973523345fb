package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

// RateLimiter limits requests per client IP. Counters live in Redis when a
// client is given so that replicas share them; otherwise in memory.
func RateLimiter(perMinute int64, rdb *redis.Client) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  perMinute,
	}

	store := newLimiterStore(rdb)
	instance := limiter.New(store, rate)

	// 🚦 Gin-compatible middleware
	return ginlimiter.NewMiddleware(instance)
}

func newLimiterStore(rdb *redis.Client) limiter.Store {
	if rdb == nil {
		return memory.NewStore()
	}

	store, err := redisstore.NewStoreWithOptions(rdb, limiter.StoreOptions{
		Prefix: "docs_limiter",
	})
	if err != nil {
		log.Warn("⚠️ Redis limiter store unavailable, using memory", "err", err)
		return memory.NewStore()
	}
	return store
}
