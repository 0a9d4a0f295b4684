package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"qtravel/internal/config"
	mem "qtravel/pkg/memcache"
	"qtravel/pkg/middleware"
)

const (
	visitorTTL    = 10 * time.Minute
	sweepInterval = time.Minute
)

var Module = fx.Provide(provideVisitorStore, provideRateLimiter)

func provideVisitorStore(lc fx.Lifecycle) *mem.TTLStore[*rate.Limiter] {
	store := mem.NewTTLStore[*rate.Limiter](visitorTTL)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go store.RunJanitor(ctx, sweepInterval)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return store
}

// provideRateLimiter returns nil when server.rate_limit is zero.
func provideRateLimiter(cfg *config.Config, store *mem.TTLStore[*rate.Limiter]) *middleware.RateLimiter {
	if cfg.Server.RateLimit <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(store, cfg.Server.RateLimit, cfg.Server.RateBurst)
}
