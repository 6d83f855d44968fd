package api

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	evictionPeriod  = time.Minute
	defaultRPS      = 5
	defaultRPSBurst = 30
)

// RateLimit configures the per-caller token bucket. Zero values select the defaults.
type RateLimit struct {
	RPS   float64
	Burst int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func newVisitorLimiter(cfg RateLimit) *visitorLimiter {
	if cfg.RPS <= 0 {
		cfg.RPS = defaultRPS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultRPSBurst
	}
	return &visitorLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
		now:      time.Now,
	}
}

// reserve takes a token for key. When none is available it returns false and the wait
// until the next token.
func (vl *visitorLimiter) reserve(key string) (bool, time.Duration) {
	vl.mu.Lock()
	defer vl.mu.Unlock()
	now := vl.now()
	v, ok := vl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(vl.limit, vl.burst)}
		vl.visitors[key] = v
	}
	v.lastSeen = now
	r := v.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (vl *visitorLimiter) evict() {
	vl.mu.Lock()
	defer vl.mu.Unlock()
	for key, v := range vl.visitors {
		if vl.now().Sub(v.lastSeen) > visitorTTL {
			delete(vl.visitors, key)
		}
	}
}

func (vl *visitorLimiter) evictLoop(ctx context.Context) {
	ticker := time.NewTicker(evictionPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			vl.evict()
		}
	}
}
