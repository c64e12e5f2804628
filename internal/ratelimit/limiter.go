// Package ratelimit throttles requests per note owner.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/evgeniy-krivenko/notebook/internal/ctxtr"
	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

type entry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=limiter_options.gen.go -from-struct=Options
type Options struct {
	rps   float64 `option:"mandatory" validate:"gt=0"`
	burst int     `option:"mandatory" validate:"min=1"`

	idleTTL time.Duration `default:"1h" validate:"min=1s"`
}

type Limiter struct {
	Options

	mu       sync.Mutex
	limiters map[string]*entry
	now      func() time.Time
}

func New(opts Options) (*Limiter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate rate limiter options: %v", err)
	}

	return &Limiter{
		Options:  opts,
		limiters: make(map[string]*entry),
		now:      time.Now,
	}, nil
}

// Allow reports whether ownerID may make one more request now.
func (l *Limiter) Allow(ownerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.limiters[ownerID]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.limiters[ownerID] = e
	}
	e.lastUsed = now

	return e.limiter.AllowN(now, 1)
}

// Limit implements the go-grpc-middleware ratelimit.Limiter. It must run
// after authentication so the owner is known.
func (l *Limiter) Limit(ctx context.Context) error {
	ownerID, _ := ctxtr.UserID(ctx)
	if !l.Allow(ownerID) {
		return fmt.Errorf("rate limit exceeded for %q", ownerID)
	}

	return nil
}

// Middleware answers 429 once the owner in the request context runs out of
// tokens. Anonymous requests are not limited.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ctxtr.UserID(r.Context())
		if err == nil && !l.Allow(ownerID) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Cleanup drops limiters idle for longer than idleTTL.
func (l *Limiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.idleTTL)

	var removed int
	for ownerID, e := range l.limiters {
		if e.lastUsed.Before(cutoff) {
			delete(l.limiters, ownerID)
			removed++
		}
	}

	return removed
}

func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.limiters)
}

// Run cleans up idle limiters until ctx is done.
func (l *Limiter) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := l.Cleanup(); n > 0 {
				slogx.Debug(ctx, "drop idle rate limiters", slog.Int("count", n))
			}
		}
	}
}
