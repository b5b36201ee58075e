package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/ascend/internal/telemetry/metrics"
	"github.com/2beens/ascend/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimitRule limits one method+path, per client IP.
type RateLimitRule struct {
	Method        string
	Path          string
	AllowedPerMin int
}

func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	rules []RateLimitRule,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	byRoute := make(map[string]RateLimitRule, len(rules))
	for _, rule := range rules {
		byRoute[rule.Method+" "+rule.Path] = rule
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rule, ok := byRoute[r.Method+" "+r.URL.Path]
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ip, err := pkg.ReadUserIP(r)
			if err != nil {
				ip = "unknown"
			}

			key := fmt.Sprintf("%s|%s %s|%s", routerName, rule.Method, rule.Path, ip)
			res, err := rateLimiter.Allow(r.Context(), key, redis_rate.PerMinute(rule.AllowedPerMin))
			if err != nil {
				log.Errorf("rate limit check for %s: %s", key, err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.WithLabelValues(routerName).Inc()
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
			http.Error(
				w,
				fmt.Sprintf("retry after %.1f seconds", res.RetryAfter.Seconds()),
				http.StatusTooManyRequests,
			)
		})
	}
}
