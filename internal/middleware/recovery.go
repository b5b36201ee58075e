package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/ascend/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RecoverPanics turns a handler panic into a 500, counts it and records it on the
// request span. It must wrap LogRequest so the request id is already set.
func RecoverPanics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				log.WithFields(log.Fields{
					"request_id": w.Header().Get(RequestIDHeader),
					"method":     r.Method,
					"path":       r.URL.Path,
				}).Errorf("panic serving request: %v\n%s", recovered, debug.Stack())

				span := trace.SpanFromContext(r.Context())
				span.RecordError(fmt.Errorf("panic: %v", recovered))
				span.SetStatus(codes.Error, "panic")

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
