// internal/server/middleware.go
package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"mergington-activities/internal/common/metrics"
)

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withMiddleware attaches a request ID, access logging, and request metrics
// around the route table.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		route := routeLabel(r)
		status := statusClass(rec.status)

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())
		if s.obs != nil {
			s.obs.RecordRequest(r.Context(), route, status)
			s.obs.RecordRequestDuration(r.Context(), duration, route)
		}

		if route != "/metrics" && route != "/health" && route != "/ready" {
			s.logger.Info("request handled", map[string]interface{}{
				"requestId": requestID,
				"method":    r.Method,
				"path":      r.URL.Path,
				"status":    rec.status,
				"durationMs": duration.Milliseconds(),
			})
		}
	})
}

// routeLabel collapses paths to their route pattern so metric cardinality
// stays bounded regardless of activity names.
func routeLabel(r *http.Request) string {
	p := r.URL.Path
	switch {
	case p == "/activities":
		return "/activities"
	case strings.HasPrefix(p, "/activities/") && strings.HasSuffix(p, "/signup"):
		return "/activities/{activity}/signup"
	case strings.HasPrefix(p, "/activities/") && strings.HasSuffix(p, "/unregister"):
		return "/activities/{activity}/unregister"
	case p == "/health", p == "/ready", p == "/metrics":
		return p
	default:
		return "other"
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
