package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingMiddleware writes one log entry per request.
type LoggingMiddleware struct {
	log *logrus.Logger
}

func NewLoggingMiddleware(log *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		entry := m.log.WithFields(logrus.Fields{
			"method":      req.Method,
			"path":        req.URL.Path,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Warn("Request failed")
			return
		}
		entry.Info("Request handled")
	})
}
