package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ferdiebergado/riskapi/internal/pkg/web"
)

// LogRequest writes one log line per request after the response is complete.
// Client errors are logged at WARN and server errors at ERROR.
func LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tracker := trackerFor(w, r)

		start := time.Now()
		next.ServeHTTP(tracker, r)
		elapsed := time.Since(start)

		status := tracker.Status()
		slog.LogAttrs(r.Context(), levelFor(status), "Request handled.",
			slog.String("request_id", web.RequestIDFromContext(r.Context())),
			slog.Group("request",
				slog.String("method", r.Method),
				slog.String("url", r.URL.String()),
				slog.String("proto", r.Proto),
				slog.String("ip", clientIP(r)),
				slog.String("origin", r.Header.Get("Origin")),
				slog.String("user_agent", r.UserAgent()),
			),
			slog.Group("response",
				slog.Int("status", status),
				slog.Int64("bytes", tracker.Size()),
				slog.Duration("duration", elapsed),
			),
		)
	})
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
