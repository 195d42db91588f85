package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
)

// ResponseTracker wraps an http.ResponseWriter and records the status code and
// body size of the response. Once the request context has ended, successful
// output is dropped but error responses are still sent.
//
//nolint:containedctx //Writes are checked against the request context.
type ResponseTracker struct {
	http.ResponseWriter
	ctx context.Context

	mu          sync.Mutex
	status      int
	wroteHeader bool
	size        atomic.Int64
}

func NewResponseTracker(ctx context.Context, w http.ResponseWriter) *ResponseTracker {
	return &ResponseTracker{
		ResponseWriter: w,
		ctx:            ctx,
		status:         http.StatusOK,
	}
}

// TrackResponses installs a ResponseTracker for the rest of the chain so that
// LogRequest and the metrics middleware share one view of the response.
func TrackResponses(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(trackerFor(w, r), r)
	})
}

// trackerFor reuses a tracker installed further up the chain.
func trackerFor(w http.ResponseWriter, r *http.Request) *ResponseTracker {
	if t, ok := w.(*ResponseTracker); ok {
		return t
	}
	return NewResponseTracker(r.Context(), w)
}

func (t *ResponseTracker) WriteHeader(code int) {
	if err := t.ctx.Err(); err != nil && code < http.StatusBadRequest {
		slog.Warn("Dropping response header, request already ended.", "status", code, "error", err)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeHeaderLocked(code)
}

func (t *ResponseTracker) writeHeaderLocked(code int) {
	if t.wroteHeader {
		slog.Warn("Superfluous WriteHeader call.", "status", code, "sent", t.status)
		return
	}

	t.ResponseWriter.WriteHeader(code)
	t.status = code
	t.wroteHeader = true
}

func (t *ResponseTracker) Write(b []byte) (int, error) {
	t.mu.Lock()
	if err := t.ctx.Err(); err != nil && (!t.wroteHeader || t.status < http.StatusBadRequest) {
		t.mu.Unlock()
		slog.Warn("Dropping response body, request already ended.", "bytes", len(b), "error", err)
		return 0, err
	}

	if !t.wroteHeader {
		t.writeHeaderLocked(http.StatusOK)
	}
	t.mu.Unlock()

	n, err := t.ResponseWriter.Write(b)
	t.size.Add(int64(n))
	return n, err
}

// Status is the code sent to the client, 200 until a header is written.
func (t *ResponseTracker) Status() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *ResponseTracker) Size() int64 {
	return t.size.Load()
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (t *ResponseTracker) Unwrap() http.ResponseWriter {
	return t.ResponseWriter
}
