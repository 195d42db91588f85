package middleware

import (
	"context"
	"net/http"

	"github.com/ferdiebergado/riskapi/internal/pkg/message"
	"github.com/ferdiebergado/riskapi/internal/pkg/web"
)

// ContextGuard answers 408 without running the handler when the client has
// gone away or the request deadline has already passed.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		select {
		case <-ctx.Done():
			web.Fail(w, http.StatusRequestTimeout, context.Cause(ctx), message.RequestTimeout, nil)
		default:
			next.ServeHTTP(w, r)
		}
	})
}
