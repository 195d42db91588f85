package middleware

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/ferdiebergado/riskapi/internal/pkg/errs"
	"github.com/ferdiebergado/riskapi/internal/pkg/message"
	"github.com/ferdiebergado/riskapi/internal/pkg/web"
)

// CheckContentType rejects write requests whose body is not JSON.
// A request with neither a body nor a Content-Type passes.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		if contentType == "" && r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			reason := fmt.Errorf("%w: %q", errs.ErrUnsupportedMedia, contentType)
			web.Fail(w, http.StatusUnsupportedMediaType, reason, message.UnsupportedMedia, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
