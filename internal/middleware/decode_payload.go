package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/ferdiebergado/riskapi/internal/pkg/errs"
	"github.com/ferdiebergado/riskapi/internal/pkg/message"
	"github.com/ferdiebergado/riskapi/internal/pkg/web"
)

// DecodePayload decodes the JSON body into a T and stores it in the request context.
// Unknown keys are ignored and an empty body decodes to the zero T. Bodies that
// are not valid UTF-8 are rejected.
func DecodePayload[T any](bodySize int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, bodySize)
			body, err := io.ReadAll(r.Body)
			if err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					web.Fail(w, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %w", errs.ErrPayloadTooLarge, err), message.PayloadTooLarge, nil)
					return
				}

				web.Fail(w, http.StatusBadRequest, fmt.Errorf("%w: read body: %w", errs.ErrInvalidInput, err), message.InvalidInput, nil)
				return
			}

			if !utf8.Valid(body) {
				web.Fail(w, http.StatusBadRequest, fmt.Errorf("%w: body is not valid UTF-8", errs.ErrInvalidInput), message.InvalidInput, nil)
				return
			}

			decoder := json.NewDecoder(bytes.NewReader(body))

			var decoded T
			if err := decoder.Decode(&decoded); err != nil && !errors.Is(err, io.EOF) {
				web.Fail(w, http.StatusBadRequest, fmt.Errorf("%w: %w", errs.ErrInvalidInput, err), message.InvalidInput, nil)
				return
			}

			if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
				web.Fail(w, http.StatusBadRequest, fmt.Errorf("%w: trailing data after payload", errs.ErrInvalidInput), message.InvalidInput, nil)
				return
			}

			ctx := web.NewContextWithParams(r.Context(), decoded)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
