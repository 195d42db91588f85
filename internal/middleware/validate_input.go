package middleware

import (
	"net/http"

	"github.com/ferdiebergado/riskapi/internal/pkg/errs"
	"github.com/ferdiebergado/riskapi/internal/pkg/message"
	"github.com/ferdiebergado/riskapi/internal/pkg/web"
	"github.com/ferdiebergado/riskapi/internal/platform/validation"
)

// ValidateInput checks the T stored by DecodePayload and answers 422 with the field errors.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
				return
			}

			if fieldErrs := validator.ValidateStruct(params); fieldErrs != nil {
				web.Fail(w, http.StatusUnprocessableEntity, errs.ErrInvalidInput, message.InvalidInput, fieldErrs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
