package middleware

import (
	"net/http"
)

const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"

	AllowedOrigin  = "*"
	AllowedMethods = "POST,PUT,GET,OPTIONS,DELETE"
	AllowedHeaders = "Content-Type, Authorization"
)

// CORS sets the cross-origin headers on every response. Preflight requests
// fall through to their OPTIONS routes.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderAllowOrigin, AllowedOrigin)
		w.Header().Set(HeaderAllowHeaders, AllowedHeaders)
		w.Header().Set(HeaderAllowMethods, AllowedMethods)

		next.ServeHTTP(w, r)
	})
}
