package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/tuanvumaihuynh/product-api/internal/apperr"
)

const (
	APIKeyHeader = "X-API-Key"

	// APIKey is the shared secret every mutating request must present.
	APIKey = "mysecretapikey"
)

// ErrorHandlerFunc writes err as the response.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// APIKeyAuth rejects requests whose X-API-Key header does not match key.
func APIKeyAuth(key string, onError ErrorHandlerFunc) func(http.Handler) http.Handler {
	expected := []byte(key)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(APIKeyHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
				onError(w, r, apperr.UnauthorizedErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
