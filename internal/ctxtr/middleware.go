package ctxtr

import (
	"net/http"
	"strings"
)

// Middleware copies the user id header into the request context. Requests
// without it pass through anonymous and are rejected by the use cases.
func Middleware(header string) func(http.Handler) http.Handler {
	header = normalizeHeader(header)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID := strings.TrimSpace(r.Header.Get(header)); userID != "" {
				r = r.WithContext(WithUserID(r.Context(), userID))
			}

			next.ServeHTTP(w, r)
		})
	}
}
