package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/chamcong-app/attendance-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a valid access token. It must run
// after jwtauth.Verifier so the token is already parsed into the context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.Unauthorized(w, "Invalid or missing token")
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "access" {
			response.Unauthorized(w, "Invalid or missing token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
