package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/user"
	"github.com/chamcong-app/attendance-backend-go/internal/handler/http/response"
)

// AdminOnly restricts the route to tokens carrying the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Invalid or missing token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
