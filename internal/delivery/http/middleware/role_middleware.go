package middleware

import (
	"net/http"

	"health-predict-backend/pkg/jwt"
	"health-predict-backend/pkg/response"
)

// RequireDoctor gates doctor-only routes. A missing role claim means the
// caller is a patient, so the check is a plain equality against "doctor".
// The 403 here differs from the token-verification 403 only in message.
func RequireDoctor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := GetRoleFromContext(r.Context())
		if role != jwt.RoleDoctor {
			response.Forbidden(w, "Access denied. Doctors only.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
