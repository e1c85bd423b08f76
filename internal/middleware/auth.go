package middleware

import (
	"net/http"
	"strings"

	"formworks/internal/auth"
	"formworks/internal/httputil"
)

// adminPrefix guards the form management surface. Public form rendering and
// submission stay open; gating of those routes, if any, happens upstream.
const adminPrefix = "/api/admin/"

// AuthMiddleware verifies the bearer token on admin routes and requires the
// admin role. On success the authenticated user id is placed in the request
// context. Non-admin routes pass through untouched.
func AuthMiddleware(verifier auth.JWTVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, adminPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			if !claims.IsAdmin() {
				httputil.RespondError(w, http.StatusForbidden, "admin role required")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, claims.GetUserID()))
		})
	}
}

// bearerToken extracts the token from the Authorization header
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
