package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/imovead/imovead/internal/ctxkeys"
	"github.com/imovead/imovead/internal/service"
)

// Auth verifies the identity provider's token and adds the user id to the
// request context. Requests without a valid token continue anonymously;
// RequireAuth is the gate.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authService.VerifyJWT(token)
			if err != nil {
				// Invalid or expired token, continue without identity
				next.ServeHTTP(w, r)
				return
			}

			userID := authService.UserID(claims)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no verified identity. Every RPC
// procedure sits behind this gate; only the public listing read bypasses it.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.UserID(r.Context()) == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{
					"kind":    "UNAUTHORIZED",
					"message": "authentication required",
				},
			})
			return
		}

		next.ServeHTTP(w, r)
	}
}

// bearerToken reads the token from the Authorization header, falling back
// to the auth_token cookie set by the web client.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := r.Cookie("auth_token")
	if err != nil {
		return ""
	}
	return cookie.Value
}
