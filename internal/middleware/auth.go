package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/regform/regform-go/internal/crypto"
)

type contextKey string

const (
	claimsKey    contextKey = "confirmationClaims"
	requestIDKey contextKey = "requestID"
)

// ConfirmationAuth requires a valid confirmation token as a Bearer credential.
func ConfirmationAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ParseConfirmation(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the confirmation claims set by ConfirmationAuth.
func ClaimsFromContext(ctx context.Context) (*crypto.ConfirmationClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*crypto.ConfirmationClaims)
	return claims, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
