package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"chirp-api/internal/model"
	"chirp-api/pkg/apierror"
)

// AccessTokenHeader carries the bearer token. Clients send it as a custom
// header rather than the standard Authorization scheme.
const AccessTokenHeader = "access-token"

type tokenVerifier interface {
	VerifyAccessToken(tokenString string) (*model.AuthClaims, error)
}

type contextKey string

const (
	bearerTokenContextKey contextKey = "bearer_token"
	authClaimsContextKey  contextKey = "auth_claims"
)

// AuthMiddleware rejects requests lacking a valid access token before they
// reach business logic. It talks to the token verifier directly; identity
// resolution against the credential store is left to downstream consumers.
type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(AccessTokenHeader))
		if token == "" {
			writeDenied(w, "Unauthorized")
			return
		}

		if _, err := m.verifier.VerifyAccessToken(token); err != nil {
			// Expired tokens carry their own reason; everything else is a
			// generic denial.
			var apiErr *apierror.Error
			if errors.As(err, &apiErr) && apiErr.Kind == apierror.KindUnauthorized {
				writeDenied(w, apiErr.Message)
				return
			}
			writeDenied(w, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), bearerTokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFromContext returns the verified bearer token stored by RequireAuth.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerTokenContextKey).(string)
	return token, ok
}

func writeDenied(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = jsonEncode(w, model.APIError{
		Status:  http.StatusUnauthorized,
		Message: message,
	})
}
