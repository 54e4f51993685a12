package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"chirp-api/internal/model"
	"chirp-api/pkg/apierror"
)

type stubVerifier struct {
	err error
}

func (s *stubVerifier) VerifyAccessToken(string) (*model.AuthClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.AuthClaims{Username: "alice", Type: "access"}, nil
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) model.APIError {
	t.Helper()

	var body model.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	passthrough := func(reached *bool, token *string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*reached = true
			if got, ok := TokenFromContext(r.Context()); ok {
				*token = got
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("missing header is denied", func(t *testing.T) {
		reached := false
		var token string
		mw := NewAuthMiddleware(&stubVerifier{})

		rec := httptest.NewRecorder()
		mw.RequireAuth(passthrough(&reached, &token)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tweet/create", nil))

		require.False(t, reached)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeAPIError(t, rec)
		require.Equal(t, http.StatusUnauthorized, body.Status)
		require.Equal(t, "Unauthorized", body.Message)
	})

	t.Run("expired token keeps its distinct reason", func(t *testing.T) {
		reached := false
		var token string
		mw := NewAuthMiddleware(&stubVerifier{err: apierror.New(apierror.KindUnauthorized, "TokenExpiredError")})

		req := httptest.NewRequest(http.MethodPost, "/api/tweet/create", nil)
		req.Header.Set(AccessTokenHeader, "stale")
		rec := httptest.NewRecorder()
		mw.RequireAuth(passthrough(&reached, &token)).ServeHTTP(rec, req)

		require.False(t, reached)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "TokenExpiredError", decodeAPIError(t, rec).Message)
	})

	t.Run("invalid token gets the generic denial", func(t *testing.T) {
		reached := false
		var token string
		mw := NewAuthMiddleware(&stubVerifier{err: apierror.New(apierror.KindUnauthorized, "Unauthorized")})

		req := httptest.NewRequest(http.MethodPost, "/api/tweet/create", nil)
		req.Header.Set(AccessTokenHeader, "garbage")
		rec := httptest.NewRecorder()
		mw.RequireAuth(passthrough(&reached, &token)).ServeHTTP(rec, req)

		require.False(t, reached)
		require.Equal(t, "Unauthorized", decodeAPIError(t, rec).Message)
	})

	t.Run("valid token reaches the handler with the token in context", func(t *testing.T) {
		reached := false
		var token string
		mw := NewAuthMiddleware(&stubVerifier{})

		req := httptest.NewRequest(http.MethodPost, "/api/tweet/create", nil)
		req.Header.Set(AccessTokenHeader, "good-token")
		rec := httptest.NewRecorder()
		mw.RequireAuth(passthrough(&reached, &token)).ServeHTTP(rec, req)

		require.True(t, reached)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "good-token", token)
	})
}
