package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"chirp-api/internal/model"
	"chirp-api/pkg/apierror"
)

type stubResolver struct {
	identity model.Identity
	err      error
}

func (s *stubResolver) ResolveIdentity(context.Context, string) (model.Identity, error) {
	return s.identity, s.err
}

type stubTweetFinder struct {
	tweet model.Tweet
	err   error
}

func (s *stubTweetFinder) FindByID(context.Context, string) (model.Tweet, error) {
	return s.tweet, s.err
}

func serveDelete(t *testing.T, mw *OwnershipMiddleware, withToken bool) (*httptest.ResponseRecorder, *bool) {
	t.Helper()

	reached := false
	r := chi.NewRouter()
	r.With(mw.RequireTweetOwner).Delete("/api/tweet/{id}", func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/tweet/t1", nil)
	if withToken {
		req = req.WithContext(context.WithValue(req.Context(), bearerTokenContextKey, "token"))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec, &reached
}

func TestRequireTweetOwner(t *testing.T) {
	t.Parallel()

	t.Run("the author passes", func(t *testing.T) {
		mw := NewOwnershipMiddleware(
			&stubResolver{identity: model.Identity{ID: "u1"}},
			&stubTweetFinder{tweet: model.Tweet{ID: "t1", AuthorID: "u1"}},
		)

		rec, reached := serveDelete(t, mw, true)
		require.True(t, *reached)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("a non-owner is denied", func(t *testing.T) {
		mw := NewOwnershipMiddleware(
			&stubResolver{identity: model.Identity{ID: "u2"}},
			&stubTweetFinder{tweet: model.Tweet{ID: "t1", AuthorID: "u1"}},
		)

		rec, reached := serveDelete(t, mw, true)
		require.False(t, *reached)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Sorry, You don't have access to this resource.", decodeAPIError(t, rec).Message)
	})

	t.Run("a missing tweet is not found", func(t *testing.T) {
		mw := NewOwnershipMiddleware(
			&stubResolver{identity: model.Identity{ID: "u1"}},
			&stubTweetFinder{err: apierror.New(apierror.KindNotFound, "Tweet not available")},
		)

		rec, reached := serveDelete(t, mw, true)
		require.False(t, *reached)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Tweet not available", decodeAPIError(t, rec).Message)
	})

	t.Run("identity resolution failure fails closed", func(t *testing.T) {
		mw := NewOwnershipMiddleware(
			&stubResolver{err: apierror.New(apierror.KindNotFound, "User not available")},
			&stubTweetFinder{tweet: model.Tweet{ID: "t1", AuthorID: "u1"}},
		)

		rec, reached := serveDelete(t, mw, true)
		require.False(t, *reached)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("a store failure on the tweet load fails closed", func(t *testing.T) {
		mw := NewOwnershipMiddleware(
			&stubResolver{identity: model.Identity{ID: "u1"}},
			&stubTweetFinder{err: context.DeadlineExceeded},
		)

		rec, reached := serveDelete(t, mw, true)
		require.False(t, *reached)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no token in context is denied", func(t *testing.T) {
		mw := NewOwnershipMiddleware(
			&stubResolver{identity: model.Identity{ID: "u1"}},
			&stubTweetFinder{tweet: model.Tweet{ID: "t1", AuthorID: "u1"}},
		)

		rec, reached := serveDelete(t, mw, false)
		require.False(t, *reached)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
