package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"chirp-api/internal/model"
	"chirp-api/pkg/apierror"
)

type identityResolver interface {
	ResolveIdentity(ctx context.Context, tokenString string) (model.Identity, error)
}

type tweetFinder interface {
	FindByID(ctx context.Context, id string) (model.Tweet, error)
}

// OwnershipMiddleware gates routes that mutate or delete a specific tweet:
// the resolved identity must match the tweet's recorded author. It fails
// closed; any resolution failure is a denial, never a pass-through.
type OwnershipMiddleware struct {
	identities identityResolver
	tweets     tweetFinder
}

func NewOwnershipMiddleware(identities identityResolver, tweets tweetFinder) *OwnershipMiddleware {
	return &OwnershipMiddleware{identities: identities, tweets: tweets}
}

func (m *OwnershipMiddleware) RequireTweetOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := TokenFromContext(r.Context())
		if !ok {
			writeDenied(w, "Unauthorized")
			return
		}

		identity, err := m.identities.ResolveIdentity(r.Context(), token)
		if err != nil {
			writeDenied(w, "Unauthorized")
			return
		}

		tweet, err := m.tweets.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			var apiErr *apierror.Error
			if errors.As(err, &apiErr) && apiErr.Kind == apierror.KindNotFound {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				_ = jsonEncode(w, model.APIError{
					Status:  http.StatusNotFound,
					Message: "Tweet not available",
				})
				return
			}
			writeDenied(w, "Unauthorized")
			return
		}

		// Ids are opaque strings; plain value equality is the whole check.
		if identity.ID != tweet.AuthorID {
			writeDenied(w, "Sorry, You don't have access to this resource.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
