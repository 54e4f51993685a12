package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"chirp-api/internal/config"
	"chirp-api/internal/handler"
	"chirp-api/internal/middleware"
)

// HealthChecker reports store reachability for the health endpoint.
type HealthChecker func(ctx context.Context) error

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	ownershipMiddleware *middleware.OwnershipMiddleware,
	userHandler *handler.UserHandler,
	tweetHandler *handler.TweetHandler,
	health HealthChecker,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if health != nil {
			if err := health(req.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("degraded"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/user", func(user chi.Router) {
			user.Post("/register", userHandler.Register)
			user.Post("/login", userHandler.Login)
			user.Get("/{id}", userHandler.Profile)
			user.With(authMiddleware.RequireAuth).Patch("/{id}/follow", userHandler.Follow)
			user.With(authMiddleware.RequireAuth).Patch("/{id}/unfollow", userHandler.Unfollow)
		})

		api.Route("/tweet", func(tweet chi.Router) {
			tweet.With(authMiddleware.RequireAuth).Post("/create", tweetHandler.Create)
			tweet.Get("/{id}", tweetHandler.Get)
			tweet.With(authMiddleware.RequireAuth, ownershipMiddleware.RequireTweetOwner).
				Delete("/{id}", tweetHandler.Delete)
			tweet.With(authMiddleware.RequireAuth).Patch("/{id}/like", tweetHandler.Like)
			tweet.With(authMiddleware.RequireAuth).Patch("/{id}/unlike", tweetHandler.Unlike)
			tweet.With(authMiddleware.RequireAuth).Patch("/{id}/retweet", tweetHandler.Retweet)
			tweet.With(authMiddleware.RequireAuth).Post("/{id}/reply", tweetHandler.Reply)
		})
	})

	return r
}
