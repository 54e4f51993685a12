package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"chirp-api/internal/middleware"
	"chirp-api/internal/model"
	"chirp-api/internal/service"
	"chirp-api/pkg/apierror"
)

type TweetHandler struct {
	tweets *service.TweetService
	users  *service.UserService
}

func NewTweetHandler(tweets *service.TweetService, users *service.UserService) *TweetHandler {
	return &TweetHandler{tweets: tweets, users: users}
}

func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New(apierror.KindBadRequest, "Invalid JSON body"))
		return
	}

	if fields := validateTweetBody(payload.Body); fields != nil {
		writeError(w, apierror.Unprocessable(fields))
		return
	}

	identity, err := h.actingIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	tweet, err := h.tweets.Create(r.Context(), strings.TrimSpace(payload.Body), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.TweetResponse{
		Status:  http.StatusCreated,
		Message: "Tweet posted successfully",
		Tweet:   tweet,
	})
}

func (h *TweetHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.tweets.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.TweetViewResponse{
		Status: http.StatusOK,
		Tweet:  view,
	})
}

// Delete runs behind the ownership gate; by the time it executes the caller
// is the tweet's author.
func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tweets.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.DeleteTweetResponse{
		Status:  http.StatusOK,
		Message: "Tweet deleted successfully",
	})
}

func (h *TweetHandler) Like(w http.ResponseWriter, r *http.Request) {
	identity, err := h.actingIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	tweet, err := h.tweets.Like(r.Context(), chi.URLParam(r, "id"), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.EngagementResponse{
		Status:   http.StatusOK,
		Message:  "Tweet liked successfully",
		Likes:    tweet.Likes,
		Retweets: tweet.Retweets,
	})
}

func (h *TweetHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	identity, err := h.actingIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	tweet, err := h.tweets.Unlike(r.Context(), chi.URLParam(r, "id"), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.EngagementResponse{
		Status:   http.StatusOK,
		Message:  "Tweet unliked successfully",
		Likes:    tweet.Likes,
		Retweets: tweet.Retweets,
	})
}

func (h *TweetHandler) Retweet(w http.ResponseWriter, r *http.Request) {
	identity, err := h.actingIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	tweet, retweeted, err := h.tweets.Retweet(r.Context(), chi.URLParam(r, "id"), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	message := "Tweet retweeted successfully"
	if !retweeted {
		message = "Retweet undone"
	}

	writeJSON(w, http.StatusOK, model.EngagementResponse{
		Status:   http.StatusOK,
		Message:  message,
		Likes:    tweet.Likes,
		Retweets: tweet.Retweets,
	})
}

func (h *TweetHandler) Reply(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New(apierror.KindBadRequest, "Invalid JSON body"))
		return
	}

	if fields := validateTweetBody(payload.Body); fields != nil {
		writeError(w, apierror.Unprocessable(fields))
		return
	}

	identity, err := h.actingIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	reply, err := h.tweets.Reply(r.Context(), chi.URLParam(r, "id"), strings.TrimSpace(payload.Body), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.TweetResponse{
		Status:  http.StatusCreated,
		Message: "Reply posted successfully",
		Tweet:   reply,
	})
}

func (h *TweetHandler) actingIdentity(r *http.Request) (model.Identity, error) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		return model.Identity{}, apierror.New(apierror.KindUnauthorized, "Unauthorized")
	}
	return h.users.ResolveIdentity(r.Context(), token)
}
