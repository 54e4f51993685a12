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

type UserHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

func NewUserHandler(auth *service.AuthService, users *service.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New(apierror.KindBadRequest, "Invalid JSON body"))
		return
	}

	if fields := validateCredentials(payload.Username, payload.Password); fields != nil {
		writeError(w, apierror.Unprocessable(fields))
		return
	}

	user, tokens, err := h.auth.Register(r.Context(), strings.TrimSpace(payload.Username), strings.TrimSpace(payload.Password))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.RegisterResponse{
		Status:       http.StatusCreated,
		Message:      "User registered successfully",
		User:         user.Public(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New(apierror.KindBadRequest, "Invalid JSON body"))
		return
	}

	if fields := validateCredentials(payload.Username, payload.Password); fields != nil {
		writeError(w, apierror.Unprocessable(fields))
		return
	}

	user, tokens, err := h.auth.Login(r.Context(), strings.TrimSpace(payload.Username), strings.TrimSpace(payload.Password))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{
		Status:       http.StatusOK,
		Message:      "User logged in successfully",
		User:         user.Public(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Profile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ProfileResponse{
		Status: http.StatusOK,
		User:   user,
	})
}

func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	identity, err := h.actingIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	following, already, err := h.users.Follow(r.Context(), identity, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	message := "User followed successfully"
	if already {
		message = "Already following this user"
	}

	writeJSON(w, http.StatusOK, model.FollowResponse{
		Status:    http.StatusOK,
		Message:   message,
		Following: following,
	})
}

func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	identity, err := h.actingIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	following, already, err := h.users.Unfollow(r.Context(), identity, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	message := "User unfollowed successfully"
	if already {
		message = "Not following this user"
	}

	writeJSON(w, http.StatusOK, model.FollowResponse{
		Status:    http.StatusOK,
		Message:   message,
		Following: following,
	})
}

func (h *UserHandler) actingIdentity(r *http.Request) (model.Identity, error) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		return model.Identity{}, apierror.New(apierror.KindUnauthorized, "Unauthorized")
	}
	return h.users.ResolveIdentity(r.Context(), token)
}
