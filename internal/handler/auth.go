package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"admin-orders-service/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool       `json:"success"`
	User    *auth.User `json:"user"`
}

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /auth/login. Bad credentials get a deliberately
// generic 401 so usernames cannot be enumerated.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("Failed to decode login request body")
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			log.Error().Msg("Admin credentials not set in environment")
			respondWithError(w, http.StatusInternalServerError, "Server configuration error")
			return
		}
		respondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	respondWithJSON(w, http.StatusOK, loginResponse{Success: true, User: user})
}
