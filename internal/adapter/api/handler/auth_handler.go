package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/flickerrrrrz/iprawnik/internal/usecase"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	uc     usecase.AuthUseCase
	logger *slog.Logger
}

func NewAuthHandler(uc usecase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "failed to decode JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondBadRequest(w, "email and password are required")
		return
	}

	token, err := h.uc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Signup handles POST /auth/signup. The fresh account has no tenant yet;
// the client is expected to call onboarding next.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "failed to decode JSON body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondBadRequest(w, "a valid email is required")
		return
	}
	if len(req.Password) < 8 {
		respondBadRequest(w, "password must be at least 8 characters")
		return
	}

	token, err := h.uc.Signup(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, tokenResponse{Token: token})
}
