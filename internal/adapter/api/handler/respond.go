package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/usecase"
)

// errorResponse is the JSON error envelope. The code field lets clients
// distinguish "log in" (unauthenticated) from "finish onboarding"
// (onboarding_required) from "not allowed" (forbidden) without parsing
// messages.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondWithError maps the service error taxonomy onto HTTP statuses.
// Infrastructure faults are logged here; expected states (no session, not
// onboarded, denied) are not application faults and are not logged as such.
func respondWithError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, usecase.ErrInvalidCredentials):
		respondWithJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required", Code: "unauthenticated"})
	case errors.Is(err, domain.ErrNoTenant):
		respondWithJSON(w, http.StatusForbidden, errorResponse{Error: "no tenant membership, complete onboarding first", Code: "onboarding_required"})
	case errors.Is(err, domain.ErrForbidden):
		respondWithJSON(w, http.StatusForbidden, errorResponse{Error: "insufficient permissions", Code: "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		respondWithJSON(w, http.StatusNotFound, errorResponse{Error: "not found", Code: "not_found"})
	case errors.Is(err, domain.ErrConflict):
		respondWithJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "conflict"})
	default:
		logger.Error("request failed", "error", err)
		respondWithJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: "internal"})
	}
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: message, Code: "bad_request"})
}
