package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/flickerrrrrz/iprawnik/internal/usecase"
)

// TenantHandler handles onboarding and tenant/member queries.
type TenantHandler struct {
	onboarding usecase.OnboardingUseCase
	members    usecase.MemberUseCase
	logger     *slog.Logger
}

func NewTenantHandler(onboarding usecase.OnboardingUseCase, members usecase.MemberUseCase, logger *slog.Logger) *TenantHandler {
	return &TenantHandler{onboarding: onboarding, members: members, logger: logger}
}

type onboardRequest struct {
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// Onboard handles POST /onboarding: creates the caller's firm and owner
// membership. Idempotent; 409 on slug collision.
func (h *TenantHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req onboardRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "failed to decode JSON body")
			return
		}
	}

	membership, err := h.onboarding.Onboard(r.Context(), req.Name, req.Slug)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, membership)
}

// Current handles GET /tenant: the caller's membership with its tenant
// snapshot.
func (h *TenantHandler) Current(w http.ResponseWriter, r *http.Request) {
	membership, err := h.members.Current(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, membership)
}

// ListMembers handles GET /members. Owner or admin only.
func (h *TenantHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.members.List(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, members)
}
