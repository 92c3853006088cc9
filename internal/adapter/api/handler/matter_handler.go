package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/usecase"
)

// MatterHandler handles HTTP requests for matters.
type MatterHandler struct {
	uc     usecase.MatterUseCase
	logger *slog.Logger
}

func NewMatterHandler(uc usecase.MatterUseCase, logger *slog.Logger) *MatterHandler {
	return &MatterHandler{uc: uc, logger: logger}
}

// List handles GET /matters.
func (h *MatterHandler) List(w http.ResponseWriter, r *http.Request) {
	matters, err := h.uc.List(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	if matters == nil {
		matters = []domain.Matter{}
	}
	respondWithJSON(w, http.StatusOK, matters)
}

// Get handles GET /matters/{id}.
func (h *MatterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid matter id")
		return
	}

	detail, err := h.uc.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

// Create handles POST /matters.
func (h *MatterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateMatterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondBadRequest(w, "failed to decode JSON body")
		return
	}
	if input.Title == "" || input.ClientName == "" {
		respondBadRequest(w, "title and client_name are required")
		return
	}
	if input.Status != "" && !input.Status.Valid() {
		respondBadRequest(w, "invalid status")
		return
	}

	matter, err := h.uc.Create(r.Context(), input)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, matter)
}

type updateMatterRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	ClientName  *string              `json:"client_name"`
	ClientEmail *string              `json:"client_email"`
	ClientPhone *string              `json:"client_phone"`
	Status      *domain.MatterStatus `json:"status"`
	MatterType  *string              `json:"matter_type"`
	AssignedTo  *uuid.UUID           `json:"assigned_to"`
}

// Update handles PATCH /matters/{id}.
func (h *MatterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid matter id")
		return
	}

	var req updateMatterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "failed to decode JSON body")
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		respondBadRequest(w, "invalid status")
		return
	}

	matter, err := h.uc.Update(r.Context(), id, domain.MatterUpdate{
		Title:       req.Title,
		Description: req.Description,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Status:      req.Status,
		MatterType:  req.MatterType,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, matter)
}

// Delete handles DELETE /matters/{id}.
func (h *MatterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid matter id")
		return
	}

	if err := h.uc.Delete(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
