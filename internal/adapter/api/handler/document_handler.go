package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/usecase"
)

// DocumentHandler handles HTTP requests for document metadata.
type DocumentHandler struct {
	uc     usecase.DocumentUseCase
	logger *slog.Logger
}

func NewDocumentHandler(uc usecase.DocumentUseCase, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{uc: uc, logger: logger}
}

// List handles GET /documents?matter_id=...
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	var matterID *uuid.UUID
	if raw := r.URL.Query().Get("matter_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondBadRequest(w, "invalid matter_id")
			return
		}
		matterID = &id
	}

	docs, err := h.uc.List(r.Context(), matterID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	respondWithJSON(w, http.StatusOK, docs)
}

// Create handles POST /documents.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateDocumentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondBadRequest(w, "failed to decode JSON body")
		return
	}
	if input.MatterID == uuid.Nil {
		respondBadRequest(w, "matter_id is required")
		return
	}
	if input.Title == "" || input.FileName == "" {
		respondBadRequest(w, "title and file_name are required")
		return
	}

	doc, err := h.uc.Create(r.Context(), input)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, doc)
}
