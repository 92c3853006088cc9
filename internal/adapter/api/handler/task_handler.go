package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/usecase"
)

// TaskHandler handles HTTP requests for legal tasks.
type TaskHandler struct {
	uc     usecase.TaskUseCase
	logger *slog.Logger
}

func NewTaskHandler(uc usecase.TaskUseCase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{uc: uc, logger: logger}
}

// List handles GET /tasks?matter_id=...
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	var matterID *uuid.UUID
	if raw := r.URL.Query().Get("matter_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondBadRequest(w, "invalid matter_id")
			return
		}
		matterID = &id
	}

	tasks, err := h.uc.List(r.Context(), matterID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	respondWithJSON(w, http.StatusOK, tasks)
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondBadRequest(w, "failed to decode JSON body")
		return
	}
	if input.MatterID == uuid.Nil {
		respondBadRequest(w, "matter_id is required")
		return
	}
	if input.Title == "" || input.TaskType == "" {
		respondBadRequest(w, "title and task_type are required")
		return
	}

	task, err := h.uc.Create(r.Context(), input)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, task)
}
