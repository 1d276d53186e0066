package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pocketledger/pocketledger/internal/logger"
	"github.com/pocketledger/pocketledger/internal/middleware"
	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/pocketledger/pocketledger/internal/service"
)

type TaskHandler struct {
	tasks *service.TaskService
	log   *logger.Logger
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{
		tasks: tasks,
		log:   logger.New("task-handler"),
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.tasks.Create(r.Context(), userID, &req)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("create task failed: %v", err)
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	tasks, err := h.tasks.List(r.Context(), userID)
	if err != nil {
		h.log.Error("list tasks failed: %v", err)
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var patch models.UpdateTaskRequest
	if err := decoder.Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.tasks.Update(r.Context(), userID, id, &patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			respondError(w, http.StatusNotFound, "task not found")
		case isValidationError(err):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("update task failed: %v", err)
			respondError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	if err := h.tasks.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			respondError(w, http.StatusNotFound, "task not found")
			return
		}
		h.log.Error("delete task failed: %v", err)
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "task deleted"})
}
