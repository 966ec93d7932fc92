package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/models"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, service.ErrTokenIsExpiredOrInvalid, "Task creation failed", "")
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided, "Invalid request body", "")
		return
	}

	if req.CSRFToken == "" {
		writeError(w, ErrMissingCSRFToken, "Task creation failed", req.CorrelationID)
		return
	}

	task := req.Data
	task.UserID = userID

	created, err := h.services.TaskService.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Msg("task creation failed")
		writeError(w, err, "Task creation failed", req.CorrelationID)
		return
	}

	writeSuccess(w, http.StatusCreated, created, "Task created successfully", req.CorrelationID)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, service.ErrTokenIsExpiredOrInvalid, "Task listing failed", "")
		return
	}

	filter := taskFilterFromQuery(r)
	correlationID := r.Header.Get(traceIDHeader)

	tasks, err := h.services.TaskService.ListTasks(ctx, userID, filter)
	if err != nil {
		log.Err(err).Msg("task listing failed")
		writeError(w, err, "Task listing failed", correlationID)
		return
	}

	writeSuccess(w, http.StatusOK, models.TaskListResponseData{
		Tasks:  tasks,
		Length: len(tasks),
	}, "Tasks retrieved successfully", correlationID)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, service.ErrTokenIsExpiredOrInvalid, "Task retrieval failed", "")
		return
	}

	taskID := chi.URLParam(r, "taskID")
	correlationID := r.Header.Get(traceIDHeader)

	task, err := h.services.TaskService.GetTask(ctx, taskID, userID)
	if err != nil {
		log.Err(err).Str("taskID", taskID).Msg("task retrieval failed")
		writeError(w, err, "Task retrieval failed", correlationID)
		return
	}

	writeSuccess(w, http.StatusOK, task, "Task retrieved successfully", correlationID)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, service.ErrTokenIsExpiredOrInvalid, "Task update failed", "")
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided, "Invalid request body", "")
		return
	}

	if req.CSRFToken == "" {
		writeError(w, ErrMissingCSRFToken, "Task update failed", req.CorrelationID)
		return
	}

	update := req.Data
	update.ID = chi.URLParam(r, "taskID")
	update.UserID = userID

	updated, err := h.services.TaskService.UpdateTask(ctx, update)
	if err != nil {
		log.Err(err).Str("taskID", update.ID).Msg("task update failed")
		writeError(w, err, "Task update failed", req.CorrelationID)
		return
	}

	writeSuccess(w, http.StatusOK, updated, "Task updated successfully", req.CorrelationID)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, service.ErrTokenIsExpiredOrInvalid, "Task deletion failed", "")
		return
	}

	taskID := chi.URLParam(r, "taskID")
	correlationID := r.Header.Get(traceIDHeader)

	if err := h.services.TaskService.DeleteTask(ctx, taskID, userID); err != nil {
		log.Err(err).Str("taskID", taskID).Msg("task deletion failed")
		writeError(w, err, "Task deletion failed", correlationID)
		return
	}

	writeSuccess(w, http.StatusOK, nil, "Task deleted successfully", correlationID)
}

// taskFilterFromQuery reads the optional list filters from the query string.
func taskFilterFromQuery(r *http.Request) models.TaskFilter {
	q := r.URL.Query()
	return models.TaskFilter{
		Status:   models.TaskStatus(q.Get("status")),
		Priority: models.TaskPriority(q.Get("priority")),
		Category: q.Get("category"),
		Project:  q.Get("project"),
		Search:   q.Get("search"),
	}
}
