package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalog/vitalog/internal/handler/dto"
	"github.com/vitalog/vitalog/internal/service"
)

// TrackingHandler handles HTTP requests for daily logs.
type TrackingHandler struct {
	svc    *service.TrackingService
	logger *slog.Logger
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(svc *service.TrackingService, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{
		svc:    svc,
		logger: logger,
	}
}

// LogWater handles POST /api/water.
func (h *TrackingHandler) LogWater(w http.ResponseWriter, r *http.Request) {
	var req dto.WaterLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	log, err := h.svc.LogWater(r.Context(), req.UserID, req.Amount)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("water_logged",
		"user_id", log.UserID,
		"amount_ml", log.AmountMl,
	)

	writeJSON(w, http.StatusCreated, log)
}

// WaterLogs handles GET /api/water/{user_id}?date=YYYY-MM-DD.
// Without a date parameter the current UTC day is used.
func (h *TrackingHandler) WaterLogs(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	date := r.URL.Query().Get("date")

	logs, err := h.svc.WaterLogs(r.Context(), userID, date)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// LogProgress handles POST /api/progress.
func (h *TrackingHandler) LogProgress(w http.ResponseWriter, r *http.Request) {
	var req dto.ProgressLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	log, err := h.svc.LogProgress(r.Context(), req.UserID, req.Weight)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("progress_logged",
		"user_id", log.UserID,
		"weight_kg", log.WeightKg,
	)

	writeJSON(w, http.StatusCreated, log)
}

// Progress handles GET /api/progress/{user_id}.
func (h *TrackingHandler) Progress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	logs, err := h.svc.Progress(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// handleServiceError maps service errors to HTTP responses.
func (h *TrackingHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, service.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "INVALID_DATE", err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
