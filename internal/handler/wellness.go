package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalog/vitalog/internal/handler/dto"
	"github.com/vitalog/vitalog/internal/service"
)

// WellnessHandler handles HTTP requests for derived recommendations.
type WellnessHandler struct {
	svc    *service.WellnessService
	logger *slog.Logger
}

// NewWellnessHandler creates a new WellnessHandler.
func NewWellnessHandler(svc *service.WellnessService, logger *slog.Logger) *WellnessHandler {
	return &WellnessHandler{
		svc:    svc,
		logger: logger,
	}
}

// WaterGoal handles GET /api/water/calculate/{user_id}.
func (h *WellnessHandler) WaterGoal(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	goal, err := h.svc.WaterGoalFor(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.WaterGoalResponse{
		UserID:          userID,
		DailyGoalMl:     goal.GoalMl,
		DailyGoalLiters: goal.GoalLiters,
	})
}

// BMI handles GET /api/bmi/{user_id}.
func (h *WellnessHandler) BMI(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	result, err := h.svc.BMIFor(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BMIResponse{
		UserID: userID,
		BMI:    result.Value,
		Status: result.Status,
		Color:  result.Color,
	})
}

// WorkoutPlan handles GET /api/workouts/{user_id}.
func (h *WellnessHandler) WorkoutPlan(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	plan, err := h.svc.WorkoutPlanFor(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// handleServiceError maps service errors to HTTP responses.
func (h *WellnessHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
