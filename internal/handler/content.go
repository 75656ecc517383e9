package handler

import (
	"net/http"

	"github.com/vitalog/vitalog/internal/content"
	"github.com/vitalog/vitalog/internal/handler/dto"
	"github.com/vitalog/vitalog/internal/metrics"
)

// ContentHandler serves static meal plans and motivational messages.
type ContentHandler struct {
	metrics metrics.Recorder
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(recorder metrics.Recorder) *ContentHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ContentHandler{metrics: recorder}
}

// Meals handles GET /api/meals.
// The plan is identical for every caller.
func (h *ContentHandler) Meals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, content.Meals())
}

// Motivation handles GET /api/motivation.
func (h *ContentHandler) Motivation(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncMotivationServed()

	writeJSON(w, http.StatusOK, dto.MotivationResponse{
		Message: content.Motivation(),
	})
}
