package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vitalog/vitalog/internal/handler/dto"
	"github.com/vitalog/vitalog/internal/model"
	"github.com/vitalog/vitalog/internal/repository"
	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/internal/testutil"
)

// newAPITestEnv wires the real services and handlers behind a router with
// the production route shapes. Tests are skipped when TEST_DATABASE_URL is
// not set.
func newAPITestEnv(t *testing.T) *chi.Mux {
	t.Helper()

	ctx := context.Background()
	databaseURL := testutil.RequireEnv(t, "TEST_DATABASE_URL")

	if err := repository.Migrate(databaseURL); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo, err := repository.New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(repo.Close)

	if _, err := repo.Pool().Exec(ctx, "TRUNCATE water_logs, progress_logs, users"); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	logger := discardLogger()
	userHandler := NewUserHandler(service.NewUserService(repo, nil), logger)
	trackingHandler := NewTrackingHandler(service.NewTrackingService(repo, nil), logger)
	wellnessHandler := NewWellnessHandler(service.NewWellnessService(repo), logger)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
		})
		r.Route("/water", func(r chi.Router) {
			r.Post("/", trackingHandler.LogWater)
			r.Get("/calculate/{user_id}", wellnessHandler.WaterGoal)
			r.Get("/{user_id}", trackingHandler.WaterLogs)
		})
		r.Get("/bmi/{user_id}", wellnessHandler.BMI)
	})
	router.NotFound(NotFound)
	router.MethodNotAllowed(MethodNotAllowed)

	return router
}

func createTestUser(t *testing.T, router *chi.Mux, weight float64) string {
	t.Helper()

	body := fmt.Sprintf(`{"name": "Router Test", "age": 28, "weight": %g, "height": 172, "sex": "female", "gym_attendance": true}`, weight)
	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create user: status %d, body %s", rec.Code, rec.Body.String())
	}

	var user model.User
	if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return user.ID
}

func TestRouter_UnknownUserReturns404(t *testing.T) {
	router := newAPITestEnv(t)

	for _, path := range []string{
		"/api/user/" + uuid.NewString(),
		"/api/bmi/" + uuid.NewString(),
		"/api/water/calculate/" + uuid.NewString(),
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s: status = %d, want 404", path, rec.Code)
			continue
		}

		var payload dto.ErrorResponse
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Fatalf("GET %s: decode response: %v", path, err)
		}
		if payload.Code != "USER_NOT_FOUND" {
			t.Errorf("GET %s: code = %q, want USER_NOT_FOUND", path, payload.Code)
		}
	}
}

// The static /calculate segment must win over the {user_id} parameter, so
// a calculate request reaches the goal handler rather than the log listing.
func TestRouter_WaterCalculateTakesPrecedence(t *testing.T) {
	router := newAPITestEnv(t)

	userID := createTestUser(t, router, 80)

	req := httptest.NewRequest(http.MethodGet, "/api/water/calculate/"+userID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var goal dto.WaterGoalResponse
	if err := json.NewDecoder(rec.Body).Decode(&goal); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if goal.UserID != userID {
		t.Errorf("user_id = %q, want %q", goal.UserID, userID)
	}
	if goal.DailyGoalMl != 2800 {
		t.Errorf("daily_goal_ml = %v, want 2800", goal.DailyGoalMl)
	}
	if goal.DailyGoalLiters != 2.8 {
		t.Errorf("daily_goal_liters = %v, want 2.8", goal.DailyGoalLiters)
	}

	// The parameterized sibling still serves log listings as a JSON array.
	req2 := httptest.NewRequest(http.MethodGet, "/api/water/"+userID, nil)
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)

	if rec2.Code != http.StatusOK {
		t.Fatalf("list status = %d, body %s", rec2.Code, rec2.Body.String())
	}

	var logs []*model.WaterLog
	if err := json.NewDecoder(rec2.Body).Decode(&logs); err != nil {
		t.Fatalf("decode log list: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected empty log list, got %d entries", len(logs))
	}
}
