package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"auth-api/internal/application/controller"
	"auth-api/internal/domain/model"
)

type stubHealthUseCase struct {
	health model.HealthResponse
}

func (s *stubHealthUseCase) CheckHealth() model.HealthResponse {
	return s.health
}

func (s *stubHealthUseCase) Liveness() model.LivenessResponse {
	return model.LivenessResponse{
		Status:  "healthy",
		Message: "User Authentication API is running",
		Version: "1.0.1",
	}
}

func setupHealthAPI(health model.HealthResponse) *echo.Echo {
	e := echo.New()
	healthController := controller.NewHealthController(e, e.Group(""), &stubHealthUseCase{health: health})
	healthController.InitHealthRoutes()
	return e
}

func TestLivenessEndpoint(t *testing.T) {
	e := setupHealthAPI(model.HealthResponse{Status: model.StatusUp})

	rec := doRequest(e, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.LivenessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want %q", resp.Status, "healthy")
	}
	if resp.Version != "1.0.1" {
		t.Errorf("version = %q, want %q", resp.Version, "1.0.1")
	}
	if resp.Message == "" {
		t.Error("expected a message")
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := setupHealthAPI(model.HealthResponse{
		Status:   model.StatusUp,
		Database: model.ComponentHealthStatus{Status: model.StatusUp},
		Cache:    model.ComponentHealthStatus{Status: model.StatusUp},
		Queue:    model.ComponentHealthStatus{Status: model.StatusUnknown},
	})

	rec := doRequest(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != model.StatusUp {
		t.Errorf("status = %q, want %q", resp.Status, model.StatusUp)
	}
	if resp.Database.Status != model.StatusUp {
		t.Errorf("database status = %q, want %q", resp.Database.Status, model.StatusUp)
	}
}
