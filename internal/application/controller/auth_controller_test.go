package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"auth-api/internal/application/controller"
	"auth-api/internal/application/middleware"
	"auth-api/internal/domain/entity"
	"auth-api/internal/domain/model"
	"auth-api/internal/domain/usecase/auth"
	"auth-api/pkg/msg"
	"auth-api/pkg/token"
)

type stubAuthUseCase struct {
	manager *token.Manager
	user    *entity.User
	revoked []string
}

func (s *stubAuthUseCase) Login(dto model.LoginDTO) (*model.TokenResponse, error) {
	if dto.Username != s.user.Username || dto.Password != "s3cret-pass" {
		return nil, auth.ErrInvalidCredentials
	}
	signed, expiresAt, err := s.manager.GenerateToken(s.user.ID, s.user.Username)
	if err != nil {
		return nil, err
	}
	return &model.TokenResponse{
		Token:        signed,
		RefreshToken: "refresh-1",
		ExpiresAt:    expiresAt,
		User:         s.user,
	}, nil
}

func (s *stubAuthUseCase) Refresh(dto model.RefreshDTO) (*model.TokenResponse, error) {
	if dto.RefreshToken != "refresh-1" {
		return nil, auth.ErrInvalidRefreshToken
	}
	signed, expiresAt, err := s.manager.GenerateToken(s.user.ID, s.user.Username)
	if err != nil {
		return nil, err
	}
	return &model.TokenResponse{Token: signed, ExpiresAt: expiresAt}, nil
}

func (s *stubAuthUseCase) Logout(dto model.RefreshDTO) error {
	if dto.RefreshToken == "" {
		return auth.ErrInvalidRefreshToken
	}
	s.revoked = append(s.revoked, dto.RefreshToken)
	return nil
}

func (s *stubAuthUseCase) CurrentUser(userID string) (*entity.User, error) {
	if userID != s.user.ID {
		return nil, auth.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubAuthUseCase) PurgeExpiredTokens() (int64, error) {
	return 0, nil
}

func setupAuthAPI() (*echo.Echo, *token.Manager, *stubAuthUseCase) {
	e := echo.New()
	manager := token.NewManager("test-secret", "auth-api-test", 15*time.Minute)
	useCase := &stubAuthUseCase{
		manager: manager,
		user:    &entity.User{ID: "user-1", Username: "jdoe", Email: "jdoe@example.com"},
	}

	passthrough := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	authController := controller.NewAuthController(e.Group(""), useCase,
		middleware.RequireAuth(manager), passthrough)
	authController.InitAuthRoutes()
	return e, manager, useCase
}

func doRequestWithAuth(e *echo.Echo, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	e, manager, _ := setupAuthAPI()

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"username":"jdoe","password":"s3cret-pass"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp model.TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, err := manager.ValidateToken(resp.Token); err != nil {
		t.Errorf("returned access token failed validation: %v", err)
	}
	if resp.RefreshToken == "" {
		t.Error("expected a refresh token")
	}
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	e, _, _ := setupAuthAPI()

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"username":"jdoe","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	e, _, _ := setupAuthAPI()

	rec := doRequest(e, http.MethodPost, "/auth/refresh", `{"refreshToken":"refresh-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = doRequest(e, http.MethodPost, "/auth/refresh", `{"refreshToken":"bogus"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestLogoutEndpoint(t *testing.T) {
	e, _, useCase := setupAuthAPI()

	rec := doRequest(e, http.MethodPost, "/auth/logout", `{"refreshToken":"refresh-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if len(useCase.revoked) != 1 || useCase.revoked[0] != "refresh-1" {
		t.Errorf("expected refresh-1 revoked, got %v", useCase.revoked)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["message"] == "" {
		t.Error("expected a confirmation message")
	}

	rec = doRequest(e, http.MethodPost, "/auth/logout", `{}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthEndpointsRejectMalformedBody(t *testing.T) {
	e, _, _ := setupAuthAPI()

	paths := []string{"/auth/login", "/auth/refresh", "/auth/logout"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, path, `{"username":`)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp["error"] != msg.GetMessage("app.error.invalid-body") {
				t.Errorf("error = %q, want the catalog message", resp["error"])
			}
		})
	}
}

func TestCurrentUserEndpoint(t *testing.T) {
	e, manager, _ := setupAuthAPI()

	signed, _, err := manager.GenerateToken("user-1", "jdoe")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	req := doRequestWithAuth(e, http.MethodGet, "/auth/me", "Bearer "+signed)
	if req.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", req.Code, http.StatusOK, req.Body.String())
	}

	var resp entity.User
	if err := json.Unmarshal(req.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Username != "jdoe" {
		t.Errorf("username = %q, want %q", resp.Username, "jdoe")
	}
}

func TestCurrentUserEndpointUnauthorized(t *testing.T) {
	e, _, _ := setupAuthAPI()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Token abc"},
		{"invalid token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequestWithAuth(e, http.MethodGet, "/auth/me", tt.header)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}
