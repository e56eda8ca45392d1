package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"auth-api/internal/application/middleware"
	"auth-api/internal/domain/model"
	"auth-api/internal/domain/usecase/auth"
	"auth-api/pkg/msg"
)

type AuthController struct {
	api            *echo.Group
	useCase        auth.UseCase
	authMiddleware echo.MiddlewareFunc
	rateLimiter    echo.MiddlewareFunc
}

func NewAuthController(api *echo.Group, useCase auth.UseCase,
	authMiddleware echo.MiddlewareFunc, rateLimiter echo.MiddlewareFunc) *AuthController {
	return &AuthController{
		api:            api,
		useCase:        useCase,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
	}
}

// InitAuthRoutes initializes authentication routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/auth/login", controller.Login, controller.rateLimiter)
	controller.api.POST("/auth/refresh", controller.Refresh)
	controller.api.POST("/auth/logout", controller.Logout)
	controller.api.GET("/auth/me", controller.CurrentUser, controller.authMiddleware)
}

// Login godoc
// @Summary Authenticate user
// @Description Exchange username and password for an access token and a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginDTO true "User credentials"
// @Success 200 {object} model.TokenResponse "Issued tokens"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 429 {object} map[string]string "Too many login attempts"
// @Router /auth/login [post]
func (controller *AuthController) Login(c echo.Context) error {
	var dto model.LoginDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.error.invalid-body")})
	}

	tokens, err := controller.useCase.Login(dto)
	if err != nil {
		return controller.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchange a valid refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body model.RefreshDTO true "Refresh token"
// @Success 200 {object} model.TokenResponse "New access token"
// @Failure 401 {object} map[string]string "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (controller *AuthController) Refresh(c echo.Context) error {
	var dto model.RefreshDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.error.invalid-body")})
	}

	tokens, err := controller.useCase.Refresh(dto)
	if err != nil {
		return controller.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// Logout godoc
// @Summary Revoke refresh token
// @Description Revoke a refresh token so it can no longer be exchanged for access tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param token body model.RefreshDTO true "Refresh token"
// @Success 200 {object} map[string]string "Logout confirmation"
// @Failure 401 {object} map[string]string "Missing refresh token"
// @Router /auth/logout [post]
func (controller *AuthController) Logout(c echo.Context) error {
	var dto model.RefreshDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.error.invalid-body")})
	}

	if err := controller.useCase.Logout(dto); err != nil {
		return controller.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": msg.GetMessage("auth.logged-out")})
}

// CurrentUser godoc
// @Summary Get authenticated user
// @Description Return the user identified by the Bearer access token
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.User "Authenticated user"
// @Failure 401 {object} map[string]string "Missing or invalid access token"
// @Failure 404 {object} map[string]string "User not found"
// @Router /auth/me [get]
func (controller *AuthController) CurrentUser(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextUserID).(string)

	userData, err := controller.useCase.CurrentUser(userID)
	if err != nil {
		return controller.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, userData)
}

func (controller *AuthController) errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidRefreshToken):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, auth.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
