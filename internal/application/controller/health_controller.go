package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"auth-api/internal/domain/usecase/health"
)

type HealthController struct {
	e       *echo.Echo
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(e *echo.Echo, api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{e: e, api: api, useCase: useCase}
}

// InitHealthRoutes initializes liveness and health check routes. The
// liveness route is registered on the root echo instance so the container
// health check reaches it regardless of the configured context path.
func (controller *HealthController) InitHealthRoutes() {
	controller.e.GET("/", controller.Liveness())
	controller.api.GET("/health", controller.CheckHealth())
}

// Liveness godoc
// @Summary Liveness probe
// @Description Cheap liveness check used by the container health check
// @Tags health
// @Produce json
// @Success 200 {object} model.LivenessResponse "Service is running"
// @Router / [get]
func (controller *HealthController) Liveness() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, controller.useCase.Liveness())
	}
}

// CheckHealth godoc
// @Summary Component health check
// @Description Report the health of the database, cache and queue workers
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse "Component health report"
// @Router /health [get]
func (controller *HealthController) CheckHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, controller.useCase.CheckHealth())
	}
}
