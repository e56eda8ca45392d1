package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"auth-api/internal/domain/model"
	"auth-api/internal/domain/usecase/user"
	"auth-api/pkg/msg"
	"auth-api/pkg/util/numberutils"
)

type UserController struct {
	api     *echo.Group
	useCase user.UseCase
}

func NewUserController(api *echo.Group, useCase user.UseCase) *UserController {
	return &UserController{api: api, useCase: useCase}
}

// InitUserRoutes initializes user routes
func (controller *UserController) InitUserRoutes() {
	controller.api.GET("/users", controller.FindAll)
	controller.api.GET("/users/:id", controller.FindByID)
	controller.api.POST("/users", controller.Create)
	controller.api.PUT("/users/:id", controller.UpdateByID)
	controller.api.DELETE("/users/:id", controller.DeleteByID)
}

// FindAll godoc
// @Summary Get all users
// @Description Retrieve all users with pagination and optional username filtering
// @Tags users
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Param usernamePart query string false "Username fragment to filter by"
// @Success 200 {object} model.Page[entity.User] "Paginated list of users"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [get]
func (controller *UserController) FindAll(c echo.Context) error {
	var page int = numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	var size int = numberutils.ToIntInRange(c.QueryParam("size"), 10, 1, 100)
	var usernamePart string = c.QueryParam("usernamePart")

	if usernamePart != "" {
		result, err := controller.useCase.FindByUsernamePart(usernamePart, page, size)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, result)
	}

	result, err := controller.useCase.FindAll(page, size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}

// FindByID godoc
// @Summary Get user by id
// @Description Find a specific user by its id
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} entity.User "User data"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [get]
func (controller *UserController) FindByID(c echo.Context) error {
	id := c.Param("id")

	userData, err := controller.useCase.FindByID(id)
	if err != nil {
		return controller.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, userData)
}

// Create godoc
// @Summary Create user
// @Description Register a new user account
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.CreateUserDTO true "User data"
// @Success 201 {object} entity.User "Created user"
// @Failure 400 {object} map[string]string "Invalid request body, missing fields or duplicate username/email"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [post]
func (controller *UserController) Create(c echo.Context) error {
	var dto model.CreateUserDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.error.invalid-body")})
	}

	created, err := controller.useCase.Create(dto)
	if err != nil {
		return controller.errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateByID godoc
// @Summary Update user
// @Description Update an existing user by its id
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param user body model.UpdateUserDTO true "User data"
// @Success 200 {object} entity.User "Updated user"
// @Failure 400 {object} map[string]string "Invalid request body, missing fields or duplicate username/email"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [put]
func (controller *UserController) UpdateByID(c echo.Context) error {
	id := c.Param("id")

	var dto model.UpdateUserDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.error.invalid-body")})
	}

	updated, err := controller.useCase.UpdateByID(id, dto)
	if err != nil {
		return controller.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteByID godoc
// @Summary Delete user
// @Description Remove a user by its id
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} model.DeleteUserResponse "User deleted"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [delete]
func (controller *UserController) DeleteByID(c echo.Context) error {
	id := c.Param("id")

	if err := controller.useCase.DeleteByID(id); err != nil {
		return controller.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.DeleteUserResponse{Message: msg.GetMessage("user.deleted", id)})
}

func (controller *UserController) errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, user.ErrEmptyUsername),
		errors.Is(err, user.ErrEmptyPassword),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrExistentUsername),
		errors.Is(err, user.ErrExistentEmail),
		errors.Is(err, user.ErrBreachedPassword):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
