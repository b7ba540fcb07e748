package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storerate/internal/delivery/http/response"
	"storerate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the administrator-only handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateUser handles admin user creation with an explicit role.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid user input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	userID, err := h.uc.CreateUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"userId":  userID,
	})
}

// ListUsers handles the filtered, sorted user listing.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context(), &usecase.UserListInput{
		Name:      c.QueryParam("name"),
		Email:     c.QueryParam("email"),
		Role:      c.QueryParam("role"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{"users": users})
}

// GetStats returns the dashboard totals.
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.uc.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{"stats": stats})
}

// GetUserDetails returns one user, with owner rating when applicable.
func (h *AdminHandler) GetUserDetails(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	details, err := h.uc.GetUserDetails(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{"user": details})
}

// CreateStore handles admin store creation.
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var input usecase.CreateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid store input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	storeID, err := h.uc.CreateStore(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, map[string]any{
		"message": "Store created successfully",
		"storeId": storeID,
	})
}
