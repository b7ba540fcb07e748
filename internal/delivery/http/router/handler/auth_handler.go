// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"storerate/internal/delivery/http/middleware"
	"storerate/internal/delivery/http/response"
	domainerrors "storerate/internal/domain/errors"
	"storerate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for registration, login and profile handlers.
type AuthHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid registration input")
	}

	// Validation runs before the usecase touches persistence and reports
	// every violation together. An empty body fails the same way as a
	// body with every field missing.
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"token":   output.Token,
		"user":    output.User,
	})
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   output.Token,
		"user":    output.User,
	})
}

// GetProfile handles the request to get the current user's profile.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("profile requested without authenticated user")
	}

	return response.JSON(c, http.StatusOK, map[string]any{"user": user})
}

// UpdatePassword handles the password change request.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("password update without authenticated user")
	}

	var input usecase.UpdatePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid password input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdatePassword(c.Request().Context(), user.ID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Password updated successfully")
}
