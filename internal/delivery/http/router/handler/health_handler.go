package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storerate/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports process liveness and database reachability.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Root is the liveness payload served at GET /.
func (h *HealthHandler) Root(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Store Rating API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Health probes the database and reports its reachability.
func (h *HealthHandler) Health(c echo.Context) error {
	database := "Connected"

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Request().Context()) != nil {
		h.logger.Warn("Health check failed to reach database")
		database = "Disconnected"
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"status":    "OK",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
