package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storerate/internal/delivery/http/middleware"
	"storerate/internal/delivery/http/response"
	domainerrors "storerate/internal/domain/errors"
	"storerate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store browsing and rating handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// ratingInput is the body of a rating submission.
type ratingInput struct {
	Rating int `json:"rating"`
}

// ListStores handles the filtered, sorted store listing.
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.uc.ListStores(c.Request().Context(), &usecase.StoreListInput{
		Name:      c.QueryParam("name"),
		Address:   c.QueryParam("address"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{"stores": stores})
}

// ListStoresWithViewerRating lists stores including the caller's own rating on each.
func (h *StoreHandler) ListStoresWithViewerRating(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("store listing without authenticated user")
	}

	stores, err := h.uc.ListStoresWithViewerRating(c.Request().Context(), user.ID, &usecase.StoreListInput{
		Name:    c.QueryParam("name"),
		Address: c.QueryParam("address"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{"stores": stores})
}

// SubmitRating handles a rating submission for a store.
func (h *StoreHandler) SubmitRating(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("rating without authenticated user")
	}

	storeID, err := strconv.ParseUint(c.Param("storeId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid store id")
	}

	var input ratingInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid rating input")
	}

	if err := h.uc.SubmitRating(c.Request().Context(), user.ID, storeID, input.Rating); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Rating submitted successfully")
}

// ListStoreRatings lists a store's ratings with rater identities.
func (h *StoreHandler) ListStoreRatings(c echo.Context) error {
	storeID, err := strconv.ParseUint(c.Param("storeId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid store id")
	}

	ratings, err := h.uc.ListStoreRatings(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{"ratings": ratings})
}
