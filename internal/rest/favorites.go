package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"societyBackend/domain"
	"societyBackend/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	FavoriteHandler struct {
		validate        *validator.Validate
		favoriteService FavoriteService
		timeout         time.Duration
	}

	FavoriteService interface {
		List(ctx context.Context, hirerID domain.UserID) ([]domain.Favorite, error)
		Add(ctx context.Context, hirerID domain.UserID, companionRef uint) (domain.Favorite, error)
		Remove(ctx context.Context, hirerID domain.UserID, companionRef uint) error
	}

	AddFavoriteRequest struct {
		CompanionID uint `json:"companion_id" validate:"required"`
	}
)

func NewFavoriteHandler(svc FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		validate:        validator.New(),
		favoriteService: svc,
		timeout:         10 * time.Second,
	}
}

func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	favorites, err := h.favoriteService.List(ctx, userID)
	if err != nil {
		logger.Error("Failed to list favorites", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "request failed"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(favorites))
}

func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	fav, err := h.favoriteService.Add(ctx, userID, req.CompanionID)
	if err != nil {
		logger.Error("Failed to add favorite", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(fav))
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	companionRef, err := strconv.ParseUint(c.Param("companionId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid companion id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.favoriteService.Remove(ctx, userID, uint(companionRef)); err != nil {
		logger.Error("Failed to remove favorite", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("favorite removed"))
}
