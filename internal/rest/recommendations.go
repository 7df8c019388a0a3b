package rest

import (
	"context"
	"net/http"
	"time"

	"societyBackend/domain"
	"societyBackend/pkg/logger"
	"societyBackend/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate              *validator.Validate
		recommendationService RecommendationService
		timeout               time.Duration
	}

	RecommendationService interface {
		GetForYou(ctx context.Context, userID domain.UserID, limit, offset int) (domain.ForYouResult, error)
		GetTeaser(ctx context.Context, userID domain.UserID, limit int) ([]domain.ScoredCompanion, error)
		TrackInteraction(ctx context.Context, userID domain.UserID, input domain.InteractionInput) error
		Refresh(ctx context.Context, userID domain.UserID) error
	}

	ForYouQuery struct {
		Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
		Offset int `query:"offset" validate:"omitempty,min=0"`
	}

	TeaserQuery struct {
		Limit int `query:"limit" validate:"omitempty,min=1,max=20"`
	}

	TrackInteractionRequest struct {
		CompanionID uint           `json:"companion_id" validate:"required"`
		EventType   string         `json:"event_type" validate:"required"`
		DwellTimeMs *int           `json:"dwell_time_ms,omitempty"`
		SessionID   string         `json:"session_id,omitempty"`
		Context     map[string]any `json:"context,omitempty"`
	}
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:              validator.New(),
		recommendationService: svc,
		timeout:               10 * time.Second,
	}
}

func (h *RecommendationHandler) ForYou(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q ForYouQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	result, err := h.recommendationService.GetForYou(ctx, userID, q.Limit, q.Offset)
	if err != nil {
		logger.Error("Failed to get recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "request failed"})
	}

	metrics.RecommendForYouRequests.Inc()
	metrics.RecommendForYouLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *RecommendationHandler) Teaser(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q TeaserQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	companions, err := h.recommendationService.GetTeaser(ctx, userID, q.Limit)
	if err != nil {
		logger.Error("Failed to get teaser recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "request failed"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]any{
		"companions": companions,
	}))
}

// TrackInteraction is fire-and-forget from the client's perspective: the
// response is always success; failures are logged server-side only.
func (h *RecommendationHandler) TrackInteraction(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req TrackInteractionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	input := domain.InteractionInput{
		CompanionRef: req.CompanionID,
		EventType:    domain.EventType(req.EventType),
		DwellTimeMs:  req.DwellTimeMs,
		SessionID:    req.SessionID,
		Context:      req.Context,
	}

	if err := h.recommendationService.TrackInteraction(ctx, userID, input); err != nil {
		logger.Error("Failed to track interaction", err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]any{
		"success": true,
	}))
}

func (h *RecommendationHandler) Refresh(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.recommendationService.Refresh(ctx, userID); err != nil {
		logger.Error("Failed to refresh recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "request failed"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]any{
		"success": true,
	}))
}

func currentUserID(c echo.Context) (domain.UserID, bool) {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return 0, false
	}
	return domain.UserID(userID), true
}
