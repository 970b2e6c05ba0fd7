package handler

import (
	"context"
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/recommendation"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type Recommender interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]recommendation.MatchResult, error)
}

type RecommendationHandler struct {
	engine Recommender
}

func NewRecommendationHandler(engine Recommender) *RecommendationHandler {
	return &RecommendationHandler{engine: engine}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	results, err := h.engine.GetRecommendations(c.Context(), userID)
	if err != nil {
		return mapRecommendationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponses(results))
}

func mapRecommendationError(err error) error {
	switch {
	case errors.Is(err, recommendation.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, recommendation.ErrNoJobsAvailable):
		return middleware.NewAppError(fiber.StatusNotFound, "No jobs available", nil, err)
	default:
		cause := err
		var se *recommendation.ServerError
		if errors.As(err, &se) && se.Cause != nil {
			cause = se.Cause
		}
		return middleware.NewAppError(
			fiber.StatusInternalServerError,
			response.MessageInternalServerError,
			fiber.Map{"error": cause.Error()},
			err,
		)
	}
}
