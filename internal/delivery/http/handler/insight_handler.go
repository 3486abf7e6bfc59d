package handler

import (
	"errors"

	"venturehive/internal/delivery/http/dto"
	"venturehive/internal/delivery/http/middleware"
	"venturehive/internal/pkg/response"
	"venturehive/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InsightHandler struct {
	uc usecase.InsightUsecase
}

type deckAnalysisRequest struct {
	DeckText string `json:"deck_text"`
}

func NewInsightHandler(uc usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

func (h *InsightHandler) RegisterFounder(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:projectID/insights/deck", h.AnalyzeDeck)
}

func (h *InsightHandler) RegisterPublic(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:projectID/insights/prediction", h.PredictSuccess)
}

func (h *InsightHandler) AnalyzeDeck(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	var req deckAnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	analysis, err := h.uc.AnalyzeDeck(c.Context(), currentUserID(c), projectID, req.DeckText)
	if err != nil {
		if errors.Is(err, usecase.ErrConflict) {
			return middleware.NewAppError(fiber.StatusConflict, "Deck analysis is not configured", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDeckAnalysisResponse(analysis))
}

func (h *InsightHandler) PredictSuccess(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	forecast, err := h.uc.PredictSuccess(c.Context(), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewForecastResponse(forecast))
}
