package handler

import (
	"venturehive/internal/delivery/http/dto"
	"venturehive/internal/pkg/response"
	"venturehive/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SubscriptionHandler struct {
	uc usecase.SubscriptionUsecase
}

type subscribeRequest struct {
	Plan string `json:"plan"`
}

func NewSubscriptionHandler(uc usecase.SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

func (h *SubscriptionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Current)
	r.Post("/", h.Subscribe)
	r.Delete("/", h.Cancel)
}

func (h *SubscriptionHandler) Subscribe(c fiber.Ctx) error {
	var req subscribeRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	sub, err := h.uc.Subscribe(c.Context(), currentUserID(c), req.Plan)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSubscriptionResponse(sub))
}

func (h *SubscriptionHandler) Cancel(c fiber.Ctx) error {
	sub, err := h.uc.Cancel(c.Context(), currentUserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSubscriptionResponse(sub))
}

func (h *SubscriptionHandler) Current(c fiber.Ctx) error {
	sub, err := h.uc.Current(c.Context(), currentUserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSubscriptionResponse(sub))
}
