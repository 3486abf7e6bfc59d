package handler

import (
	"context"

	"venturehive/internal/delivery/http/dto"
	"venturehive/internal/pkg/response"
	"venturehive/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type EngagementHandler struct {
	uc usecase.EngagementUsecase
}

func NewEngagementHandler(uc usecase.EngagementUsecase) *EngagementHandler {
	return &EngagementHandler{uc: uc}
}

func (h *EngagementHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:projectID/view", h.RecordView)
	r.Post("/:projectID/like", h.ToggleLike)
	r.Post("/:projectID/save", h.ToggleSave)
	r.Get("/:projectID/engagement", h.Get)
}

func (h *EngagementHandler) RecordView(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	if err := h.uc.RecordView(c.Context(), currentUserID(c), projectID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *EngagementHandler) ToggleLike(c fiber.Ctx) error {
	return h.toggle(c, h.uc.ToggleLike, "liked")
}

func (h *EngagementHandler) ToggleSave(c fiber.Ctx) error {
	return h.toggle(c, h.uc.ToggleSave, "saved")
}

func (h *EngagementHandler) Get(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	eng, err := h.uc.Get(c.Context(), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEngagementResponse(eng))
}

func (h *EngagementHandler) toggle(c fiber.Ctx, fn func(ctx context.Context, userID, projectID uuid.UUID) (bool, error), field string) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	active, err := fn(c.Context(), currentUserID(c), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{field: active})
}
