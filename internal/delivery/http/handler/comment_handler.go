package handler

import (
	"venturehive/internal/delivery/http/dto"
	"venturehive/internal/pkg/response"
	"venturehive/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CommentHandler struct {
	uc usecase.CommentUsecase
}

type commentRequest struct {
	Body string `json:"body"`
}

func NewCommentHandler(uc usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

func (h *CommentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:projectID/comments", h.Add)
	r.Get("/:projectID/comments", h.List)
	r.Delete("/comments/:commentID", h.Delete)
}

func (h *CommentHandler) Add(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	comment, err := h.uc.Add(c.Context(), currentUserID(c), projectID, req.Body)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewCommentResponse(comment))
}

func (h *CommentHandler) List(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	limit := fiber.Query(c, "limit", defaultListLimit)
	offset := fiber.Query(c, "offset", 0)

	items, err := h.uc.List(c.Context(), projectID, limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK,
		dto.NewCommentListResponse(items),
		response.Meta{Limit: limit, Offset: offset, Count: len(items)},
	)
}

func (h *CommentHandler) Delete(c fiber.Ctx) error {
	commentID, err := pathUUID(c, "commentID")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), currentUserID(c), commentID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
