package handler

import (
	"venturehive/internal/delivery/http/dto"
	"venturehive/internal/pkg/response"
	"venturehive/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContactHandler struct {
	uc usecase.ContactUsecase
}

type contactRequestBody struct {
	Message string `json:"message"`
}

type contactRespondBody struct {
	Accept bool `json:"accept"`
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// RegisterInvestor wires the investor side: sending and tracking requests.
func (h *ContactHandler) RegisterInvestor(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/projects/:projectID/contact-requests", h.Request)
	r.Get("/contact-requests/mine", h.ListMine)
}

// RegisterFounder wires the founder side: reviewing and answering requests.
func (h *ContactHandler) RegisterFounder(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/projects/:projectID/contact-requests", h.ListForProject)
	r.Post("/contact-requests/:requestID/respond", h.Respond)
}

func (h *ContactHandler) Request(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	var req contactRequestBody
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	cr, err := h.uc.Request(c.Context(), currentUserID(c), projectID, req.Message)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewContactRequestResponse(cr))
}

func (h *ContactHandler) Respond(c fiber.Ctx) error {
	requestID, err := pathUUID(c, "requestID")
	if err != nil {
		return err
	}

	var req contactRespondBody
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	cr, err := h.uc.Respond(c.Context(), currentUserID(c), requestID, req.Accept)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactRequestResponse(cr))
}

func (h *ContactHandler) ListForProject(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	items, err := h.uc.ListForProject(c.Context(), currentUserID(c), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactRequestListResponse(items))
}

func (h *ContactHandler) ListMine(c fiber.Ctx) error {
	items, err := h.uc.ListMine(c.Context(), currentUserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactRequestListResponse(items))
}
