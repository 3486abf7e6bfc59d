package handler

import (
	"venturehive/internal/delivery/http/dto"
	"venturehive/internal/domain/dealroom"
	"venturehive/internal/pkg/response"
	"venturehive/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type DealRoomHandler struct {
	uc usecase.DealRoomUsecase
}

type dealTermsRequest struct {
	Amount        float64 `json:"amount"`
	EquityPercent float64 `json:"equity_percent"`
	FundingType   string  `json:"funding_type"`
	Notes         string  `json:"notes"`
}

type openDealRoomRequest struct {
	ContactRequestID uuid.UUID        `json:"contact_request_id"`
	Terms            dealTermsRequest `json:"terms"`
}

type dealTransitionRequest struct {
	Status string `json:"status"`
}

func NewDealRoomHandler(uc usecase.DealRoomUsecase) *DealRoomHandler {
	return &DealRoomHandler{uc: uc}
}

func (h *DealRoomHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Open)
	r.Get("/mine", h.ListMine)
	r.Get("/:roomID", h.Get)
	r.Put("/:roomID/terms", h.UpdateTerms)
	r.Post("/:roomID/transition", h.Transition)
}

func (h *DealRoomHandler) Open(c fiber.Ctx) error {
	var req openDealRoomRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	room, err := h.uc.Open(c.Context(), currentUserID(c), req.ContactRequestID, termsFromRequest(req.Terms))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewDealRoomResponse(room))
}

func (h *DealRoomHandler) UpdateTerms(c fiber.Ctx) error {
	roomID, err := pathUUID(c, "roomID")
	if err != nil {
		return err
	}

	var req dealTermsRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	room, err := h.uc.UpdateTerms(c.Context(), currentUserID(c), roomID, termsFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDealRoomResponse(room))
}

func (h *DealRoomHandler) Transition(c fiber.Ctx) error {
	roomID, err := pathUUID(c, "roomID")
	if err != nil {
		return err
	}

	var req dealTransitionRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	room, err := h.uc.Transition(c.Context(), currentUserID(c), roomID, req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDealRoomResponse(room))
}

func (h *DealRoomHandler) Get(c fiber.Ctx) error {
	roomID, err := pathUUID(c, "roomID")
	if err != nil {
		return err
	}

	room, err := h.uc.Get(c.Context(), currentUserID(c), roomID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDealRoomResponse(room))
}

func (h *DealRoomHandler) ListMine(c fiber.Ctx) error {
	rooms, err := h.uc.ListMine(c.Context(), currentUserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDealRoomListResponse(rooms))
}

func termsFromRequest(req dealTermsRequest) dealroom.Terms {
	return dealroom.Terms{
		Amount:        req.Amount,
		EquityPercent: req.EquityPercent,
		FundingType:   req.FundingType,
		Notes:         req.Notes,
	}
}
