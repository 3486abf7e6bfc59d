package handler

import (
	"venturehive/internal/delivery/http/dto"
	"venturehive/internal/domain/matching"
	"venturehive/internal/pkg/response"
	"venturehive/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InvestorHandler struct {
	uc usecase.InvestorUsecase
}

type investorProfileRequest struct {
	PreferredSectors   []string `json:"preferred_sectors"`
	InvestmentStages   []string `json:"investment_stages"`
	PreferredLocations []string `json:"preferred_locations"`
	TicketSizeMin      float64  `json:"ticket_size_min"`
	TicketSizeMax      float64  `json:"ticket_size_max"`
	FundingModels      []string `json:"funding_models"`
	ESGFocus           bool     `json:"esg_focus"`
}

func NewInvestorHandler(uc usecase.InvestorUsecase) *InvestorHandler {
	return &InvestorHandler{uc: uc}
}

func (h *InvestorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me/profile", h.GetProfile)
	r.Put("/me/profile", h.UpdateProfile)
}

func (h *InvestorHandler) GetProfile(c fiber.Ctx) error {
	p, err := h.uc.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewInvestorProfileResponse(p))
}

func (h *InvestorHandler) UpdateProfile(c fiber.Ctx) error {
	var req investorProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	p, err := h.uc.UpdateProfile(c.Context(), currentUserID(c), matching.InvestorProfile{
		PreferredSectors:   req.PreferredSectors,
		InvestmentStages:   req.InvestmentStages,
		PreferredLocations: req.PreferredLocations,
		TicketSizeMin:      req.TicketSizeMin,
		TicketSizeMax:      req.TicketSizeMax,
		FundingModels:      req.FundingModels,
		ESGFocus:           req.ESGFocus,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewInvestorProfileResponse(p))
}
