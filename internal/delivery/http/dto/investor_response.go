package dto

import (
	"venturehive/internal/domain/matching"

	"github.com/google/uuid"
)

type InvestorProfileResponse struct {
	UserID             uuid.UUID `json:"user_id"`
	PreferredSectors   []string  `json:"preferred_sectors"`
	InvestmentStages   []string  `json:"investment_stages"`
	PreferredLocations []string  `json:"preferred_locations"`
	TicketSizeMin      float64   `json:"ticket_size_min"`
	TicketSizeMax      float64   `json:"ticket_size_max"`
	FundingModels      []string  `json:"funding_models"`
	ESGFocus           bool      `json:"esg_focus"`
}

func NewInvestorProfileResponse(p matching.InvestorProfile) InvestorProfileResponse {
	return InvestorProfileResponse{
		UserID:             p.ID,
		PreferredSectors:   p.PreferredSectors,
		InvestmentStages:   p.InvestmentStages,
		PreferredLocations: p.PreferredLocations,
		TicketSizeMin:      p.TicketSizeMin,
		TicketSizeMax:      p.TicketSizeMax,
		FundingModels:      p.FundingModels,
		ESGFocus:           p.ESGFocus,
	}
}
