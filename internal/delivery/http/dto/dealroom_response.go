package dto

import (
	"time"

	"venturehive/internal/domain/dealroom"

	"github.com/google/uuid"
)

type DealTermsResponse struct {
	Amount        float64 `json:"amount"`
	EquityPercent float64 `json:"equity_percent"`
	FundingType   string  `json:"funding_type"`
	Notes         string  `json:"notes"`
}

type DealRoomResponse struct {
	ID         uuid.UUID         `json:"id"`
	ProjectID  uuid.UUID         `json:"project_id"`
	FounderID  uuid.UUID         `json:"founder_id"`
	InvestorID uuid.UUID         `json:"investor_id"`
	Status     string            `json:"status"`
	Terms      DealTermsResponse `json:"terms"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func NewDealRoomResponse(r dealroom.Room) DealRoomResponse {
	return DealRoomResponse{
		ID:         r.ID,
		ProjectID:  r.ProjectID,
		FounderID:  r.FounderID,
		InvestorID: r.InvestorID,
		Status:     r.Status,
		Terms: DealTermsResponse{
			Amount:        r.Terms.Amount,
			EquityPercent: r.Terms.EquityPercent,
			FundingType:   r.Terms.FundingType,
			Notes:         r.Terms.Notes,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func NewDealRoomListResponse(items []dealroom.Room) []DealRoomResponse {
	out := make([]DealRoomResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewDealRoomResponse(r))
	}
	return out
}
