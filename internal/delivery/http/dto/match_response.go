package dto

import (
	"venturehive/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchResultResponse struct {
	Score       float64  `json:"score"`
	Reasons     []string `json:"reasons"`
	Strength    string   `json:"recommendation_strength"`
	Explanation string   `json:"explanation"`
}

func NewMatchResultResponse(r matching.Result) MatchResultResponse {
	return MatchResultResponse{
		Score:       r.Score,
		Reasons:     r.Reasons,
		Strength:    r.Strength,
		Explanation: r.Explanation,
	}
}

type RankedMatchResponse struct {
	Investor InvestorProfileResponse `json:"investor"`
	Match    MatchResultResponse     `json:"match"`
}

func NewRankedMatchListResponse(items []matching.RankedMatch) []RankedMatchResponse {
	out := make([]RankedMatchResponse, 0, len(items))
	for _, rm := range items {
		out = append(out, RankedMatchResponse{
			Investor: NewInvestorProfileResponse(rm.Investor),
			Match:    NewMatchResultResponse(rm.Result),
		})
	}
	return out
}

type StoredMatchResponse struct {
	ProjectID  uuid.UUID           `json:"project_id"`
	InvestorID uuid.UUID           `json:"investor_id"`
	Match      MatchResultResponse `json:"match"`
}
