package dto

import (
	"venturehive/internal/ai/gemini"
	"venturehive/internal/domain/prediction"
)

type DeckAnalysisResponse struct {
	ClarityScore float64  `json:"clarity_score"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Summary      string   `json:"summary"`
}

func NewDeckAnalysisResponse(a gemini.DeckAnalysis) DeckAnalysisResponse {
	return DeckAnalysisResponse{
		ClarityScore: a.ClarityScore,
		Strengths:    a.Strengths,
		Weaknesses:   a.Weaknesses,
		Summary:      a.Summary,
	}
}

type ForecastResponse struct {
	Score   float64  `json:"score"`
	Outlook string   `json:"outlook"`
	Drivers []string `json:"drivers"`
}

func NewForecastResponse(f prediction.Forecast) ForecastResponse {
	return ForecastResponse{Score: f.Score, Outlook: f.Outlook, Drivers: f.Drivers}
}
