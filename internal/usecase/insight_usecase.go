package usecase

import (
	"context"
	"errors"
	"strings"

	"venturehive/internal/ai/gemini"
	"venturehive/internal/domain/prediction"
	"venturehive/internal/repository"

	"github.com/google/uuid"
)

const maxDeckChars = 40000

// DeckAnalyzer abstracts the gemini pitch-deck reviewer so insights degrade
// cleanly when no API key is configured.
type DeckAnalyzer interface {
	Analyze(ctx context.Context, deckText string) (gemini.DeckAnalysis, error)
}

type InsightUsecase interface {
	AnalyzeDeck(ctx context.Context, founderID, projectID uuid.UUID, deckText string) (gemini.DeckAnalysis, error)
	PredictSuccess(ctx context.Context, projectID uuid.UUID) (prediction.Forecast, error)
}

type Insights struct {
	projects repository.ProjectRepository
	analyzer DeckAnalyzer
}

func NewInsightUsecase(projects repository.ProjectRepository, analyzer DeckAnalyzer) *Insights {
	return &Insights{projects: projects, analyzer: analyzer}
}

// AnalyzeDeck sends the founder's pitch deck text to the model. Founder-only:
// deck drafts are private until the founder decides what to publish.
func (i *Insights) AnalyzeDeck(ctx context.Context, founderID, projectID uuid.UUID, deckText string) (gemini.DeckAnalysis, error) {
	if founderID == uuid.Nil {
		return gemini.DeckAnalysis{}, ErrUnauthorized
	}
	deckText = strings.TrimSpace(deckText)
	if deckText == "" || len(deckText) > maxDeckChars {
		return gemini.DeckAnalysis{}, ErrInvalidInput
	}

	proj, err := i.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return gemini.DeckAnalysis{}, ErrNotFound
		}
		return gemini.DeckAnalysis{}, ErrInternal
	}
	if proj.FounderID != founderID {
		return gemini.DeckAnalysis{}, ErrForbidden
	}

	if i.analyzer == nil {
		return gemini.DeckAnalysis{}, ErrConflict
	}
	analysis, err := i.analyzer.Analyze(ctx, deckText)
	if err != nil {
		return gemini.DeckAnalysis{}, ErrInternal
	}
	return analysis, nil
}

func (i *Insights) PredictSuccess(ctx context.Context, projectID uuid.UUID) (prediction.Forecast, error) {
	proj, err := i.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return prediction.Forecast{}, ErrNotFound
		}
		return prediction.Forecast{}, ErrInternal
	}

	return prediction.Predict(prediction.Signals{
		Users:         proj.TractionUsers,
		Revenue:       proj.Revenue,
		GrowthPercent: proj.GrowthPercent,
		TeamSize:      proj.TeamSize,
		FundingAmount: proj.FundingAmount,
	}), nil
}
