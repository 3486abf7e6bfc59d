package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type DeckAnalysis struct {
	ClarityScore float64  `json:"clarityScore"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Summary      string   `json:"summary"`
}

// DeckAnalyzer produces a structured critique of pitch deck text.
type DeckAnalyzer struct {
	generator contentGenerator
	logger    *zap.Logger
}

func NewDeckAnalyzer(generator contentGenerator, logger *zap.Logger) *DeckAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeckAnalyzer{generator: generator, logger: logger}
}

const deckPrompt = `You review startup pitch decks for a venture marketplace.
Analyze the deck text below and return a strict JSON object, no markdown, with
exactly these fields:
- "clarityScore": number between 0 and 100.
- "strengths": array of 2 to 5 short strings.
- "weaknesses": array of 2 to 5 short strings.
- "summary": one short paragraph.

Deck text:
%s

JSON Response:`

func (a *DeckAnalyzer) Analyze(ctx context.Context, deckText string) (DeckAnalysis, error) {
	if a == nil || a.generator == nil {
		return DeckAnalysis{}, fmt.Errorf("deck analyzer generator is not configured")
	}
	deckText = strings.TrimSpace(deckText)
	if deckText == "" {
		return DeckAnalysis{}, fmt.Errorf("deck text must not be empty")
	}

	raw, err := a.generator.GenerateContent(ctx, fmt.Sprintf(deckPrompt, deckText))
	if err != nil {
		return DeckAnalysis{}, err
	}

	var out DeckAnalysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &out); err != nil {
		return DeckAnalysis{}, fmt.Errorf("parse deck analysis: %w", err)
	}
	if out.ClarityScore < 0 || out.ClarityScore > 100 {
		return DeckAnalysis{}, fmt.Errorf("deck clarity score %v out of range", out.ClarityScore)
	}
	if len(out.Strengths) == 0 || len(out.Weaknesses) == 0 || strings.TrimSpace(out.Summary) == "" {
		return DeckAnalysis{}, fmt.Errorf("deck analysis response incomplete")
	}

	a.logger.Debug("deck analysis completed", zap.Float64("clarity_score", out.ClarityScore))
	return out, nil
}
