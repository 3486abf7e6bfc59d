package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"venturehive/internal/domain/matching"

	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var scorePromptTemplate string

const defaultMaxLogLength = 200

const (
	minOracleReasons = 3
	maxOracleReasons = 5
)

// Oracle implements matching.ScoringOracle on top of a Gemini content
// generator. Any transport or validation failure surfaces as an error; the
// scorer owns the fallback decision.
type Oracle struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewOracle(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Oracle {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Oracle{generator: generator, logger: logger, maxLogLen: maxLogLength}
}

func (o *Oracle) Refine(ctx context.Context, startup matching.StartupProfile, investor matching.InvestorProfile, baseline matching.Result) (matching.Result, error) {
	if o == nil || o.generator == nil {
		return matching.Result{}, fmt.Errorf("oracle generator is not configured")
	}

	startupJSON, err := json.MarshalIndent(startupPayload(startup), "", "  ")
	if err != nil {
		return matching.Result{}, fmt.Errorf("marshal startup payload: %w", err)
	}
	investorJSON, err := json.MarshalIndent(investorPayload(investor), "", "  ")
	if err != nil {
		return matching.Result{}, fmt.Errorf("marshal investor payload: %w", err)
	}

	prompt := buildScorePrompt(string(startupJSON), string(investorJSON), baseline.Score)

	o.logger.Debug("oracle refine request",
		zap.String("startup_id", startup.ID.String()),
		zap.String("investor_id", investor.ID.String()),
		zap.Float64("base_score", baseline.Score),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", truncateForLog(prompt, o.maxLogLen)),
	)

	raw, err := o.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return matching.Result{}, err
	}

	o.logger.Debug("oracle refine response",
		zap.String("startup_id", startup.ID.String()),
		zap.String("investor_id", investor.ID.String()),
		zap.String("response_preview", truncateForLog(raw, o.maxLogLen)),
	)

	return parseScoreResponse(raw)
}

func buildScorePrompt(startupJSON, investorJSON string, baseScore float64) string {
	template := scorePromptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Startup:\n{{STARTUP_JSON}}\n\nInvestor:\n{{INVESTOR_JSON}}\n\nBaseline: {{BASE_SCORE}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{STARTUP_JSON}}", startupJSON)
	prompt = strings.ReplaceAll(prompt, "{{INVESTOR_JSON}}", investorJSON)
	prompt = strings.ReplaceAll(prompt, "{{BASE_SCORE}}", strconv.FormatFloat(baseScore, 'f', -1, 64))
	return prompt
}

func startupPayload(s matching.StartupProfile) map[string]any {
	return map[string]any{
		"id":            s.ID,
		"sector":        s.Sector,
		"stage":         s.Stage,
		"location":      s.Location,
		"fundingAmount": s.FundingAmount,
		"fundingType":   s.FundingType,
		"traction": map[string]any{
			"users":   s.Traction.Users,
			"revenue": s.Traction.Revenue,
			"growth":  s.Traction.Growth,
		},
		"team": map[string]any{
			"size":       s.Team.Size,
			"experience": s.Team.Experience,
		},
		"esgImpact": s.ESGImpact,
		"tags":      s.Tags,
	}
}

func investorPayload(i matching.InvestorProfile) map[string]any {
	return map[string]any{
		"id":                 i.ID,
		"preferredSectors":   i.PreferredSectors,
		"investmentStages":   i.InvestmentStages,
		"preferredLocations": i.PreferredLocations,
		"ticketSizeMin":      i.TicketSizeMin,
		"ticketSizeMax":      i.TicketSizeMax,
		"fundingModels":      i.FundingModels,
		"esgFocus":           i.ESGFocus,
	}
}

type scoreResponse struct {
	Score                  *float64 `json:"score"`
	Reasons                []string `json:"reasons"`
	RecommendationStrength string   `json:"recommendationStrength"`
	Explanation            string   `json:"explanation"`
}

// parseScoreResponse validates the loosely-typed model output into a strict
// result. Every field is required; any violation is an error so the caller
// falls back to the rule-based baseline.
func parseScoreResponse(raw string) (matching.Result, error) {
	cleaned := extractJSON(raw)

	var resp scoreResponse
	dec := json.NewDecoder(strings.NewReader(cleaned))
	if err := dec.Decode(&resp); err != nil {
		return matching.Result{}, fmt.Errorf("parse oracle response: %w", err)
	}

	if resp.Score == nil {
		return matching.Result{}, fmt.Errorf("oracle response missing score")
	}
	if *resp.Score < 0 || *resp.Score > 100 {
		return matching.Result{}, fmt.Errorf("oracle score %v out of range", *resp.Score)
	}
	if len(resp.Reasons) < minOracleReasons || len(resp.Reasons) > maxOracleReasons {
		return matching.Result{}, fmt.Errorf("oracle response has %d reasons, want %d-%d", len(resp.Reasons), minOracleReasons, maxOracleReasons)
	}
	for _, r := range resp.Reasons {
		if strings.TrimSpace(r) == "" {
			return matching.Result{}, fmt.Errorf("oracle response contains empty reason")
		}
	}
	switch resp.RecommendationStrength {
	case matching.StrengthStrong, matching.StrengthMedium, matching.StrengthWeak:
	default:
		return matching.Result{}, fmt.Errorf("oracle recommendation strength %q is not valid", resp.RecommendationStrength)
	}
	if strings.TrimSpace(resp.Explanation) == "" {
		return matching.Result{}, fmt.Errorf("oracle response missing explanation")
	}

	return matching.Result{
		Score:       *resp.Score,
		Reasons:     resp.Reasons,
		Strength:    resp.RecommendationStrength,
		Explanation: strings.TrimSpace(resp.Explanation),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func truncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
