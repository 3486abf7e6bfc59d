package matching

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Recommendation strength tiers derived from the final score.
const (
	StrengthStrong = "strong"
	StrengthMedium = "medium"
	StrengthWeak   = "weak"
)

const (
	strongThreshold = 70
	mediumThreshold = 40
)

const defaultOracleTimeout = 5 * time.Second

type Result struct {
	Score       float64
	Reasons     []string
	Strength    string
	Explanation string
}

// ScoringOracle refines a rule-based result. Implementations return an error
// for any failure (transport, timeout, malformed response); the scorer treats
// every error as a signal to fall back to the baseline.
type ScoringOracle interface {
	Refine(ctx context.Context, startup StartupProfile, investor InvestorProfile, baseline Result) (Result, error)
}

type Scorer struct {
	oracle  ScoringOracle
	timeout time.Duration
	logger  *zap.Logger
}

// NewScorer builds a scorer. A nil oracle disables refinement and keeps the
// rule-based path only.
func NewScorer(oracle ScoringOracle, timeout time.Duration, logger *zap.Logger) *Scorer {
	if timeout <= 0 {
		timeout = defaultOracleTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{oracle: oracle, timeout: timeout, logger: logger}
}

// Score computes the match result for one startup/investor pair. Input
// validation failures are the only errors surfaced to the caller; oracle
// failures are absorbed and the rule-based baseline is returned instead.
func (s *Scorer) Score(ctx context.Context, startup StartupProfile, investor InvestorProfile) (Result, error) {
	if err := startup.Validate(); err != nil {
		return Result{}, err
	}
	if err := investor.Validate(); err != nil {
		return Result{}, err
	}

	base := Baseline(startup, investor)
	if s == nil || s.oracle == nil {
		return base, nil
	}

	octx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	refined, err := s.oracle.Refine(octx, startup, investor, base)
	if err != nil {
		s.logger.Debug("scoring oracle unavailable, using rule-based result",
			zap.String("startup_id", startup.ID.String()),
			zap.String("investor_id", investor.ID.String()),
			zap.Error(err),
		)
		return base, nil
	}

	refined.Score = clampScore(refined.Score)
	refined.Strength = StrengthForScore(refined.Score)
	return refined, nil
}

// Baseline evaluates the fixed weighted predicates in order. Each predicate
// fires at most once, so the total stays within [0, 100]; the clamp only
// matters if the weight table changes.
func Baseline(startup StartupProfile, investor InvestorProfile) Result {
	score := 0.0
	reasons := make([]string, 0, 6)

	if containsFold(investor.InvestmentStages, startup.Stage) {
		score += 20
		reasons = append(reasons, fmt.Sprintf("Investor focuses on %s stage companies", startup.Stage))
	}
	if containsFold(investor.PreferredSectors, startup.Sector) {
		score += 25
		reasons = append(reasons, fmt.Sprintf("Investor specializes in the %s sector", startup.Sector))
	}
	if containsFold(investor.PreferredLocations, startup.Location) {
		score += 10
		reasons = append(reasons, fmt.Sprintf("Investor prefers startups in %s", startup.Location))
	}
	if startup.FundingAmount >= investor.TicketSizeMin && startup.FundingAmount <= investor.TicketSizeMax {
		score += 15
		reasons = append(reasons, "Funding amount matches investor's ticket size range")
	}
	if containsFold(investor.FundingModels, startup.FundingType) {
		score += 15
		reasons = append(reasons, fmt.Sprintf("Investor supports %s funding model", startup.FundingType))
	}
	if investor.ESGFocus && startup.ESGImpact == ESGHigh {
		score += 15
		reasons = append(reasons, "Startup's high ESG impact aligns with investor's focus on impact investments")
	}

	score = clampScore(score)
	return Result{
		Score:       score,
		Reasons:     reasons,
		Strength:    StrengthForScore(score),
		Explanation: strings.Join(reasons, " "),
	}
}

func StrengthForScore(score float64) string {
	switch {
	case score >= strongThreshold:
		return StrengthStrong
	case score >= mediumThreshold:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
