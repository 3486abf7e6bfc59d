package integration

import (
	"context"
	"reflect"
	"testing"
	"time"

	"venturehive/internal/ai/gemini"
	"venturehive/internal/domain/matching"

	"github.com/google/uuid"
)

type scriptedGenerator struct {
	response string
	err      error
	calls    int
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func alignedPair() (matching.StartupProfile, matching.InvestorProfile) {
	startup := matching.StartupProfile{
		ID:            uuid.New(),
		Sector:        "fintech",
		Stage:         "seed",
		Location:      "Lagos",
		FundingAmount: 50000,
		FundingType:   "equity",
		ESGImpact:     matching.ESGHigh,
	}
	investor := matching.InvestorProfile{
		ID:                 uuid.New(),
		PreferredSectors:   []string{"Fintech"},
		InvestmentStages:   []string{"Seed"},
		PreferredLocations: []string{"lagos"},
		TicketSizeMin:      10000,
		TicketSizeMax:      100000,
		FundingModels:      []string{"Equity"},
		ESGFocus:           true,
	}
	return startup, investor
}

// The whole scoring chain: oracle prompt, strict-JSON parse, score adoption
// and strength recomputation from the adopted score.
func TestScoringChainWithOracleRefinement(t *testing.T) {
	gen := &scriptedGenerator{response: `{
		"score": 62,
		"reasons": ["sector alignment", "stage alignment", "ticket size fits"],
		"recommendationStrength": "strong",
		"explanation": "Solid overlap across the fundamentals."
	}`}
	oracle := gemini.NewOracle(gen, nil, 0)
	scorer := matching.NewScorer(oracle, 2*time.Second, nil)

	startup, investor := alignedPair()
	res, err := scorer.Score(context.Background(), startup, investor)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	if gen.calls != 1 {
		t.Fatalf("generator calls = %d, want 1", gen.calls)
	}
	if res.Score != 62 {
		t.Fatalf("Score = %v, want oracle's 62", res.Score)
	}
	if res.Strength != matching.StrengthMedium {
		t.Fatalf("Strength = %q, want %q recomputed from adopted score", res.Strength, matching.StrengthMedium)
	}
	if len(res.Reasons) != 3 {
		t.Fatalf("Reasons = %v, want the oracle's 3", res.Reasons)
	}
	if res.Explanation != "Solid overlap across the fundamentals." {
		t.Fatalf("Explanation = %q", res.Explanation)
	}
}

func TestScoringChainFallsBackOnMalformedOracleOutput(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"not json", "the startup looks great"},
		{"too few reasons", `{"score": 80, "reasons": ["one"], "recommendationStrength": "strong", "explanation": "x"}`},
		{"score out of range", `{"score": 140, "reasons": ["a","b","c"], "recommendationStrength": "strong", "explanation": "x"}`},
		{"bad strength", `{"score": 80, "reasons": ["a","b","c"], "recommendationStrength": "amazing", "explanation": "x"}`},
	}

	startup, investor := alignedPair()
	baseline := matching.Baseline(startup, investor)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			oracle := gemini.NewOracle(&scriptedGenerator{response: tc.response}, nil, 0)
			scorer := matching.NewScorer(oracle, 2*time.Second, nil)

			res, err := scorer.Score(context.Background(), startup, investor)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if !reflect.DeepEqual(res, baseline) {
				t.Fatalf("result = %+v, want rule-based baseline %+v", res, baseline)
			}
		})
	}
}

func TestScoringChainValidatesBeforeCallingOracle(t *testing.T) {
	gen := &scriptedGenerator{response: `{}`}
	scorer := matching.NewScorer(gemini.NewOracle(gen, nil, 0), 2*time.Second, nil)

	startup, investor := alignedPair()
	investor.TicketSizeMin = 500000
	investor.TicketSizeMax = 100000

	if _, err := scorer.Score(context.Background(), startup, investor); err == nil {
		t.Fatal("expected validation error for inverted ticket range")
	}
	if gen.calls != 0 {
		t.Fatalf("generator calls = %d, want 0 for invalid input", gen.calls)
	}
}
