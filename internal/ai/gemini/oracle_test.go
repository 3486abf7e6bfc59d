package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"venturehive/internal/domain/matching"

	"github.com/google/uuid"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testProfiles() (matching.StartupProfile, matching.InvestorProfile) {
	return matching.StartupProfile{
			ID:     uuid.New(),
			Sector: "fintech", Stage: "seed", Location: "Lagos",
			FundingAmount: 50000, FundingType: "equity", ESGImpact: matching.ESGHigh,
		}, matching.InvestorProfile{
			ID:               uuid.New(),
			PreferredSectors: []string{"fintech"},
			TicketSizeMax:    100000,
		}
}

func TestOracleRefine(t *testing.T) {
	stub := &stubGenerator{response: `{"score": 82, "reasons": ["sector fit", "ticket fit", "regional fit"], "recommendationStrength": "strong", "explanation": "Great fit."}`}
	oracle := NewOracle(stub, nil, 0)

	startup, investor := testProfiles()
	baseline := matching.Baseline(startup, investor)

	res, err := oracle.Refine(context.Background(), startup, investor, baseline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 82 {
		t.Fatalf("expected score 82, got %v", res.Score)
	}
	if len(res.Reasons) != 3 {
		t.Fatalf("expected 3 reasons, got %d", len(res.Reasons))
	}
	if res.Explanation != "Great fit." {
		t.Fatalf("unexpected explanation: %q", res.Explanation)
	}

	if stub.lastPrompt == "" {
		t.Fatalf("expected prompt to be sent")
	}
	if !strings.Contains(stub.lastPrompt, "fintech") {
		t.Fatalf("prompt must embed the startup sector")
	}
	if !strings.Contains(stub.lastPrompt, "ticketSizeMax") {
		t.Fatalf("prompt must embed the investor profile")
	}
}

func TestOracleRefineFencedResponse(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"score\": 45, \"reasons\": [\"a\", \"b\", \"c\"], \"recommendationStrength\": \"medium\", \"explanation\": \"ok\"}\n```"}
	oracle := NewOracle(stub, nil, 0)

	startup, investor := testProfiles()
	res, err := oracle.Refine(context.Background(), startup, investor, matching.Result{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 45 {
		t.Fatalf("expected score 45, got %v", res.Score)
	}
}

func TestOracleRefineRejectsInvalidResponses(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"not json", "the startup looks promising"},
		{"missing score", `{"reasons": ["a", "b", "c"], "recommendationStrength": "weak", "explanation": "x"}`},
		{"score out of range", `{"score": 140, "reasons": ["a", "b", "c"], "recommendationStrength": "strong", "explanation": "x"}`},
		{"too few reasons", `{"score": 50, "reasons": ["a"], "recommendationStrength": "medium", "explanation": "x"}`},
		{"too many reasons", `{"score": 50, "reasons": ["a","b","c","d","e","f"], "recommendationStrength": "medium", "explanation": "x"}`},
		{"bad strength", `{"score": 50, "reasons": ["a", "b", "c"], "recommendationStrength": "excellent", "explanation": "x"}`},
		{"missing explanation", `{"score": 50, "reasons": ["a", "b", "c"], "recommendationStrength": "medium", "explanation": "  "}`},
	}

	startup, investor := testProfiles()
	for _, tc := range cases {
		oracle := NewOracle(&stubGenerator{response: tc.response}, nil, 0)
		if _, err := oracle.Refine(context.Background(), startup, investor, matching.Result{}); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestOracleRefineGeneratorError(t *testing.T) {
	oracle := NewOracle(&stubGenerator{err: errors.New("quota exceeded")}, nil, 0)
	startup, investor := testProfiles()
	if _, err := oracle.Refine(context.Background(), startup, investor, matching.Result{}); err == nil {
		t.Fatalf("expected generator error to surface")
	}
}

func TestDeckAnalyzer(t *testing.T) {
	stub := &stubGenerator{response: `{"clarityScore": 74, "strengths": ["clear problem", "traction slide"], "weaknesses": ["no competition slide", "vague ask"], "summary": "Solid deck."}`}
	analyzer := NewDeckAnalyzer(stub, nil)

	out, err := analyzer.Analyze(context.Background(), "Problem. Solution. Market.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ClarityScore != 74 {
		t.Fatalf("expected clarity 74, got %v", out.ClarityScore)
	}
	if len(out.Strengths) != 2 || len(out.Weaknesses) != 2 {
		t.Fatalf("unexpected analysis shape: %+v", out)
	}
}

func TestDeckAnalyzerRejectsIncomplete(t *testing.T) {
	stub := &stubGenerator{response: `{"clarityScore": 74, "strengths": [], "weaknesses": ["x"], "summary": "y"}`}
	analyzer := NewDeckAnalyzer(stub, nil)
	if _, err := analyzer.Analyze(context.Background(), "deck"); err == nil {
		t.Fatalf("expected incomplete analysis to be rejected")
	}
}
