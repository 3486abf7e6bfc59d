package matching

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func fullMatchPair() (StartupProfile, InvestorProfile) {
	startup := StartupProfile{
		ID:            uuid.New(),
		Sector:        "fintech",
		Stage:         "seed",
		Location:      "Lagos",
		FundingAmount: 50000,
		FundingType:   "equity",
		ESGImpact:     ESGHigh,
	}
	investor := InvestorProfile{
		ID:                 uuid.New(),
		PreferredSectors:   []string{"fintech"},
		InvestmentStages:   []string{"seed"},
		PreferredLocations: []string{"Lagos"},
		TicketSizeMin:      10000,
		TicketSizeMax:      100000,
		FundingModels:      []string{"equity"},
		ESGFocus:           true,
	}
	return startup, investor
}

type fakeOracle struct {
	result Result
	err    error
	delay  time.Duration
	calls  int
}

func (f *fakeOracle) Refine(ctx context.Context, _ StartupProfile, _ InvestorProfile, _ Result) (Result, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	if f.err != nil {
		return Result{}, f.err
	}
	return f.result, nil
}

func TestScoreFullMatch(t *testing.T) {
	startup, investor := fullMatchPair()

	res, err := NewScorer(nil, 0, nil).Score(context.Background(), startup, investor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 100 {
		t.Fatalf("expected score 100, got %v", res.Score)
	}
	if res.Strength != StrengthStrong {
		t.Fatalf("expected strong, got %s", res.Strength)
	}
	if len(res.Reasons) != 6 {
		t.Fatalf("expected 6 reasons, got %d", len(res.Reasons))
	}
}

func TestScoreNoMatch(t *testing.T) {
	startup := StartupProfile{
		ID:            uuid.New(),
		Sector:        "biotech",
		Stage:         "series-b",
		Location:      "Berlin",
		FundingAmount: 5000000,
		FundingType:   "grant",
		ESGImpact:     ESGNone,
	}
	investor := InvestorProfile{
		ID:                 uuid.New(),
		PreferredSectors:   []string{"fintech"},
		InvestmentStages:   []string{"seed"},
		PreferredLocations: []string{"Lagos"},
		TicketSizeMin:      10000,
		TicketSizeMax:      100000,
		FundingModels:      []string{"equity"},
		ESGFocus:           false,
	}

	res, err := NewScorer(nil, 0, nil).Score(context.Background(), startup, investor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 0 {
		t.Fatalf("expected score 0, got %v", res.Score)
	}
	if len(res.Reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", res.Reasons)
	}
	if res.Strength != StrengthWeak {
		t.Fatalf("expected weak, got %s", res.Strength)
	}
	if res.Explanation != "" {
		t.Fatalf("expected empty explanation, got %q", res.Explanation)
	}
}

func TestScorePartialMatch(t *testing.T) {
	// Only sector (+25) and funding model (+15) fire.
	startup := StartupProfile{
		ID:            uuid.New(),
		Sector:        "fintech",
		Stage:         "series-b",
		Location:      "Berlin",
		FundingAmount: 5000000,
		FundingType:   "equity",
		ESGImpact:     ESGNone,
	}
	investor := InvestorProfile{
		ID:               uuid.New(),
		PreferredSectors: []string{"fintech"},
		InvestmentStages: []string{"seed"},
		TicketSizeMin:    10000,
		TicketSizeMax:    100000,
		FundingModels:    []string{"equity"},
	}

	res, err := NewScorer(nil, 0, nil).Score(context.Background(), startup, investor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 40 {
		t.Fatalf("expected score 40, got %v", res.Score)
	}
	if res.Strength != StrengthMedium {
		t.Fatalf("expected medium, got %s", res.Strength)
	}
}

func TestScoreDeterministic(t *testing.T) {
	startup, investor := fullMatchPair()
	scorer := NewScorer(nil, 0, nil)

	first, err := scorer.Score(context.Background(), startup, investor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := scorer.Score(context.Background(), startup, investor)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("expected identical results, got %+v vs %+v", first, again)
		}
	}
}

func TestScoreInvalidTicketRange(t *testing.T) {
	startup, investor := fullMatchPair()
	investor.TicketSizeMin = 200000
	investor.TicketSizeMax = 100000

	oracle := &fakeOracle{result: Result{Score: 90}}
	_, err := NewScorer(oracle, 0, nil).Score(context.Background(), startup, investor)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if oracle.calls != 0 {
		t.Fatalf("oracle must not be called on invalid input")
	}
}

func TestScoreMissingRequiredField(t *testing.T) {
	startup, investor := fullMatchPair()
	startup.Sector = ""

	_, err := NewScorer(nil, 0, nil).Score(context.Background(), startup, investor)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestScoreOracleReplacesBaseline(t *testing.T) {
	startup, investor := fullMatchPair()
	oracle := &fakeOracle{result: Result{
		Score:       55,
		Reasons:     []string{"sector overlap", "ticket fit", "regional presence"},
		Explanation: "Reasonable fit with some concerns.",
	}}

	res, err := NewScorer(oracle, 0, nil).Score(context.Background(), startup, investor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 55 {
		t.Fatalf("expected oracle score 55, got %v", res.Score)
	}
	if res.Strength != StrengthMedium {
		t.Fatalf("strength must be recomputed from the adopted score, got %s", res.Strength)
	}
	if res.Explanation != "Reasonable fit with some concerns." {
		t.Fatalf("expected oracle explanation, got %q", res.Explanation)
	}
}

func TestScoreOracleFailureFallsBack(t *testing.T) {
	startup, investor := fullMatchPair()
	baseline := Baseline(startup, investor)

	oracle := &fakeOracle{err: errors.New("upstream down")}
	res, err := NewScorer(oracle, 0, nil).Score(context.Background(), startup, investor)
	if err != nil {
		t.Fatalf("oracle failures must not surface: %v", err)
	}
	if !reflect.DeepEqual(res, baseline) {
		t.Fatalf("expected baseline fallback, got %+v", res)
	}
}

func TestScoreOracleTimeoutFallsBack(t *testing.T) {
	startup, investor := fullMatchPair()
	baseline := Baseline(startup, investor)

	oracle := &fakeOracle{delay: 200 * time.Millisecond, result: Result{Score: 10}}
	res, err := NewScorer(oracle, 10*time.Millisecond, nil).Score(context.Background(), startup, investor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(res, baseline) {
		t.Fatalf("expected baseline fallback on timeout, got %+v", res)
	}
}

func TestBaselineBounds(t *testing.T) {
	startups := []StartupProfile{
		{ID: uuid.New(), Sector: "fintech", Stage: "seed", Location: "Lagos", FundingAmount: 0, FundingType: "equity", ESGImpact: ESGHigh},
		{ID: uuid.New(), Sector: "agritech", Stage: "pre-seed", Location: "Nairobi", FundingAmount: 1e9, FundingType: "revenue-share", ESGImpact: ESGLow},
	}
	investors := []InvestorProfile{
		{ID: uuid.New()},
		{ID: uuid.New(), PreferredSectors: []string{"fintech", "agritech"}, InvestmentStages: []string{"seed", "pre-seed"}, PreferredLocations: []string{"Lagos", "Nairobi"}, TicketSizeMax: 1e10, FundingModels: []string{"equity", "revenue-share"}, ESGFocus: true},
	}
	for _, s := range startups {
		for _, inv := range investors {
			res := Baseline(s, inv)
			if res.Score < 0 || res.Score > 100 {
				t.Fatalf("score out of bounds: %v", res.Score)
			}
		}
	}
}

func TestStrengthThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, StrengthWeak},
		{39.9, StrengthWeak},
		{40, StrengthMedium},
		{69.9, StrengthMedium},
		{70, StrengthStrong},
		{100, StrengthStrong},
	}
	for _, tc := range cases {
		if got := StrengthForScore(tc.score); got != tc.want {
			t.Fatalf("score %v: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestRankOrdersByScore(t *testing.T) {
	startup, strongInvestor := fullMatchPair()

	weakInvestor := InvestorProfile{ID: uuid.New(), TicketSizeMax: 1000}
	mediumInvestor := InvestorProfile{
		ID:               uuid.New(),
		PreferredSectors: []string{"fintech"},
		FundingModels:    []string{"equity"},
		TicketSizeMax:    1000,
	}

	ranked, err := NewScorer(nil, 0, nil).Rank(context.Background(), startup,
		[]InvestorProfile{weakInvestor, mediumInvestor, strongInvestor}, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].Investor.ID != strongInvestor.ID {
		t.Fatalf("expected strongest investor first")
	}
	if ranked[1].Investor.ID != mediumInvestor.ID {
		t.Fatalf("expected medium investor second")
	}
}

func TestRankStableOnTies(t *testing.T) {
	startup, _ := fullMatchPair()

	first := InvestorProfile{ID: uuid.New(), TicketSizeMax: 1}
	second := InvestorProfile{ID: uuid.New(), TicketSizeMax: 1}

	ranked, err := NewScorer(nil, 0, nil).Rank(context.Background(), startup,
		[]InvestorProfile{first, second}, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ranked[0].Investor.ID != first.ID || ranked[1].Investor.ID != second.ID {
		t.Fatalf("tie must preserve input order")
	}
}
