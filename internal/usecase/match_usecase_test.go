package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"venturehive/internal/domain/matching"
	"venturehive/internal/domain/project"
	"venturehive/internal/repository"

	"github.com/google/uuid"
)

type mockProjectRepo struct {
	projects map[uuid.UUID]project.Project
	getErr   error
}

func (m *mockProjectRepo) Create(ctx context.Context, p project.Project) error { return nil }
func (m *mockProjectRepo) Update(ctx context.Context, p project.Project) error { return nil }

func (m *mockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	if m.getErr != nil {
		return project.Project{}, m.getErr
	}
	p, ok := m.projects[id]
	if !ok {
		return project.Project{}, repository.ErrProjectNotFound
	}
	return p, nil
}

func (m *mockProjectRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.projects[id]
	return ok, nil
}

func (m *mockProjectRepo) List(ctx context.Context, f repository.ProjectListFilter) ([]project.Project, error) {
	return nil, nil
}

func (m *mockProjectRepo) ListByFounder(ctx context.Context, founderID uuid.UUID) ([]project.Project, error) {
	return nil, nil
}

type mockInvestorRepo struct {
	profiles map[uuid.UUID]matching.InvestorProfile
	all      []matching.InvestorProfile
}

func (m *mockInvestorRepo) Upsert(ctx context.Context, p matching.InvestorProfile) error { return nil }

func (m *mockInvestorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (matching.InvestorProfile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return matching.InvestorProfile{}, repository.ErrInvestorProfileNotFound
	}
	return p, nil
}

func (m *mockInvestorRepo) ListAll(ctx context.Context) ([]matching.InvestorProfile, error) {
	return m.all, nil
}

type mockMatchRepo struct {
	upserts []repository.MatchUpsert
}

func (m *mockMatchRepo) Upsert(ctx context.Context, u repository.MatchUpsert) error {
	m.upserts = append(m.upserts, u)
	return nil
}

type mockMatchCache struct {
	entries map[string]matching.Result
	sets    int
}

func (m *mockMatchCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	res, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	*(out.(*matching.Result)) = res
	return true, nil
}

func (m *mockMatchCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if m.entries == nil {
		m.entries = map[string]matching.Result{}
	}
	m.entries[key] = value.(matching.Result)
	m.sets++
	return nil
}

type countingOracle struct {
	result matching.Result
	err    error
	calls  int
}

func (o *countingOracle) Refine(ctx context.Context, startup matching.StartupProfile, investor matching.InvestorProfile, baseline matching.Result) (matching.Result, error) {
	o.calls++
	if o.err != nil {
		return matching.Result{}, o.err
	}
	return o.result, nil
}

func matchFixtures() (project.Project, matching.InvestorProfile) {
	proj := project.Project{
		ID:            uuid.New(),
		FounderID:     uuid.New(),
		Title:         "Ledgerly",
		Sector:        "fintech",
		Stage:         "seed",
		Location:      "Lagos",
		FundingAmount: 50000,
		FundingType:   "equity",
		ESGImpact:     matching.ESGHigh,
		Status:        project.StatusPublished,
		TractionUsers: 1200,
		TeamSize:      5,
	}
	inv := matching.InvestorProfile{
		ID:                 uuid.New(),
		PreferredSectors:   []string{"fintech"},
		InvestmentStages:   []string{"seed"},
		PreferredLocations: []string{"Lagos"},
		TicketSizeMin:      10000,
		TicketSizeMax:      100000,
		FundingModels:      []string{"equity"},
		ESGFocus:           true,
	}
	return proj, inv
}

func newMatchFixture(oracle matching.ScoringOracle) (*Match, *mockMatchRepo, *mockMatchCache, project.Project, matching.InvestorProfile) {
	proj, inv := matchFixtures()
	projects := &mockProjectRepo{projects: map[uuid.UUID]project.Project{proj.ID: proj}}
	investors := &mockInvestorRepo{
		profiles: map[uuid.UUID]matching.InvestorProfile{inv.ID: inv},
		all:      []matching.InvestorProfile{inv},
	}
	matches := &mockMatchRepo{}
	cache := &mockMatchCache{}
	scorer := matching.NewScorer(oracle, time.Second, nil)
	uc := NewMatchUsecase(scorer, projects, investors, matches, cache, nil)
	return uc, matches, cache, proj, inv
}

func TestScorePairPersistsAndCaches(t *testing.T) {
	uc, matches, cache, proj, inv := newMatchFixture(nil)

	res, err := uc.ScorePair(context.Background(), proj.ID, inv.ID)
	if err != nil {
		t.Fatalf("ScorePair() error = %v", err)
	}
	if res.Score != 100 {
		t.Fatalf("Score = %v, want 100", res.Score)
	}
	if len(matches.upserts) != 1 {
		t.Fatalf("upserts = %d, want 1", len(matches.upserts))
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}
}

func TestScorePairCacheHitSkipsOracle(t *testing.T) {
	oracle := &countingOracle{err: errors.New("should not be called")}
	uc, matches, cache, proj, inv := newMatchFixture(oracle)

	first, err := uc.ScorePair(context.Background(), proj.ID, inv.ID)
	if err != nil {
		t.Fatalf("first ScorePair() error = %v", err)
	}
	if oracle.calls != 1 {
		t.Fatalf("oracle calls after first score = %d, want 1", oracle.calls)
	}

	second, err := uc.ScorePair(context.Background(), proj.ID, inv.ID)
	if err != nil {
		t.Fatalf("second ScorePair() error = %v", err)
	}
	if oracle.calls != 1 {
		t.Fatalf("oracle calls after cache hit = %d, want 1", oracle.calls)
	}
	if !reflect.DeepEqual(second, first) {
		t.Fatalf("cached result = %+v, want %+v", second, first)
	}
	if len(matches.upserts) != 1 {
		t.Fatalf("upserts = %d, want 1 (cache hit must not rewrite)", len(matches.upserts))
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}
}

func TestScorePairOracleReplacesBaseline(t *testing.T) {
	oracle := &countingOracle{result: matching.Result{
		Score:       55,
		Reasons:     []string{"sector fit", "stage fit", "ticket fit"},
		Strength:    matching.StrengthStrong,
		Explanation: "solid alignment on fundamentals",
	}}
	uc, _, _, proj, inv := newMatchFixture(oracle)

	res, err := uc.ScorePair(context.Background(), proj.ID, inv.ID)
	if err != nil {
		t.Fatalf("ScorePair() error = %v", err)
	}
	if res.Score != 55 {
		t.Fatalf("Score = %v, want oracle score 55", res.Score)
	}
	if res.Strength != matching.StrengthMedium {
		t.Fatalf("Strength = %q, want recomputed %q", res.Strength, matching.StrengthMedium)
	}
}

func TestScorePairMissingInvestorProfile(t *testing.T) {
	uc, _, _, proj, _ := newMatchFixture(nil)

	_, err := uc.ScorePair(context.Background(), proj.ID, uuid.New())
	if !errors.Is(err, ErrProfileRequired) {
		t.Fatalf("error = %v, want ErrProfileRequired", err)
	}
}

func TestScorePairInvalidTicketRange(t *testing.T) {
	oracle := &countingOracle{}
	proj, inv := matchFixtures()
	inv.TicketSizeMin = 200000
	inv.TicketSizeMax = 100000

	projects := &mockProjectRepo{projects: map[uuid.UUID]project.Project{proj.ID: proj}}
	investors := &mockInvestorRepo{profiles: map[uuid.UUID]matching.InvestorProfile{inv.ID: inv}}
	uc := NewMatchUsecase(matching.NewScorer(oracle, time.Second, nil), projects, investors, &mockMatchRepo{}, nil, nil)

	_, err := uc.ScorePair(context.Background(), proj.ID, inv.ID)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	if oracle.calls != 0 {
		t.Fatalf("oracle calls = %d, want 0 on invalid input", oracle.calls)
	}
}

func TestRankInvestorsOrdersAndSkipsInvalid(t *testing.T) {
	proj, strong := matchFixtures()
	weak := matching.InvestorProfile{
		ID:               uuid.New(),
		PreferredSectors: []string{"fintech"},
		TicketSizeMin:    10,
		TicketSizeMax:    20,
	}
	broken := matching.InvestorProfile{ID: uuid.New(), TicketSizeMin: 5, TicketSizeMax: 1}

	projects := &mockProjectRepo{projects: map[uuid.UUID]project.Project{proj.ID: proj}}
	investors := &mockInvestorRepo{all: []matching.InvestorProfile{broken, weak, strong}}
	matches := &mockMatchRepo{}
	uc := NewMatchUsecase(matching.NewScorer(nil, time.Second, nil), projects, investors, matches, nil, nil)

	ranked, err := uc.RankInvestors(context.Background(), proj.ID, 0)
	if err != nil {
		t.Fatalf("RankInvestors() error = %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("ranked = %d entries, want 2 (invalid profile skipped)", len(ranked))
	}
	if ranked[0].Investor.ID != strong.ID {
		t.Fatalf("top match = %s, want %s", ranked[0].Investor.ID, strong.ID)
	}
	if ranked[0].Result.Score < ranked[1].Result.Score {
		t.Fatalf("ranking not descending: %v < %v", ranked[0].Result.Score, ranked[1].Result.Score)
	}
	if len(matches.upserts) != 2 {
		t.Fatalf("upserts = %d, want 2", len(matches.upserts))
	}
}

func TestRankInvestorsUnknownProject(t *testing.T) {
	uc, _, _, _, _ := newMatchFixture(nil)

	_, err := uc.RankInvestors(context.Background(), uuid.New(), 5)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
