package usecase

import (
	"context"
	"errors"
	"time"

	"venturehive/internal/domain/matching"
	"venturehive/internal/infrastructure/cache"
	"venturehive/internal/metrics"
	"venturehive/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchCache is the slice of the redis cache the match flow needs. Entries
// are keyed by (project, investor, baseline score) and expire on TTL; this
// usecase owns no further invalidation.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const matchCacheTTL = time.Hour

type MatchUsecase interface {
	ScorePair(ctx context.Context, projectID, investorID uuid.UUID) (matching.Result, error)
	RankInvestors(ctx context.Context, projectID uuid.UUID, limit int) ([]matching.RankedMatch, error)
}

type Match struct {
	scorer    *matching.Scorer
	projects  repository.ProjectRepository
	investors repository.InvestorRepository
	matches   repository.MatchRepository
	cache     MatchCache
	logger    *zap.Logger
}

func NewMatchUsecase(
	scorer *matching.Scorer,
	projects repository.ProjectRepository,
	investors repository.InvestorRepository,
	matches repository.MatchRepository,
	matchCache MatchCache,
	logger *zap.Logger,
) *Match {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Match{
		scorer:    scorer,
		projects:  projects,
		investors: investors,
		matches:   matches,
		cache:     matchCache,
		logger:    logger,
	}
}

func (m *Match) ScorePair(ctx context.Context, projectID, investorID uuid.UUID) (matching.Result, error) {
	startup, err := m.startupProfile(ctx, projectID)
	if err != nil {
		return matching.Result{}, err
	}

	investor, err := m.investors.GetByUserID(ctx, investorID)
	if err != nil {
		if errors.Is(err, repository.ErrInvestorProfileNotFound) {
			return matching.Result{}, ErrProfileRequired
		}
		return matching.Result{}, ErrInternal
	}

	if err := startup.Validate(); err != nil {
		return matching.Result{}, ErrInvalidInput
	}
	if err := investor.Validate(); err != nil {
		return matching.Result{}, ErrInvalidInput
	}

	// The baseline is part of the cache key, so stale entries die naturally
	// when either profile changes enough to move the rule-based score.
	base := matching.Baseline(startup, investor)
	key := cache.MatchKey(projectID, investorID, base.Score)

	if m.cache != nil {
		var cached matching.Result
		if hit, err := m.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	res, err := m.scorer.Score(ctx, startup, investor)
	if err != nil {
		if errors.Is(err, matching.ErrInvalidInput) {
			return matching.Result{}, ErrInvalidInput
		}
		return matching.Result{}, ErrInternal
	}

	metrics.MatchScores.Observe(res.Score)
	m.store(ctx, projectID, investorID, key, res)
	return res, nil
}

func (m *Match) RankInvestors(ctx context.Context, projectID uuid.UUID, limit int) ([]matching.RankedMatch, error) {
	if limit < 0 {
		return nil, ErrInvalidInput
	}

	startup, err := m.startupProfile(ctx, projectID)
	if err != nil {
		return nil, err
	}

	investors, err := m.investors.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	// Skip profiles that cannot be scored instead of failing the ranking.
	scoreable := investors[:0]
	for _, inv := range investors {
		if inv.Validate() == nil {
			scoreable = append(scoreable, inv)
		}
	}

	ranked, err := m.scorer.Rank(ctx, startup, scoreable, limit)
	if err != nil {
		if errors.Is(err, matching.ErrInvalidInput) {
			return nil, ErrInvalidInput
		}
		return nil, ErrInternal
	}

	for _, rm := range ranked {
		metrics.MatchScores.Observe(rm.Result.Score)
		m.store(ctx, projectID, rm.Investor.ID, "", rm.Result)
	}
	return ranked, nil
}

func (m *Match) startupProfile(ctx context.Context, projectID uuid.UUID) (matching.StartupProfile, error) {
	proj, err := m.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return matching.StartupProfile{}, ErrNotFound
		}
		return matching.StartupProfile{}, ErrInternal
	}
	return StartupProfileFromProject(proj), nil
}

// store persists and caches a result. Both writes are best-effort: a scoring
// response is never failed over bookkeeping.
func (m *Match) store(ctx context.Context, projectID, investorID uuid.UUID, key string, res matching.Result) {
	if err := m.matches.Upsert(ctx, repository.MatchUpsert{
		ProjectID:  projectID,
		InvestorID: investorID,
		Result:     res,
	}); err != nil {
		m.logger.Warn("match result upsert failed",
			zap.String("project_id", projectID.String()),
			zap.String("investor_id", investorID.String()),
			zap.Error(err),
		)
	}

	if m.cache != nil && key != "" {
		if err := m.cache.SetJSON(ctx, key, res, matchCacheTTL); err != nil {
			m.logger.Debug("match result cache write failed", zap.Error(err))
		}
	}
}
