package pipeline

import (
	"context"
	"time"

	"venturehive/internal/domain/matching"
	"venturehive/internal/repository"
	"venturehive/internal/usecase"

	"go.uber.org/zap"
)

const pageSize = 100

// RescorePipeline recomputes stored match results for every published
// project against every scoreable investor profile. Run from a scheduler so
// rankings stay fresh as profiles change between on-request scorings.
type RescorePipeline struct {
	scorer    *matching.Scorer
	projects  repository.ProjectRepository
	investors repository.InvestorRepository
	matches   repository.MatchRepository
	logger    *zap.Logger
}

func NewRescorePipeline(
	scorer *matching.Scorer,
	projects repository.ProjectRepository,
	investors repository.InvestorRepository,
	matches repository.MatchRepository,
	logger *zap.Logger,
) *RescorePipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RescorePipeline{
		scorer:    scorer,
		projects:  projects,
		investors: investors,
		matches:   matches,
		logger:    logger,
	}
}

type RescoreStats struct {
	Projects int
	Scored   int
	Skipped  int
}

func (p *RescorePipeline) Run(ctx context.Context) (RescoreStats, error) {
	started := time.Now()
	var stats RescoreStats

	investors, err := p.investors.ListAll(ctx)
	if err != nil {
		return stats, err
	}
	scoreable := investors[:0]
	for _, inv := range investors {
		if inv.Validate() == nil {
			scoreable = append(scoreable, inv)
		} else {
			stats.Skipped++
		}
	}

	for offset := 0; ; offset += pageSize {
		page, err := p.projects.List(ctx, repository.ProjectListFilter{Limit: pageSize, Offset: offset})
		if err != nil {
			return stats, err
		}
		if len(page) == 0 {
			break
		}

		for _, proj := range page {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}

			startup := usecase.StartupProfileFromProject(proj)
			if startup.Validate() != nil {
				stats.Skipped++
				continue
			}
			stats.Projects++

			ranked, err := p.scorer.Rank(ctx, startup, scoreable, 0)
			if err != nil {
				p.logger.Warn("rescore failed for project",
					zap.String("project_id", proj.ID.String()),
					zap.Error(err),
				)
				continue
			}

			for _, rm := range ranked {
				if err := p.matches.Upsert(ctx, repository.MatchUpsert{
					ProjectID:  proj.ID,
					InvestorID: rm.Investor.ID,
					Result:     rm.Result,
				}); err != nil {
					p.logger.Warn("match upsert failed",
						zap.String("project_id", proj.ID.String()),
						zap.String("investor_id", rm.Investor.ID.String()),
						zap.Error(err),
					)
					continue
				}
				stats.Scored++
			}
		}

		if len(page) < pageSize {
			break
		}
	}

	p.logger.Info("rescore pipeline finished",
		zap.Int("projects", stats.Projects),
		zap.Int("scored", stats.Scored),
		zap.Int("skipped", stats.Skipped),
		zap.Duration("took", time.Since(started)),
	)
	return stats, nil
}
