package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

const defaultRankConcurrency = 8

type RankedMatch struct {
	Investor InvestorProfile
	Result   Result
}

// Rank scores one startup against every investor concurrently and returns
// the results ordered by descending score, ties broken by input order. A
// non-positive limit keeps the full list.
func (s *Scorer) Rank(ctx context.Context, startup StartupProfile, investors []InvestorProfile, limit int) ([]RankedMatch, error) {
	if err := startup.Validate(); err != nil {
		return nil, err
	}
	for _, inv := range investors {
		if err := inv.Validate(); err != nil {
			return nil, err
		}
	}

	ranked := make([]RankedMatch, len(investors))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultRankConcurrency)
	for i, inv := range investors {
		g.Go(func() error {
			res, err := s.Score(gctx, startup, inv)
			if err != nil {
				return err
			}
			ranked[i] = RankedMatch{Investor: inv, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Result.Score > ranked[b].Result.Score
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
