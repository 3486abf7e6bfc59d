package enrich

import (
	"context"
	"time"

	"venturehive/internal/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type target struct {
	projectID uuid.UUID
	siteURL   string
}

type siteFetcher interface {
	Scrape(ctx context.Context, siteURL string) (SiteProfile, error)
}

// Enricher walks published projects that list a website and stores what the
// site says about them. Static fetch first; headless Chrome only when enabled
// and the static pass finds nothing.
type Enricher struct {
	db       database.DB
	static   siteFetcher
	headless siteFetcher
	workers  int
	rate     int
	logger   *zap.Logger
}

type Options struct {
	Workers     int
	RateLimit   int
	UseHeadless bool
}

func NewEnricher(db database.DB, opts Options, logger *zap.Logger) *Enricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Enricher{
		db:      db,
		static:  NewSiteScraper(15 * time.Second),
		workers: opts.Workers,
		rate:    opts.RateLimit,
		logger:  logger,
	}
	if e.workers <= 0 {
		e.workers = 4
	}
	if opts.UseHeadless {
		e.headless = NewHeadlessScraper(25 * time.Second)
	}
	return e
}

// Run enriches every eligible project once and returns how many sites were
// profiled successfully.
func (e *Enricher) Run(ctx context.Context) (int, error) {
	targets, err := e.loadTargets(ctx)
	if err != nil {
		return 0, err
	}
	if len(targets) == 0 {
		e.logger.Info("no projects to enrich")
		return 0, nil
	}

	pool := NewWorkerPool(e.workers, len(targets))
	pool.SetRateLimit(e.rate)
	results := pool.Run(ctx)

	for _, t := range targets {
		t := t
		pool.Submit(func(ctx context.Context) error {
			return e.enrichOne(ctx, t)
		})
	}
	pool.Close()

	ok := 0
	for res := range results {
		if res.Err == nil {
			ok++
		}
	}

	e.logger.Info("enrichment run finished",
		zap.Int("targets", len(targets)),
		zap.Int("succeeded", ok),
	)
	return ok, nil
}

func (e *Enricher) loadTargets(ctx context.Context) ([]target, error) {
	rows, err := e.db.Query(ctx,
		`SELECT id, website_url FROM projects
		 WHERE status = 'published' AND website_url IS NOT NULL AND website_url <> ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]target, 0)
	for rows.Next() {
		var t target
		if err := rows.Scan(&t.projectID, &t.siteURL); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (e *Enricher) enrichOne(ctx context.Context, t target) error {
	profile, err := e.static.Scrape(ctx, t.siteURL)
	if err == nil && profile.Title == "" && profile.Description == "" && e.headless != nil {
		profile, err = e.headless.Scrape(ctx, t.siteURL)
	} else if err != nil && e.headless != nil {
		profile, err = e.headless.Scrape(ctx, t.siteURL)
	}
	if err != nil {
		e.logger.Warn("site scrape failed",
			zap.String("project_id", t.projectID.String()),
			zap.String("url", t.siteURL),
			zap.Error(err),
		)
		return err
	}

	if err := e.store(ctx, t.projectID, profile); err != nil {
		e.logger.Warn("enrichment store failed",
			zap.String("project_id", t.projectID.String()),
			zap.Error(err),
		)
		return err
	}

	e.logger.Debug("project enriched",
		zap.String("project_id", t.projectID.String()),
		zap.String("via", profile.FetchedVia),
	)
	return nil
}

func (e *Enricher) store(ctx context.Context, projectID uuid.UUID, p SiteProfile) error {
	if p.SocialLinks == nil {
		p.SocialLinks = []string{}
	}
	_, err := e.db.Exec(ctx,
		`INSERT INTO project_enrichment
			(project_id, site_title, site_description, outbound_links, social_links, fetched_via, fetched_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (project_id) DO UPDATE SET
			site_title = EXCLUDED.site_title,
			site_description = EXCLUDED.site_description,
			outbound_links = EXCLUDED.outbound_links,
			social_links = EXCLUDED.social_links,
			fetched_via = EXCLUDED.fetched_via,
			fetched_at = EXCLUDED.fetched_at`,
		projectID, p.Title, p.Description, p.OutboundLinks, p.SocialLinks, p.FetchedVia, time.Now().UTC(),
	)
	return err
}
