package migration

import (
	"context"
	"fmt"

	"venturehive/internal/database"

	"go.uber.org/zap"
)

type step struct {
	name string
	ddl  string
}

var steps = []step{
	{"users", `CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL CHECK (role IN ('founder','investor')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"investor_profiles", `CREATE TABLE IF NOT EXISTS investor_profiles (
		user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		preferred_sectors TEXT[] NOT NULL DEFAULT '{}',
		investment_stages TEXT[] NOT NULL DEFAULT '{}',
		preferred_locations TEXT[] NOT NULL DEFAULT '{}',
		ticket_size_min NUMERIC NOT NULL DEFAULT 0,
		ticket_size_max NUMERIC NOT NULL DEFAULT 0,
		funding_models TEXT[] NOT NULL DEFAULT '{}',
		esg_focus BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"projects", `CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY,
		founder_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		pitch TEXT NOT NULL DEFAULT '',
		sector TEXT NOT NULL,
		stage TEXT NOT NULL,
		location TEXT NOT NULL,
		funding_amount NUMERIC NOT NULL DEFAULT 0,
		funding_type TEXT NOT NULL,
		esg_impact TEXT NOT NULL DEFAULT 'none',
		tags TEXT[] NOT NULL DEFAULT '{}',
		status TEXT NOT NULL DEFAULT 'draft',
		website_url TEXT,
		traction_users INTEGER NOT NULL DEFAULT 0,
		revenue NUMERIC NOT NULL DEFAULT 0,
		growth_percent NUMERIC NOT NULL DEFAULT 0,
		team_size INTEGER NOT NULL DEFAULT 1,
		team_notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"projects_listing_idx", `CREATE INDEX IF NOT EXISTS idx_projects_listing
		ON projects (status, sector, stage, created_at DESC)`},
	{"comments", `CREATE TABLE IF NOT EXISTS comments (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		body TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"engagement", `CREATE TABLE IF NOT EXISTS project_engagement (
		project_id UUID PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
		views BIGINT NOT NULL DEFAULT 0,
		likes BIGINT NOT NULL DEFAULT 0,
		saves BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"engagement_marks", `CREATE TABLE IF NOT EXISTS engagement_marks (
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		kind TEXT NOT NULL CHECK (kind IN ('like','save')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (project_id, user_id, kind)
	)`},
	{"contact_requests", `CREATE TABLE IF NOT EXISTS contact_requests (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		investor_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','accepted','declined')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"contact_requests_pending_idx", `CREATE UNIQUE INDEX IF NOT EXISTS idx_contact_requests_pending
		ON contact_requests (project_id, investor_id) WHERE status = 'pending'`},
	{"deal_rooms", `CREATE TABLE IF NOT EXISTS deal_rooms (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		founder_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		investor_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		status TEXT NOT NULL DEFAULT 'draft',
		amount NUMERIC NOT NULL DEFAULT 0,
		equity_percent NUMERIC NOT NULL DEFAULT 0,
		funding_type TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"subscriptions", `CREATE TABLE IF NOT EXISTS subscriptions (
		user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		plan TEXT NOT NULL DEFAULT 'free' CHECK (plan IN ('free','pro','elite')),
		status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active','canceled')),
		period_end TIMESTAMPTZ,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
	{"match_results", `CREATE TABLE IF NOT EXISTS match_results (
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		investor_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		score NUMERIC NOT NULL,
		strength TEXT NOT NULL,
		explanation TEXT NOT NULL DEFAULT '',
		scored_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (project_id, investor_id)
	)`},
	{"project_enrichment", `CREATE TABLE IF NOT EXISTS project_enrichment (
		project_id UUID PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
		site_title TEXT NOT NULL DEFAULT '',
		site_description TEXT NOT NULL DEFAULT '',
		outbound_links INTEGER NOT NULL DEFAULT 0,
		social_links TEXT[] NOT NULL DEFAULT '{}',
		fetched_via TEXT NOT NULL DEFAULT 'static',
		fetched_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`},
}

// Run applies the schema steps in order. Every step is idempotent so the
// runner is safe to call on every boot.
func Run(ctx context.Context, db database.DB, log *zap.Logger) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if log == nil {
		log = zap.NewNop()
	}

	for _, s := range steps {
		if _, err := db.Exec(ctx, s.ddl); err != nil {
			return fmt.Errorf("migration %s: %w", s.name, err)
		}
		log.Debug("migration applied", zap.String("step", s.name))
	}
	return nil
}
