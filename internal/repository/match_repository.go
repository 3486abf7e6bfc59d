package repository

import (
	"context"
	"time"

	"venturehive/internal/database"
	"venturehive/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchUpsert struct {
	ProjectID  uuid.UUID
	InvestorID uuid.UUID
	Result     matching.Result
	ScoredAt   time.Time
}

type MatchRepository interface {
	Upsert(ctx context.Context, m MatchUpsert) error
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Upsert(ctx context.Context, m MatchUpsert) error {
	if m.ProjectID == uuid.Nil || m.InvestorID == uuid.Nil {
		return nil
	}
	if m.ScoredAt.IsZero() {
		m.ScoredAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO match_results (project_id, investor_id, score, strength, explanation, scored_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (project_id, investor_id) DO UPDATE SET
			score = EXCLUDED.score,
			strength = EXCLUDED.strength,
			explanation = EXCLUDED.explanation,
			scored_at = EXCLUDED.scored_at`,
		m.ProjectID, m.InvestorID, m.Result.Score, m.Result.Strength, m.Result.Explanation, m.ScoredAt,
	)
	return err
}
