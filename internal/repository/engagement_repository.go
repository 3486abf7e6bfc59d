package repository

import (
	"context"
	"fmt"
	"time"

	"venturehive/internal/database"
	"venturehive/internal/domain/project"

	"github.com/google/uuid"
)

const (
	MarkLike = "like"
	MarkSave = "save"
)

type EngagementRepository interface {
	IncrementViews(ctx context.Context, projectID uuid.UUID) error
	AddMark(ctx context.Context, projectID, userID uuid.UUID, kind string) (bool, error)
	RemoveMark(ctx context.Context, projectID, userID uuid.UUID, kind string) (bool, error)
	Get(ctx context.Context, projectID uuid.UUID) (project.Engagement, error)
}

type PostgresEngagementRepository struct {
	db database.DB
}

func NewPostgresEngagementRepository(db database.DB) *PostgresEngagementRepository {
	return &PostgresEngagementRepository{db: db}
}

func (r *PostgresEngagementRepository) IncrementViews(ctx context.Context, projectID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO project_engagement (project_id, views, updated_at)
		 VALUES ($1, 1, $2)
		 ON CONFLICT (project_id) DO UPDATE SET
			views = project_engagement.views + 1,
			updated_at = EXCLUDED.updated_at`,
		projectID, time.Now().UTC(),
	)
	return err
}

// AddMark records a like or save once per user; the second return value is
// false when the mark already existed.
func (r *PostgresEngagementRepository) AddMark(ctx context.Context, projectID, userID uuid.UUID, kind string) (bool, error) {
	if kind != MarkLike && kind != MarkSave {
		return false, fmt.Errorf("unknown engagement mark %q", kind)
	}

	n, err := r.db.Exec(ctx,
		`INSERT INTO engagement_marks (project_id, user_id, kind)
		 VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`,
		projectID, userID, kind,
	)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	return true, r.bumpCounter(ctx, projectID, kind, 1)
}

func (r *PostgresEngagementRepository) RemoveMark(ctx context.Context, projectID, userID uuid.UUID, kind string) (bool, error) {
	if kind != MarkLike && kind != MarkSave {
		return false, fmt.Errorf("unknown engagement mark %q", kind)
	}

	n, err := r.db.Exec(ctx,
		`DELETE FROM engagement_marks WHERE project_id=$1 AND user_id=$2 AND kind=$3`,
		projectID, userID, kind,
	)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	return true, r.bumpCounter(ctx, projectID, kind, -1)
}

func (r *PostgresEngagementRepository) bumpCounter(ctx context.Context, projectID uuid.UUID, kind string, delta int64) error {
	col := "likes"
	if kind == MarkSave {
		col = "saves"
	}
	query := fmt.Sprintf(
		`INSERT INTO project_engagement (project_id, %s, updated_at)
		 VALUES ($1, GREATEST($2, 0), $3)
		 ON CONFLICT (project_id) DO UPDATE SET
			%s = GREATEST(project_engagement.%s + $2, 0),
			updated_at = EXCLUDED.updated_at`, col, col, col)
	_, err := r.db.Exec(ctx, query, projectID, delta, time.Now().UTC())
	return err
}

func (r *PostgresEngagementRepository) Get(ctx context.Context, projectID uuid.UUID) (project.Engagement, error) {
	e := project.Engagement{ProjectID: projectID}
	rows, err := r.db.Query(ctx,
		`SELECT views, likes, saves FROM project_engagement WHERE project_id = $1`, projectID)
	if err != nil {
		return e, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&e.Views, &e.Likes, &e.Saves); err != nil {
			return e, err
		}
	}
	return e, rows.Err()
}
