package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"venturehive/internal/database"
	"venturehive/internal/domain/project"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectListFilter struct {
	Sector string
	Stage  string
	Limit  int
	Offset int
}

type ProjectRepository interface {
	Create(ctx context.Context, p project.Project) error
	Update(ctx context.Context, p project.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, f ProjectListFilter) ([]project.Project, error)
	ListByFounder(ctx context.Context, founderID uuid.UUID) ([]project.Project, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, founder_id, title, pitch, sector, stage, location,
	funding_amount, funding_type, esg_impact, tags, status, website_url,
	traction_users, revenue, growth_percent, team_size, team_notes,
	created_at, updated_at`

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := r.db.Exec(ctx,
		`INSERT INTO projects (`+projectColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`,
		p.ID, p.FounderID, p.Title, p.Pitch, p.Sector, p.Stage, p.Location,
		p.FundingAmount, p.FundingType, p.ESGImpact, p.Tags, p.Status, p.WebsiteURL,
		p.TractionUsers, p.Revenue, p.GrowthPercent, p.TeamSize, p.TeamNotes,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p project.Project) error {
	n, err := r.db.Exec(ctx,
		`UPDATE projects SET
			title=$2, pitch=$3, sector=$4, stage=$5, location=$6,
			funding_amount=$7, funding_type=$8, esg_impact=$9, tags=$10,
			status=$11, website_url=$12, traction_users=$13, revenue=$14,
			growth_percent=$15, team_size=$16, team_notes=$17, updated_at=$18
		 WHERE id=$1`,
		p.ID, p.Title, p.Pitch, p.Sector, p.Stage, p.Location,
		p.FundingAmount, p.FundingType, p.ESGImpact, p.Tags,
		p.Status, p.WebsiteURL, p.TractionUsers, p.Revenue,
		p.GrowthPercent, p.TeamSize, p.TeamNotes, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *PostgresProjectRepository) List(ctx context.Context, f ProjectListFilter) ([]project.Project, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	query := `SELECT ` + projectColumns + ` FROM projects WHERE status = 'published'`
	args := []any{}
	idx := 1
	if s := strings.TrimSpace(f.Sector); s != "" {
		query += fmt.Sprintf(" AND sector = $%d", idx)
		args = append(args, s)
		idx++
	}
	if s := strings.TrimSpace(f.Stage); s != "" {
		query += fmt.Sprintf(" AND stage = $%d", idx)
		args = append(args, s)
		idx++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, f.Limit, f.Offset)

	return r.list(ctx, query, args...)
}

func (r *PostgresProjectRepository) ListByFounder(ctx context.Context, founderID uuid.UUID) ([]project.Project, error) {
	return r.list(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE founder_id = $1 ORDER BY created_at DESC`,
		founderID,
	)
}

func (r *PostgresProjectRepository) list(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (project.Project, error) {
	var p project.Project
	err := s.Scan(&p.ID, &p.FounderID, &p.Title, &p.Pitch, &p.Sector, &p.Stage, &p.Location,
		&p.FundingAmount, &p.FundingType, &p.ESGImpact, &p.Tags, &p.Status, &p.WebsiteURL,
		&p.TractionUsers, &p.Revenue, &p.GrowthPercent, &p.TeamSize, &p.TeamNotes,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}
