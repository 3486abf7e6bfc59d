package repository

import (
	"context"
	"errors"
	"time"

	"venturehive/internal/database"
	"venturehive/internal/domain/project"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	Create(ctx context.Context, c project.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (project.Comment, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]project.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCommentRepository struct {
	db database.DB
}

func NewPostgresCommentRepository(db database.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) Create(ctx context.Context, c project.Comment) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO comments (id, project_id, author_id, body, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		c.ID, c.ProjectID, c.AuthorID, c.Body, c.CreatedAt,
	)
	return err
}

func (r *PostgresCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Comment, error) {
	var c project.Comment
	err := r.db.QueryRow(ctx,
		`SELECT id, project_id, author_id, body, created_at FROM comments WHERE id = $1`, id).
		Scan(&c.ID, &c.ProjectID, &c.AuthorID, &c.Body, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Comment{}, ErrCommentNotFound
		}
		return project.Comment{}, err
	}
	return c, nil
}

func (r *PostgresCommentRepository) ListByProject(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]project.Comment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, project_id, author_id, body, created_at
		 FROM comments WHERE project_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Comment, 0)
	for rows.Next() {
		var c project.Comment
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCommentNotFound
	}
	return nil
}
