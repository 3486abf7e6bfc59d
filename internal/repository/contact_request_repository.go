package repository

import (
	"context"
	"errors"
	"time"

	"venturehive/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	ContactPending  = "pending"
	ContactAccepted = "accepted"
	ContactDeclined = "declined"
)

var (
	ErrContactRequestNotFound = errors.New("contact request not found")
	ErrContactRequestPending  = errors.New("contact request already pending")
)

type ContactRequest struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	InvestorID uuid.UUID
	Message    string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ContactRequestRepository interface {
	Create(ctx context.Context, cr ContactRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (ContactRequest, error)
	HasPending(ctx context.Context, projectID, investorID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]ContactRequest, error)
	ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]ContactRequest, error)
}

type PostgresContactRequestRepository struct {
	db database.DB
}

func NewPostgresContactRequestRepository(db database.DB) *PostgresContactRequestRepository {
	return &PostgresContactRequestRepository{db: db}
}

func (r *PostgresContactRequestRepository) Create(ctx context.Context, cr ContactRequest) error {
	now := time.Now().UTC()
	if cr.CreatedAt.IsZero() {
		cr.CreatedAt = now
	}
	cr.UpdatedAt = now
	if cr.Status == "" {
		cr.Status = ContactPending
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO contact_requests (id, project_id, investor_id, message, status, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		cr.ID, cr.ProjectID, cr.InvestorID, cr.Message, cr.Status, cr.CreatedAt, cr.UpdatedAt,
	)
	return err
}

func (r *PostgresContactRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (ContactRequest, error) {
	var cr ContactRequest
	err := r.db.QueryRow(ctx,
		`SELECT id, project_id, investor_id, message, status, created_at, updated_at
		 FROM contact_requests WHERE id = $1`, id).
		Scan(&cr.ID, &cr.ProjectID, &cr.InvestorID, &cr.Message, &cr.Status, &cr.CreatedAt, &cr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ContactRequest{}, ErrContactRequestNotFound
		}
		return ContactRequest{}, err
	}
	return cr, nil
}

func (r *PostgresContactRequestRepository) HasPending(ctx context.Context, projectID, investorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM contact_requests
		 WHERE project_id=$1 AND investor_id=$2 AND status='pending')`,
		projectID, investorID).Scan(&exists)
	return exists, err
}

func (r *PostgresContactRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE contact_requests SET status=$2, updated_at=$3 WHERE id=$1`,
		id, status, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrContactRequestNotFound
	}
	return nil
}

func (r *PostgresContactRequestRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]ContactRequest, error) {
	return r.list(ctx,
		`SELECT id, project_id, investor_id, message, status, created_at, updated_at
		 FROM contact_requests WHERE project_id = $1 ORDER BY created_at DESC`, projectID)
}

func (r *PostgresContactRequestRepository) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]ContactRequest, error) {
	return r.list(ctx,
		`SELECT id, project_id, investor_id, message, status, created_at, updated_at
		 FROM contact_requests WHERE investor_id = $1 ORDER BY created_at DESC`, investorID)
}

func (r *PostgresContactRequestRepository) list(ctx context.Context, query string, arg any) ([]ContactRequest, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ContactRequest, 0)
	for rows.Next() {
		var cr ContactRequest
		if err := rows.Scan(&cr.ID, &cr.ProjectID, &cr.InvestorID, &cr.Message, &cr.Status, &cr.CreatedAt, &cr.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, cr)
	}
	return out, rows.Err()
}
