package repository

import (
	"context"
	"errors"
	"time"

	"venturehive/internal/database"
	"venturehive/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrInvestorProfileNotFound = errors.New("investor profile not found")

type InvestorRepository interface {
	Upsert(ctx context.Context, p matching.InvestorProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (matching.InvestorProfile, error)
	ListAll(ctx context.Context) ([]matching.InvestorProfile, error)
}

type PostgresInvestorRepository struct {
	db database.DB
}

func NewPostgresInvestorRepository(db database.DB) *PostgresInvestorRepository {
	return &PostgresInvestorRepository{db: db}
}

func (r *PostgresInvestorRepository) Upsert(ctx context.Context, p matching.InvestorProfile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO investor_profiles
			(user_id, preferred_sectors, investment_stages, preferred_locations,
			 ticket_size_min, ticket_size_max, funding_models, esg_focus, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 ON CONFLICT (user_id) DO UPDATE SET
			preferred_sectors = EXCLUDED.preferred_sectors,
			investment_stages = EXCLUDED.investment_stages,
			preferred_locations = EXCLUDED.preferred_locations,
			ticket_size_min = EXCLUDED.ticket_size_min,
			ticket_size_max = EXCLUDED.ticket_size_max,
			funding_models = EXCLUDED.funding_models,
			esg_focus = EXCLUDED.esg_focus,
			updated_at = EXCLUDED.updated_at`,
		p.ID, p.PreferredSectors, p.InvestmentStages, p.PreferredLocations,
		p.TicketSizeMin, p.TicketSizeMax, p.FundingModels, p.ESGFocus, time.Now().UTC(),
	)
	return err
}

func (r *PostgresInvestorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (matching.InvestorProfile, error) {
	var p matching.InvestorProfile
	err := r.db.QueryRow(ctx,
		`SELECT user_id, preferred_sectors, investment_stages, preferred_locations,
			ticket_size_min, ticket_size_max, funding_models, esg_focus
		 FROM investor_profiles WHERE user_id = $1`, userID).
		Scan(&p.ID, &p.PreferredSectors, &p.InvestmentStages, &p.PreferredLocations,
			&p.TicketSizeMin, &p.TicketSizeMax, &p.FundingModels, &p.ESGFocus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return matching.InvestorProfile{}, ErrInvestorProfileNotFound
		}
		return matching.InvestorProfile{}, err
	}
	return p, nil
}

func (r *PostgresInvestorRepository) ListAll(ctx context.Context) ([]matching.InvestorProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, preferred_sectors, investment_stages, preferred_locations,
			ticket_size_min, ticket_size_max, funding_models, esg_focus
		 FROM investor_profiles ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.InvestorProfile, 0)
	for rows.Next() {
		var p matching.InvestorProfile
		if err := rows.Scan(&p.ID, &p.PreferredSectors, &p.InvestmentStages, &p.PreferredLocations,
			&p.TicketSizeMin, &p.TicketSizeMax, &p.FundingModels, &p.ESGFocus); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
