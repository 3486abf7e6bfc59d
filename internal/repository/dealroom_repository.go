package repository

import (
	"context"
	"errors"
	"time"

	"venturehive/internal/database"
	"venturehive/internal/domain/dealroom"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrDealRoomNotFound = errors.New("deal room not found")

type DealRoomRepository interface {
	Create(ctx context.Context, room dealroom.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (dealroom.Room, error)
	Update(ctx context.Context, room dealroom.Room) error
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]dealroom.Room, error)
}

type PostgresDealRoomRepository struct {
	db database.DB
}

func NewPostgresDealRoomRepository(db database.DB) *PostgresDealRoomRepository {
	return &PostgresDealRoomRepository{db: db}
}

func (r *PostgresDealRoomRepository) Create(ctx context.Context, room dealroom.Room) error {
	now := time.Now().UTC()
	if room.CreatedAt.IsZero() {
		room.CreatedAt = now
	}
	room.UpdatedAt = now

	_, err := r.db.Exec(ctx,
		`INSERT INTO deal_rooms
			(id, project_id, founder_id, investor_id, status,
			 amount, equity_percent, funding_type, notes, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		room.ID, room.ProjectID, room.FounderID, room.InvestorID, room.Status,
		room.Terms.Amount, room.Terms.EquityPercent, room.Terms.FundingType, room.Terms.Notes,
		room.CreatedAt, room.UpdatedAt,
	)
	return err
}

func (r *PostgresDealRoomRepository) GetByID(ctx context.Context, id uuid.UUID) (dealroom.Room, error) {
	var room dealroom.Room
	err := r.db.QueryRow(ctx,
		`SELECT id, project_id, founder_id, investor_id, status,
			amount, equity_percent, funding_type, notes, created_at, updated_at
		 FROM deal_rooms WHERE id = $1`, id).
		Scan(&room.ID, &room.ProjectID, &room.FounderID, &room.InvestorID, &room.Status,
			&room.Terms.Amount, &room.Terms.EquityPercent, &room.Terms.FundingType, &room.Terms.Notes,
			&room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dealroom.Room{}, ErrDealRoomNotFound
		}
		return dealroom.Room{}, err
	}
	return room, nil
}

func (r *PostgresDealRoomRepository) Update(ctx context.Context, room dealroom.Room) error {
	n, err := r.db.Exec(ctx,
		`UPDATE deal_rooms SET
			status=$2, amount=$3, equity_percent=$4, funding_type=$5, notes=$6, updated_at=$7
		 WHERE id=$1`,
		room.ID, room.Status, room.Terms.Amount, room.Terms.EquityPercent,
		room.Terms.FundingType, room.Terms.Notes, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDealRoomNotFound
	}
	return nil
}

func (r *PostgresDealRoomRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]dealroom.Room, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, project_id, founder_id, investor_id, status,
			amount, equity_percent, funding_type, notes, created_at, updated_at
		 FROM deal_rooms
		 WHERE founder_id = $1 OR investor_id = $1
		 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dealroom.Room, 0)
	for rows.Next() {
		var room dealroom.Room
		if err := rows.Scan(&room.ID, &room.ProjectID, &room.FounderID, &room.InvestorID, &room.Status,
			&room.Terms.Amount, &room.Terms.EquityPercent, &room.Terms.FundingType, &room.Terms.Notes,
			&room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}
