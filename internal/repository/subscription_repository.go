package repository

import (
	"context"
	"time"

	"venturehive/internal/database"

	"github.com/google/uuid"
)

const (
	PlanFree  = "free"
	PlanPro   = "pro"
	PlanElite = "elite"

	SubscriptionActive   = "active"
	SubscriptionCanceled = "canceled"
)

type Subscription struct {
	UserID    uuid.UUID
	Plan      string
	Status    string
	PeriodEnd *time.Time
	UpdatedAt time.Time
}

func ValidPlan(plan string) bool {
	return plan == PlanFree || plan == PlanPro || plan == PlanElite
}

type SubscriptionRepository interface {
	Upsert(ctx context.Context, s Subscription) error
	Get(ctx context.Context, userID uuid.UUID) (Subscription, error)
}

type PostgresSubscriptionRepository struct {
	db database.DB
}

func NewPostgresSubscriptionRepository(db database.DB) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{db: db}
}

func (r *PostgresSubscriptionRepository) Upsert(ctx context.Context, s Subscription) error {
	s.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`INSERT INTO subscriptions (user_id, plan, status, period_end, updated_at)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (user_id) DO UPDATE SET
			plan = EXCLUDED.plan,
			status = EXCLUDED.status,
			period_end = EXCLUDED.period_end,
			updated_at = EXCLUDED.updated_at`,
		s.UserID, s.Plan, s.Status, s.PeriodEnd, s.UpdatedAt,
	)
	return err
}

// Get returns the stored subscription, defaulting to the free plan when the
// user never subscribed.
func (r *PostgresSubscriptionRepository) Get(ctx context.Context, userID uuid.UUID) (Subscription, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, plan, status, period_end, updated_at
		 FROM subscriptions WHERE user_id = $1`, userID)
	if err != nil {
		return Subscription{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var s Subscription
		if err := rows.Scan(&s.UserID, &s.Plan, &s.Status, &s.PeriodEnd, &s.UpdatedAt); err != nil {
			return Subscription{}, err
		}
		return s, rows.Err()
	}
	return Subscription{UserID: userID, Plan: PlanFree, Status: SubscriptionActive}, rows.Err()
}
