package usecase

import (
	"context"
	"time"

	"venturehive/internal/repository"

	"github.com/google/uuid"
)

const billingPeriod = 30 * 24 * time.Hour

type SubscriptionUsecase interface {
	Subscribe(ctx context.Context, userID uuid.UUID, plan string) (repository.Subscription, error)
	Cancel(ctx context.Context, userID uuid.UUID) (repository.Subscription, error)
	Current(ctx context.Context, userID uuid.UUID) (repository.Subscription, error)
}

// Subscriptions records plan state only; charging happens at the external
// payment gateway and is reconciled out of band.
type Subscriptions struct {
	repo repository.SubscriptionRepository
}

func NewSubscriptionUsecase(repo repository.SubscriptionRepository) *Subscriptions {
	return &Subscriptions{repo: repo}
}

func (s *Subscriptions) Subscribe(ctx context.Context, userID uuid.UUID, plan string) (repository.Subscription, error) {
	if userID == uuid.Nil {
		return repository.Subscription{}, ErrUnauthorized
	}
	if !repository.ValidPlan(plan) {
		return repository.Subscription{}, ErrInvalidInput
	}

	sub := repository.Subscription{
		UserID: userID,
		Plan:   plan,
		Status: repository.SubscriptionActive,
	}
	if plan != repository.PlanFree {
		end := time.Now().UTC().Add(billingPeriod)
		sub.PeriodEnd = &end
	}

	if err := s.repo.Upsert(ctx, sub); err != nil {
		return repository.Subscription{}, ErrInternal
	}
	return sub, nil
}

func (s *Subscriptions) Cancel(ctx context.Context, userID uuid.UUID) (repository.Subscription, error) {
	if userID == uuid.Nil {
		return repository.Subscription{}, ErrUnauthorized
	}

	sub, err := s.repo.Get(ctx, userID)
	if err != nil {
		return repository.Subscription{}, ErrInternal
	}
	sub.Status = repository.SubscriptionCanceled

	if err := s.repo.Upsert(ctx, sub); err != nil {
		return repository.Subscription{}, ErrInternal
	}
	return sub, nil
}

func (s *Subscriptions) Current(ctx context.Context, userID uuid.UUID) (repository.Subscription, error) {
	if userID == uuid.Nil {
		return repository.Subscription{}, ErrUnauthorized
	}
	sub, err := s.repo.Get(ctx, userID)
	if err != nil {
		return repository.Subscription{}, ErrInternal
	}
	return sub, nil
}
