package usecase

import (
	"context"
	"errors"

	"venturehive/internal/domain/matching"
	"venturehive/internal/repository"

	"github.com/google/uuid"
)

type InvestorUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (matching.InvestorProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, p matching.InvestorProfile) (matching.InvestorProfile, error)
}

type Investor struct {
	profiles repository.InvestorRepository
}

func NewInvestorUsecase(profiles repository.InvestorRepository) *Investor {
	return &Investor{profiles: profiles}
}

func (i *Investor) GetProfile(ctx context.Context, userID uuid.UUID) (matching.InvestorProfile, error) {
	if userID == uuid.Nil {
		return matching.InvestorProfile{}, ErrUnauthorized
	}
	p, err := i.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrInvestorProfileNotFound) {
			return matching.InvestorProfile{}, ErrNotFound
		}
		return matching.InvestorProfile{}, ErrInternal
	}
	return p, nil
}

func (i *Investor) UpdateProfile(ctx context.Context, userID uuid.UUID, p matching.InvestorProfile) (matching.InvestorProfile, error) {
	if userID == uuid.Nil {
		return matching.InvestorProfile{}, ErrUnauthorized
	}
	p.ID = userID
	if err := p.Validate(); err != nil {
		return matching.InvestorProfile{}, ErrInvalidInput
	}
	if err := i.profiles.Upsert(ctx, p); err != nil {
		return matching.InvestorProfile{}, ErrInternal
	}
	return p, nil
}
