package dto

import (
	"time"

	"venturehive/internal/repository"

	"github.com/google/uuid"
)

type SubscriptionResponse struct {
	UserID    uuid.UUID  `json:"user_id"`
	Plan      string     `json:"plan"`
	Status    string     `json:"status"`
	PeriodEnd *time.Time `json:"period_end,omitempty"`
}

func NewSubscriptionResponse(s repository.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		UserID:    s.UserID,
		Plan:      s.Plan,
		Status:    s.Status,
		PeriodEnd: s.PeriodEnd,
	}
}
