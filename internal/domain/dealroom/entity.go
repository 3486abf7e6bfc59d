package dealroom

import (
	"time"

	"github.com/google/uuid"
)

// Negotiation statuses. A room starts in draft when opened from an accepted
// contact request; accepted and declined are terminal.
const (
	StatusDraft       = "draft"
	StatusProposed    = "proposed"
	StatusUnderReview = "under_review"
	StatusAccepted    = "accepted"
	StatusDeclined    = "declined"
)

type Terms struct {
	Amount        float64
	EquityPercent float64
	FundingType   string
	Notes         string
}

type Room struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	FounderID  uuid.UUID
	InvestorID uuid.UUID
	Status     string
	Terms      Terms
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
