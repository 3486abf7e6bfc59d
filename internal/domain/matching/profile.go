package matching

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ESG impact levels a startup can declare on its profile.
const (
	ESGHigh   = "high"
	ESGMedium = "medium"
	ESGLow    = "low"
	ESGNone   = "none"
)

var ErrInvalidInput = errors.New("invalid matching input")

type Traction struct {
	Users   int
	Revenue float64
	Growth  float64
}

type Team struct {
	Size       int
	Experience string
}

type StartupProfile struct {
	ID            uuid.UUID
	Sector        string
	Stage         string
	Location      string
	FundingAmount float64
	FundingType   string
	Traction      Traction
	Team          Team
	ESGImpact     string
	Tags          []string
}

type InvestorProfile struct {
	ID                 uuid.UUID
	PreferredSectors   []string
	InvestmentStages   []string
	PreferredLocations []string
	TicketSizeMin      float64
	TicketSizeMax      float64
	FundingModels      []string
	ESGFocus           bool
}

func (s StartupProfile) Validate() error {
	if s.ID == uuid.Nil {
		return fmt.Errorf("%w: startup id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(s.Sector) == "" {
		return fmt.Errorf("%w: startup sector is required", ErrInvalidInput)
	}
	if strings.TrimSpace(s.Stage) == "" {
		return fmt.Errorf("%w: startup stage is required", ErrInvalidInput)
	}
	if strings.TrimSpace(s.Location) == "" {
		return fmt.Errorf("%w: startup location is required", ErrInvalidInput)
	}
	if strings.TrimSpace(s.FundingType) == "" {
		return fmt.Errorf("%w: startup funding type is required", ErrInvalidInput)
	}
	if s.FundingAmount < 0 {
		return fmt.Errorf("%w: startup funding amount must be non-negative", ErrInvalidInput)
	}
	switch s.ESGImpact {
	case ESGHigh, ESGMedium, ESGLow, ESGNone:
	default:
		return fmt.Errorf("%w: unknown esg impact %q", ErrInvalidInput, s.ESGImpact)
	}
	return nil
}

func (i InvestorProfile) Validate() error {
	if i.ID == uuid.Nil {
		return fmt.Errorf("%w: investor id is required", ErrInvalidInput)
	}
	if i.TicketSizeMin < 0 {
		return fmt.Errorf("%w: investor ticket size min must be non-negative", ErrInvalidInput)
	}
	if i.TicketSizeMin > i.TicketSizeMax {
		return fmt.Errorf("%w: investor ticket size min exceeds max", ErrInvalidInput)
	}
	return nil
}

func containsFold(set []string, v string) bool {
	v = strings.TrimSpace(v)
	for _, s := range set {
		if strings.EqualFold(strings.TrimSpace(s), v) {
			return true
		}
	}
	return false
}
