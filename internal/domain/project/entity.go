package project

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type Project struct {
	ID            uuid.UUID
	FounderID     uuid.UUID
	Title         string
	Pitch         string
	Sector        string
	Stage         string
	Location      string
	FundingAmount float64
	FundingType   string
	ESGImpact     string
	Tags          []string
	Status        string
	WebsiteURL    *string
	TractionUsers int
	Revenue       float64
	GrowthPercent float64
	TeamSize      int
	TeamNotes     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Engagement struct {
	ProjectID uuid.UUID
	Views     int64
	Likes     int64
	Saves     int64
}

type Comment struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	AuthorID  uuid.UUID
	Body      string
	CreatedAt time.Time
}
