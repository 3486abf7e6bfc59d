package dto

import (
	"time"

	"venturehive/internal/domain/project"

	"github.com/google/uuid"
)

type ProjectResponse struct {
	ID            uuid.UUID `json:"id"`
	FounderID     uuid.UUID `json:"founder_id"`
	Title         string    `json:"title"`
	Pitch         string    `json:"pitch"`
	Sector        string    `json:"sector"`
	Stage         string    `json:"stage"`
	Location      string    `json:"location"`
	FundingAmount float64   `json:"funding_amount"`
	FundingType   string    `json:"funding_type"`
	ESGImpact     string    `json:"esg_impact"`
	Tags          []string  `json:"tags"`
	Status        string    `json:"status"`
	WebsiteURL    *string   `json:"website_url,omitempty"`
	TractionUsers int       `json:"traction_users"`
	Revenue       float64   `json:"revenue"`
	GrowthPercent float64   `json:"growth_percent"`
	TeamSize      int       `json:"team_size"`
	TeamNotes     string    `json:"team_notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewProjectResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		FounderID:     p.FounderID,
		Title:         p.Title,
		Pitch:         p.Pitch,
		Sector:        p.Sector,
		Stage:         p.Stage,
		Location:      p.Location,
		FundingAmount: p.FundingAmount,
		FundingType:   p.FundingType,
		ESGImpact:     p.ESGImpact,
		Tags:          p.Tags,
		Status:        p.Status,
		WebsiteURL:    p.WebsiteURL,
		TractionUsers: p.TractionUsers,
		Revenue:       p.Revenue,
		GrowthPercent: p.GrowthPercent,
		TeamSize:      p.TeamSize,
		TeamNotes:     p.TeamNotes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func NewProjectListResponse(items []project.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

type EngagementResponse struct {
	ProjectID uuid.UUID `json:"project_id"`
	Views     int64     `json:"views"`
	Likes     int64     `json:"likes"`
	Saves     int64     `json:"saves"`
}

func NewEngagementResponse(e project.Engagement) EngagementResponse {
	return EngagementResponse{ProjectID: e.ProjectID, Views: e.Views, Likes: e.Likes, Saves: e.Saves}
}

type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommentResponse(c project.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

func NewCommentListResponse(items []project.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCommentResponse(c))
	}
	return out
}
