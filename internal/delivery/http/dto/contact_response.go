package dto

import (
	"time"

	"venturehive/internal/repository"

	"github.com/google/uuid"
)

type ContactRequestResponse struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	InvestorID uuid.UUID `json:"investor_id"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewContactRequestResponse(cr repository.ContactRequest) ContactRequestResponse {
	return ContactRequestResponse{
		ID:         cr.ID,
		ProjectID:  cr.ProjectID,
		InvestorID: cr.InvestorID,
		Message:    cr.Message,
		Status:     cr.Status,
		CreatedAt:  cr.CreatedAt,
	}
}

func NewContactRequestListResponse(items []repository.ContactRequest) []ContactRequestResponse {
	out := make([]ContactRequestResponse, 0, len(items))
	for _, cr := range items {
		out = append(out, NewContactRequestResponse(cr))
	}
	return out
}
