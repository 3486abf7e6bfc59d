package usecase

import (
	"context"
	"errors"
	"strings"

	"venturehive/internal/domain/project"
	"venturehive/internal/repository"

	"github.com/google/uuid"
)

type ContactUsecase interface {
	Request(ctx context.Context, investorID, projectID uuid.UUID, message string) (repository.ContactRequest, error)
	Respond(ctx context.Context, founderID, requestID uuid.UUID, accept bool) (repository.ContactRequest, error)
	ListForProject(ctx context.Context, founderID, projectID uuid.UUID) ([]repository.ContactRequest, error)
	ListMine(ctx context.Context, investorID uuid.UUID) ([]repository.ContactRequest, error)
}

type Contacts struct {
	requests repository.ContactRequestRepository
	projects repository.ProjectRepository
}

func NewContactUsecase(requests repository.ContactRequestRepository, projects repository.ProjectRepository) *Contacts {
	return &Contacts{requests: requests, projects: projects}
}

func (c *Contacts) Request(ctx context.Context, investorID, projectID uuid.UUID, message string) (repository.ContactRequest, error) {
	if investorID == uuid.Nil {
		return repository.ContactRequest{}, ErrUnauthorized
	}

	proj, err := c.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return repository.ContactRequest{}, ErrNotFound
		}
		return repository.ContactRequest{}, ErrInternal
	}
	if proj.Status != project.StatusPublished {
		return repository.ContactRequest{}, ErrNotFound
	}
	if proj.FounderID == investorID {
		return repository.ContactRequest{}, ErrForbidden
	}

	pending, err := c.requests.HasPending(ctx, projectID, investorID)
	if err != nil {
		return repository.ContactRequest{}, ErrInternal
	}
	if pending {
		return repository.ContactRequest{}, ErrConflict
	}

	cr := repository.ContactRequest{
		ID:         uuid.New(),
		ProjectID:  projectID,
		InvestorID: investorID,
		Message:    strings.TrimSpace(message),
		Status:     repository.ContactPending,
	}
	if err := c.requests.Create(ctx, cr); err != nil {
		return repository.ContactRequest{}, ErrInternal
	}
	return cr, nil
}

func (c *Contacts) Respond(ctx context.Context, founderID, requestID uuid.UUID, accept bool) (repository.ContactRequest, error) {
	if founderID == uuid.Nil {
		return repository.ContactRequest{}, ErrUnauthorized
	}

	cr, err := c.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrContactRequestNotFound) {
			return repository.ContactRequest{}, ErrNotFound
		}
		return repository.ContactRequest{}, ErrInternal
	}
	if cr.Status != repository.ContactPending {
		return repository.ContactRequest{}, ErrConflict
	}

	proj, err := c.projects.GetByID(ctx, cr.ProjectID)
	if err != nil {
		return repository.ContactRequest{}, ErrInternal
	}
	if proj.FounderID != founderID {
		return repository.ContactRequest{}, ErrForbidden
	}

	status := repository.ContactDeclined
	if accept {
		status = repository.ContactAccepted
	}
	if err := c.requests.UpdateStatus(ctx, requestID, status); err != nil {
		return repository.ContactRequest{}, ErrInternal
	}
	cr.Status = status
	return cr, nil
}

func (c *Contacts) ListForProject(ctx context.Context, founderID, projectID uuid.UUID) ([]repository.ContactRequest, error) {
	if founderID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	proj, err := c.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrInternal
	}
	if proj.FounderID != founderID {
		return nil, ErrForbidden
	}

	items, err := c.requests.ListByProject(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (c *Contacts) ListMine(ctx context.Context, investorID uuid.UUID) ([]repository.ContactRequest, error) {
	if investorID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := c.requests.ListByInvestor(ctx, investorID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
