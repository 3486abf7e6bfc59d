package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"venturehive/internal/domain/matching"
	"venturehive/internal/domain/project"
	"venturehive/internal/repository"

	"github.com/google/uuid"
)

type ProjectInput struct {
	Title         string
	Pitch         string
	Sector        string
	Stage         string
	Location      string
	FundingAmount float64
	FundingType   string
	ESGImpact     string
	Tags          []string
	WebsiteURL    *string
	TractionUsers int
	Revenue       float64
	GrowthPercent float64
	TeamSize      int
	TeamNotes     string
}

type ProjectUsecase interface {
	Create(ctx context.Context, founderID uuid.UUID, in ProjectInput) (project.Project, error)
	Update(ctx context.Context, founderID, projectID uuid.UUID, in ProjectInput) (project.Project, error)
	Publish(ctx context.Context, founderID, projectID uuid.UUID) (project.Project, error)
	Get(ctx context.Context, projectID uuid.UUID) (project.Project, error)
	List(ctx context.Context, f repository.ProjectListFilter) ([]project.Project, error)
	ListMine(ctx context.Context, founderID uuid.UUID) ([]project.Project, error)
}

type Projects struct {
	repo repository.ProjectRepository
}

func NewProjectUsecase(repo repository.ProjectRepository) *Projects {
	return &Projects{repo: repo}
}

func (p *Projects) Create(ctx context.Context, founderID uuid.UUID, in ProjectInput) (project.Project, error) {
	if founderID == uuid.Nil {
		return project.Project{}, ErrUnauthorized
	}
	if err := validateProjectInput(in); err != nil {
		return project.Project{}, err
	}

	now := time.Now().UTC()
	proj := projectFromInput(in)
	proj.ID = uuid.New()
	proj.FounderID = founderID
	proj.Status = project.StatusDraft
	proj.CreatedAt = now
	proj.UpdatedAt = now

	if err := p.repo.Create(ctx, proj); err != nil {
		return project.Project{}, ErrInternal
	}
	return proj, nil
}

func (p *Projects) Update(ctx context.Context, founderID, projectID uuid.UUID, in ProjectInput) (project.Project, error) {
	proj, err := p.ownedProject(ctx, founderID, projectID)
	if err != nil {
		return project.Project{}, err
	}
	if err := validateProjectInput(in); err != nil {
		return project.Project{}, err
	}

	updated := projectFromInput(in)
	updated.ID = proj.ID
	updated.FounderID = proj.FounderID
	updated.Status = proj.Status
	updated.CreatedAt = proj.CreatedAt

	if err := p.repo.Update(ctx, updated); err != nil {
		return project.Project{}, ErrInternal
	}
	return updated, nil
}

// Publish validates the listing against the matching profile requirements so
// every published project is scoreable.
func (p *Projects) Publish(ctx context.Context, founderID, projectID uuid.UUID) (project.Project, error) {
	proj, err := p.ownedProject(ctx, founderID, projectID)
	if err != nil {
		return project.Project{}, err
	}

	if err := StartupProfileFromProject(proj).Validate(); err != nil {
		return project.Project{}, ErrInvalidInput
	}

	proj.Status = project.StatusPublished
	if err := p.repo.Update(ctx, proj); err != nil {
		return project.Project{}, ErrInternal
	}
	return proj, nil
}

func (p *Projects) Get(ctx context.Context, projectID uuid.UUID) (project.Project, error) {
	if projectID == uuid.Nil {
		return project.Project{}, ErrNotFound
	}
	proj, err := p.repo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrNotFound
		}
		return project.Project{}, ErrInternal
	}
	return proj, nil
}

func (p *Projects) List(ctx context.Context, f repository.ProjectListFilter) ([]project.Project, error) {
	if f.Limit < 0 || f.Offset < 0 {
		return nil, ErrInvalidInput
	}
	items, err := p.repo.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (p *Projects) ListMine(ctx context.Context, founderID uuid.UUID) ([]project.Project, error) {
	if founderID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := p.repo.ListByFounder(ctx, founderID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (p *Projects) ownedProject(ctx context.Context, founderID, projectID uuid.UUID) (project.Project, error) {
	if founderID == uuid.Nil {
		return project.Project{}, ErrUnauthorized
	}
	proj, err := p.repo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrNotFound
		}
		return project.Project{}, ErrInternal
	}
	if proj.FounderID != founderID {
		return project.Project{}, ErrForbidden
	}
	return proj, nil
}

func validateProjectInput(in ProjectInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidInput
	}
	if in.FundingAmount < 0 || in.TractionUsers < 0 || in.TeamSize < 0 {
		return ErrInvalidInput
	}
	switch in.ESGImpact {
	case "", matching.ESGHigh, matching.ESGMedium, matching.ESGLow, matching.ESGNone:
	default:
		return ErrInvalidInput
	}
	return nil
}

func projectFromInput(in ProjectInput) project.Project {
	esg := in.ESGImpact
	if esg == "" {
		esg = matching.ESGNone
	}
	return project.Project{
		Title:         strings.TrimSpace(in.Title),
		Pitch:         strings.TrimSpace(in.Pitch),
		Sector:        strings.TrimSpace(in.Sector),
		Stage:         strings.TrimSpace(in.Stage),
		Location:      strings.TrimSpace(in.Location),
		FundingAmount: in.FundingAmount,
		FundingType:   strings.TrimSpace(in.FundingType),
		ESGImpact:     esg,
		Tags:          in.Tags,
		WebsiteURL:    in.WebsiteURL,
		TractionUsers: in.TractionUsers,
		Revenue:       in.Revenue,
		GrowthPercent: in.GrowthPercent,
		TeamSize:      in.TeamSize,
		TeamNotes:     strings.TrimSpace(in.TeamNotes),
	}
}

// StartupProfileFromProject maps a stored listing onto the scoring input.
func StartupProfileFromProject(p project.Project) matching.StartupProfile {
	return matching.StartupProfile{
		ID:            p.ID,
		Sector:        p.Sector,
		Stage:         p.Stage,
		Location:      p.Location,
		FundingAmount: p.FundingAmount,
		FundingType:   p.FundingType,
		Traction: matching.Traction{
			Users:   p.TractionUsers,
			Revenue: p.Revenue,
			Growth:  p.GrowthPercent,
		},
		Team: matching.Team{
			Size:       p.TeamSize,
			Experience: p.TeamNotes,
		},
		ESGImpact: p.ESGImpact,
		Tags:      p.Tags,
	}
}
