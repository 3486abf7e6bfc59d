package usecase

import (
	"context"
	"time"

	"venturehive/internal/domain/project"
	"venturehive/internal/infrastructure/cache"
	"venturehive/internal/repository"

	"github.com/google/uuid"
)

const viewDedupWindow = 30 * time.Minute

// ViewDeduper is the slice of the redis cache the engagement flow needs.
type ViewDeduper interface {
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

type EngagementUsecase interface {
	RecordView(ctx context.Context, viewerID, projectID uuid.UUID) error
	ToggleLike(ctx context.Context, userID, projectID uuid.UUID) (bool, error)
	ToggleSave(ctx context.Context, userID, projectID uuid.UUID) (bool, error)
	Get(ctx context.Context, projectID uuid.UUID) (project.Engagement, error)
}

type Engagement struct {
	repo     repository.EngagementRepository
	projects repository.ProjectRepository
	deduper  ViewDeduper
}

func NewEngagementUsecase(repo repository.EngagementRepository, projects repository.ProjectRepository, deduper ViewDeduper) *Engagement {
	return &Engagement{repo: repo, projects: projects, deduper: deduper}
}

// RecordView counts one view per viewer per dedup window. Redis outages fail
// open: counting a duplicate view beats dropping views entirely.
func (e *Engagement) RecordView(ctx context.Context, viewerID, projectID uuid.UUID) error {
	if viewerID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := e.ensureProject(ctx, projectID); err != nil {
		return err
	}

	fresh := true
	if e.deduper != nil {
		ok, err := e.deduper.SetIfNotExists(ctx, cache.ViewDedupKey(projectID, viewerID), "1", viewDedupWindow)
		if err == nil {
			fresh = ok
		}
	}
	if !fresh {
		return nil
	}

	if err := e.repo.IncrementViews(ctx, projectID); err != nil {
		return ErrInternal
	}
	return nil
}

func (e *Engagement) ToggleLike(ctx context.Context, userID, projectID uuid.UUID) (bool, error) {
	return e.toggle(ctx, userID, projectID, repository.MarkLike)
}

func (e *Engagement) ToggleSave(ctx context.Context, userID, projectID uuid.UUID) (bool, error) {
	return e.toggle(ctx, userID, projectID, repository.MarkSave)
}

// toggle flips the mark and reports its new state: true when the mark is now
// set.
func (e *Engagement) toggle(ctx context.Context, userID, projectID uuid.UUID, kind string) (bool, error) {
	if userID == uuid.Nil {
		return false, ErrUnauthorized
	}
	if err := e.ensureProject(ctx, projectID); err != nil {
		return false, err
	}

	added, err := e.repo.AddMark(ctx, projectID, userID, kind)
	if err != nil {
		return false, ErrInternal
	}
	if added {
		return true, nil
	}

	if _, err := e.repo.RemoveMark(ctx, projectID, userID, kind); err != nil {
		return false, ErrInternal
	}
	return false, nil
}

func (e *Engagement) Get(ctx context.Context, projectID uuid.UUID) (project.Engagement, error) {
	if err := e.ensureProject(ctx, projectID); err != nil {
		return project.Engagement{}, err
	}
	eng, err := e.repo.Get(ctx, projectID)
	if err != nil {
		return project.Engagement{}, ErrInternal
	}
	return eng, nil
}

func (e *Engagement) ensureProject(ctx context.Context, projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return ErrNotFound
	}
	exists, err := e.projects.ExistsByID(ctx, projectID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}
