package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"venturehive/internal/domain/project"
	"venturehive/internal/repository"

	"github.com/google/uuid"
)

const maxCommentLength = 4000

type CommentUsecase interface {
	Add(ctx context.Context, authorID, projectID uuid.UUID, body string) (project.Comment, error)
	List(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]project.Comment, error)
	Delete(ctx context.Context, requesterID, commentID uuid.UUID) error
}

type Comments struct {
	comments repository.CommentRepository
	projects repository.ProjectRepository
}

func NewCommentUsecase(comments repository.CommentRepository, projects repository.ProjectRepository) *Comments {
	return &Comments{comments: comments, projects: projects}
}

func (c *Comments) Add(ctx context.Context, authorID, projectID uuid.UUID, body string) (project.Comment, error) {
	if authorID == uuid.Nil {
		return project.Comment{}, ErrUnauthorized
	}
	body = strings.TrimSpace(body)
	if body == "" || len(body) > maxCommentLength {
		return project.Comment{}, ErrInvalidInput
	}

	exists, err := c.projects.ExistsByID(ctx, projectID)
	if err != nil {
		return project.Comment{}, ErrInternal
	}
	if !exists {
		return project.Comment{}, ErrNotFound
	}

	comment := project.Comment{
		ID:        uuid.New(),
		ProjectID: projectID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.comments.Create(ctx, comment); err != nil {
		return project.Comment{}, ErrInternal
	}
	return comment, nil
}

func (c *Comments) List(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]project.Comment, error) {
	if projectID == uuid.Nil {
		return nil, ErrNotFound
	}
	items, err := c.comments.ListByProject(ctx, projectID, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (c *Comments) Delete(ctx context.Context, requesterID, commentID uuid.UUID) error {
	if requesterID == uuid.Nil {
		return ErrUnauthorized
	}

	comment, err := c.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if comment.AuthorID != requesterID {
		return ErrForbidden
	}

	if err := c.comments.Delete(ctx, commentID); err != nil {
		return ErrInternal
	}
	return nil
}
