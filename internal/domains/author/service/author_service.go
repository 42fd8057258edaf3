package service

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/author/model"
	"mylibrary-backend/internal/domains/author/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}

	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.List(ctx, filter)
}

// Update is a full replacement: every field takes the request value.
func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.LastName = req.LastName
	current.FirstName = req.FirstName
	current.MiddleName = req.MiddleName

	return s.repo.Update(ctx, current)
}

// Patch applies only the fields present in the request.
func (s *authorService) Patch(ctx context.Context, id uuid.UUID, req *model.PatchAuthorRequest) (*model.Author, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(current)

	return s.repo.Update(ctx, current)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
