package service

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/language/model"
	"mylibrary-backend/internal/domains/language/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type languageService struct {
	repo repository.RepositoryInterface
}

func NewLanguageService(repo repository.RepositoryInterface) ServiceInterface {
	return &languageService{repo: repo}
}

func (s *languageService) Create(ctx context.Context, req *model.CreateLanguageRequest) (*model.Language, error) {
	return s.repo.Create(ctx, &model.Language{Name: req.Name})
}

func (s *languageService) GetByID(ctx context.Context, id uuid.UUID) (*model.Language, error) {
	if id == uuid.Nil {
		return nil, model.ErrLanguageNotFound
	}

	return s.repo.GetByID(ctx, id)
}

func (s *languageService) List(ctx context.Context, filter model.LanguageFilter) ([]model.Language, error) {
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

func (s *languageService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateLanguageRequest) (*model.Language, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = req.Name

	return s.repo.Update(ctx, current)
}

func (s *languageService) Patch(ctx context.Context, id uuid.UUID, req *model.PatchLanguageRequest) (*model.Language, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}

	return s.repo.Update(ctx, current)
}

func (s *languageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
