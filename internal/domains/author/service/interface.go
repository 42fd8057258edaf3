package service

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/author/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error)
	Patch(ctx context.Context, id uuid.UUID, req *model.PatchAuthorRequest) (*model.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
