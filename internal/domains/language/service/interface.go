package service

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/language/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateLanguageRequest) (*model.Language, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Language, error)
	List(ctx context.Context, filter model.LanguageFilter) ([]model.Language, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateLanguageRequest) (*model.Language, error)
	Patch(ctx context.Context, id uuid.UUID, req *model.PatchLanguageRequest) (*model.Language, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
