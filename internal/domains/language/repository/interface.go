package repository

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/language/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, l *model.Language) (*model.Language, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Language, error)
	List(ctx context.Context, filter model.LanguageFilter) ([]model.Language, error)
	Update(ctx context.Context, l *model.Language) (*model.Language, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
