package repository

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/user/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
