package repository

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/follow/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, f *model.Follow) (*model.Follow, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Follow, error)
	List(ctx context.Context, filter model.FollowFilter) ([]model.Follow, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListFollowerEmails returns the distinct email addresses of every
	// user following the author. Used by the notification pipeline.
	ListFollowerEmails(ctx context.Context, authorID uuid.UUID) ([]string, error)
}
