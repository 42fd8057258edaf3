package service

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/follow/model"
	"mylibrary-backend/internal/policy"
)

// Every operation is scoped to the acting user: follows belonging to
// other users are invisible on reads and protected on delete.
type ServiceInterface interface {
	Create(ctx context.Context, actor policy.Actor, req *model.CreateFollowRequest) (*model.Follow, error)
	GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*model.Follow, error)
	List(ctx context.Context, actor policy.Actor, limit, offset int) ([]model.Follow, error)
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}
