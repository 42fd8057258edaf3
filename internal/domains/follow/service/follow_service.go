package service

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/follow/model"
	"mylibrary-backend/internal/domains/follow/repository"
	"mylibrary-backend/internal/policy"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type followService struct {
	repo repository.RepositoryInterface
}

func NewFollowService(repo repository.RepositoryInterface) ServiceInterface {
	return &followService{repo: repo}
}

// Create ignores any attempt to follow on another user's behalf: the
// follower is always the actor.
func (s *followService) Create(ctx context.Context, actor policy.Actor, req *model.CreateFollowRequest) (*model.Follow, error) {
	return s.repo.Create(ctx, req.ToEntity(actor.ID))
}

func (s *followService) GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*model.Follow, error) {
	if id == uuid.Nil {
		return nil, model.ErrFollowNotFound
	}

	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Other users' follows read as missing, not forbidden.
	if f.UserID != actor.ID {
		return nil, model.ErrFollowNotFound
	}

	return f, nil
}

func (s *followService) List(ctx context.Context, actor policy.Actor, limit, offset int) ([]model.Follow, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.List(ctx, model.FollowFilter{
		UserID: actor.ID,
		Limit:  limit,
		Offset: offset,
	})
}

// Delete refuses to remove another user's follow. Unlike reads, the
// rejection is explicit: the caller clearly targeted a row they do not
// own, and gets a 403 rather than a 404.
func (s *followService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if f.UserID != actor.ID {
		return model.ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}
