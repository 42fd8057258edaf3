package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mylibrary-backend/internal/domains/follow/model"
	"mylibrary-backend/internal/policy"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, f *model.Follow) (*model.Follow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Follow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, filter model.FollowFilter) ([]model.Follow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Follow), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) ListFollowerEmails(ctx context.Context, authorID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestCreateForcesFollowerToActor(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	actorID := uuid.New()
	authorID := uuid.New()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(f *model.Follow) bool {
		return f.UserID == actorID && f.AuthorID == authorID
	})).Return(&model.Follow{ID: uuid.New(), UserID: actorID, AuthorID: authorID}, nil)

	created, err := svc.Create(context.Background(), policy.Actor{ID: actorID, Authenticated: true},
		&model.CreateFollowRequest{AuthorID: authorID.String()})

	assert.NoError(t, err)
	assert.Equal(t, actorID, created.UserID)
	repo.AssertExpectations(t)
}

func TestCreateDuplicateSurfacesAlreadyFollowing(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrAlreadyFollowing)

	_, err := svc.Create(context.Background(), policy.Actor{ID: uuid.New(), Authenticated: true},
		&model.CreateFollowRequest{AuthorID: uuid.NewString()})

	assert.ErrorIs(t, err, model.ErrAlreadyFollowing)
}

func TestGetByIDHidesOtherUsersFollows(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	followID := uuid.New()
	repo.On("GetByID", mock.Anything, followID).Return(&model.Follow{
		ID:     followID,
		UserID: uuid.New(), // someone else
	}, nil)

	_, err := svc.GetByID(context.Background(), policy.Actor{ID: uuid.New(), Authenticated: true}, followID)
	assert.ErrorIs(t, err, model.ErrFollowNotFound)
}

func TestListScopesToActor(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	actorID := uuid.New()
	repo.On("List", mock.Anything, mock.MatchedBy(func(f model.FollowFilter) bool {
		return f.UserID == actorID && f.Limit == defaultListLimit
	})).Return([]model.Follow{}, nil)

	_, err := svc.List(context.Background(), policy.Actor{ID: actorID, Authenticated: true}, 0, 0)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteOwnFollow(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	actorID := uuid.New()
	followID := uuid.New()

	repo.On("GetByID", mock.Anything, followID).Return(&model.Follow{ID: followID, UserID: actorID}, nil)
	repo.On("Delete", mock.Anything, followID).Return(nil)

	err := svc.Delete(context.Background(), policy.Actor{ID: actorID, Authenticated: true}, followID)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteOtherUsersFollowIsForbidden(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	followID := uuid.New()
	repo.On("GetByID", mock.Anything, followID).Return(&model.Follow{
		ID:     followID,
		UserID: uuid.New(),
	}, nil)

	err := svc.Delete(context.Background(), policy.Actor{ID: uuid.New(), Authenticated: true}, followID)
	assert.ErrorIs(t, err, model.ErrNotOwner)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
