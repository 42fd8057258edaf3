package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mylibrary-backend/internal/domains/book/model"
	"mylibrary-backend/internal/policy"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID, vis model.Visibility) (*model.Book, error) {
	args := m.Called(ctx, id, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) BookPublished(ctx context.Context, b *model.Book) {
	m.Called(ctx, b)
}

type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// okChecker reports every id as existing, for tests that are not about
// reference validation.
type okChecker struct{}

func (okChecker) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return true, nil
}

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestListUsesStaffVisibility(t *testing.T) {
	repo := new(mockRepository)
	svc := NewBookServiceWithClock(repo, okChecker{}, okChecker{}, nil, fixedClock(2026))

	repo.On("List", mock.Anything, mock.MatchedBy(func(f model.BookFilter) bool {
		return f.Visibility.All
	})).Return([]model.Book{}, nil)

	_, err := svc.List(context.Background(), policy.Actor{IsStaff: true, Authenticated: true}, ListOptions{})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListCapsReaderVisibilityAtCurrentYear(t *testing.T) {
	repo := new(mockRepository)
	svc := NewBookServiceWithClock(repo, okChecker{}, okChecker{}, nil, fixedClock(2026))

	repo.On("List", mock.Anything, mock.MatchedBy(func(f model.BookFilter) bool {
		return !f.Visibility.All && f.Visibility.MaxYear == 2026
	})).Return([]model.Book{}, nil)

	_, err := svc.List(context.Background(), policy.Actor{Authenticated: true}, ListOptions{})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListSplitsSearchIntoTerms(t *testing.T) {
	repo := new(mockRepository)
	svc := NewBookServiceWithClock(repo, okChecker{}, okChecker{}, nil, fixedClock(2026))

	repo.On("List", mock.Anything, mock.MatchedBy(func(f model.BookFilter) bool {
		return len(f.SearchTerms) == 2 && f.SearchTerms[0] == "war" && f.SearchTerms[1] == "tolstoy"
	})).Return([]model.Book{}, nil)

	_, err := svc.List(context.Background(), policy.Actor{Authenticated: true}, ListOptions{Search: "war, tolstoy"})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListClampsPagination(t *testing.T) {
	repo := new(mockRepository)
	svc := NewBookServiceWithClock(repo, okChecker{}, okChecker{}, nil, fixedClock(2026))

	repo.On("List", mock.Anything, mock.MatchedBy(func(f model.BookFilter) bool {
		return f.Limit == maxListLimit && f.Offset == 0
	})).Return([]model.Book{}, nil)

	_, err := svc.List(context.Background(), policy.Actor{Authenticated: true}, ListOptions{Limit: 10000, Offset: -3})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetByIDUsesActorVisibility(t *testing.T) {
	repo := new(mockRepository)
	svc := NewBookServiceWithClock(repo, okChecker{}, okChecker{}, nil, fixedClock(2026))

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id, model.Visibility{MaxYear: 2026}).
		Return(nil, model.ErrBookNotFound)

	_, err := svc.GetByID(context.Background(), policy.Actor{Authenticated: true}, id)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
	repo.AssertExpectations(t)
}

func TestCreateNotifiesAfterPersist(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewBookServiceWithClock(repo, okChecker{}, okChecker{}, notifier, fixedClock(2026))

	created := &model.Book{
		ID:              uuid.New(),
		Name:            "Emma",
		PublicationYear: 2026,
		AuthorID:        uuid.New(),
		LanguageID:      uuid.New(),
	}

	repo.On("Create", mock.Anything, mock.Anything).Return(created, nil)
	notifier.On("BookPublished", mock.Anything, created).Return()

	got, err := svc.Create(context.Background(), &model.CreateBookRequest{
		Name:            "Emma",
		PublicationYear: 2026,
		AuthorID:        created.AuthorID.String(),
		LanguageID:      created.LanguageID.String(),
	})

	assert.NoError(t, err)
	assert.Equal(t, created, got)
	notifier.AssertNumberOfCalls(t, "BookPublished", 1)
}

func TestCreateDoesNotNotifyOnFailure(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewBookServiceWithClock(repo, okChecker{}, okChecker{}, notifier, fixedClock(2026))

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrAuthorNotFound)

	_, err := svc.Create(context.Background(), &model.CreateBookRequest{
		Name:            "Orphan",
		PublicationYear: 2000,
		AuthorID:        uuid.NewString(),
		LanguageID:      uuid.NewString(),
	})

	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	notifier.AssertNotCalled(t, "BookPublished", mock.Anything, mock.Anything)
}

func TestCreateRejectsUnknownAuthor(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	authors := new(mockChecker)
	svc := NewBookServiceWithClock(repo, authors, okChecker{}, notifier, fixedClock(2026))

	authors.On("ExistsByID", mock.Anything, mock.Anything).Return(false, nil)

	_, err := svc.Create(context.Background(), &model.CreateBookRequest{
		Name:            "Orphan",
		PublicationYear: 2000,
		AuthorID:        uuid.NewString(),
		LanguageID:      uuid.NewString(),
	})

	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "BookPublished", mock.Anything, mock.Anything)
}

func TestCreateRejectsUnknownLanguage(t *testing.T) {
	repo := new(mockRepository)
	languages := new(mockChecker)
	svc := NewBookServiceWithClock(repo, okChecker{}, languages, nil, fixedClock(2026))

	languages.On("ExistsByID", mock.Anything, mock.Anything).Return(false, nil)

	_, err := svc.Create(context.Background(), &model.CreateBookRequest{
		Name:            "Untranslated",
		PublicationYear: 2000,
		AuthorID:        uuid.NewString(),
		LanguageID:      uuid.NewString(),
	})

	assert.ErrorIs(t, err, model.ErrLanguageNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateRejectsUnknownLanguage(t *testing.T) {
	repo := new(mockRepository)
	languages := new(mockChecker)
	svc := NewBookServiceWithClock(repo, okChecker{}, languages, nil, fixedClock(2026))

	current := &model.Book{
		ID:              uuid.New(),
		Name:            "Emma",
		PublicationYear: 2000,
		AuthorID:        uuid.New(),
		LanguageID:      uuid.New(),
	}

	repo.On("GetByID", mock.Anything, current.ID, model.Visibility{All: true}).Return(current, nil)
	languages.On("ExistsByID", mock.Anything, mock.Anything).Return(false, nil)

	_, err := svc.Update(context.Background(), current.ID, &model.UpdateBookRequest{
		Name:            "Emma",
		PublicationYear: 2000,
		AuthorID:        current.AuthorID.String(),
		LanguageID:      uuid.NewString(),
	})

	assert.ErrorIs(t, err, model.ErrLanguageNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
