package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/book/model"
	"mylibrary-backend/internal/domains/book/repository"
	"mylibrary-backend/internal/policy"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type bookService struct {
	repo      repository.RepositoryInterface
	authors   AuthorChecker
	languages LanguageChecker
	notifier  Notifier
	now       func() time.Time
}

func NewBookService(repo repository.RepositoryInterface, authors AuthorChecker, languages LanguageChecker, notifier Notifier) ServiceInterface {
	return &bookService{
		repo:      repo,
		authors:   authors,
		languages: languages,
		notifier:  notifier,
		now:       time.Now,
	}
}

// NewBookServiceWithClock exists for tests that need a fixed year.
func NewBookServiceWithClock(repo repository.RepositoryInterface, authors AuthorChecker, languages LanguageChecker, notifier Notifier, now func() time.Time) ServiceInterface {
	return &bookService{
		repo:      repo,
		authors:   authors,
		languages: languages,
		notifier:  notifier,
		now:       now,
	}
}

// checkReferences verifies the author and language the book points at.
// The repository still translates FK violations, covering rows that
// vanish between the check and the write.
func (s *bookService) checkReferences(ctx context.Context, b *model.Book) error {
	exists, err := s.authors.ExistsByID(ctx, b.AuthorID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrAuthorNotFound
	}

	exists, err = s.languages.ExistsByID(ctx, b.LanguageID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrLanguageNotFound
	}

	return nil
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	b := req.ToEntity()
	if err := s.checkReferences(ctx, b); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.BookPublished(ctx, created)
	}

	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*model.Book, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookNotFound
	}

	return s.repo.GetByID(ctx, id, model.VisibilityFor(actor.IsStaff, s.now()))
}

func (s *bookService) List(ctx context.Context, actor policy.Actor, opts ListOptions) ([]model.Book, error) {
	filter := model.BookFilter{
		Visibility:  model.VisibilityFor(actor.IsStaff, s.now()),
		SearchTerms: model.ParseSearchTerms(opts.Search),
		AuthorID:    opts.AuthorID,
		LanguageID:  opts.LanguageID,
		Limit:       opts.Limit,
		Offset:      opts.Offset,
	}

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

// Update is a full replacement. Staff-only, so no visibility narrowing
// on the preliminary read.
func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.Book, error) {
	current, err := s.repo.GetByID(ctx, id, model.Visibility{All: true})
	if err != nil {
		return nil, err
	}

	current.Name = req.Name
	current.PublicationYear = req.PublicationYear
	current.AuthorID = uuid.MustParse(req.AuthorID)
	current.LanguageID = uuid.MustParse(req.LanguageID)

	if err := s.checkReferences(ctx, current); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, current)
}

func (s *bookService) Patch(ctx context.Context, id uuid.UUID, req *model.PatchBookRequest) (*model.Book, error) {
	current, err := s.repo.GetByID(ctx, id, model.Visibility{All: true})
	if err != nil {
		return nil, err
	}

	req.ApplyTo(current)

	if err := s.checkReferences(ctx, current); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, current)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
