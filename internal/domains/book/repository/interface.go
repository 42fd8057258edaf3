package repository

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/book/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// GetByID applies the visibility rule: a book hidden from the caller
	// is reported as ErrBookNotFound, exactly like a missing one.
	GetByID(ctx context.Context, id uuid.UUID, vis model.Visibility) (*model.Book, error)

	List(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	Update(ctx context.Context, b *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
