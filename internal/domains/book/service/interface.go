package service

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/book/model"
	"mylibrary-backend/internal/policy"
)

// Notifier is told about every newly created book; it decides whether
// anyone needs to hear about it.
type Notifier interface {
	BookPublished(ctx context.Context, b *model.Book)
}

// AuthorChecker and LanguageChecker confirm the rows a book references
// before the write reaches the database. The author and language
// repositories satisfy them.
type AuthorChecker interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type LanguageChecker interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// ListOptions is what the list endpoint accepts from the caller; the
// service derives the actual repository filter from it plus the actor.
type ListOptions struct {
	Search     string
	AuthorID   *uuid.UUID
	LanguageID *uuid.UUID
	Limit      int
	Offset     int
}

type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*model.Book, error)
	List(ctx context.Context, actor policy.Actor, opts ListOptions) ([]model.Book, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.Book, error)
	Patch(ctx context.Context, id uuid.UUID, req *model.PatchBookRequest) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
