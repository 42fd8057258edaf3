package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"mylibrary-backend/internal/domains/author/model"
	"mylibrary-backend/pkg/cache"
)

const (
	authorCacheKeyPrefix  = "author:"
	authorListCachePrefix = "authors:list:"
	authorListCacheKey    = "authors:list:*"
	cacheTTL              = 15 * time.Minute

	// Author deletes cascade to books, so their cache entries have to go
	// with the author's. These mirror the book repository's keys.
	bookCacheKeyPrefix = "book:"
	bookListCacheKey   = "books:list:*"
)

// DB is the subset of pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	pool  DB
	cache cache.Cache
}

func NewPostgresRepository(pool DB, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (last_name, first_name, middle_name)
        VALUES ($1, $2, $3)
        RETURNING id, last_name, first_name, middle_name, created_at, updated_at
    `

	var created model.Author
	err := r.pool.QueryRow(ctx, query, a.LastName, a.FirstName, a.MiddleName).Scan(
		&created.ID,
		&created.LastName,
		&created.FirstName,
		&created.MiddleName,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	r.cache.DeletePattern(ctx, authorListCacheKey)

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `
        SELECT id, last_name, first_name, middle_name, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.LastName,
		&a.FirstName,
		&a.MiddleName,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	cacheKey := fmt.Sprintf("%s%d:%d", authorListCachePrefix, filter.Limit, filter.Offset)

	var cached []model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
        SELECT id, last_name, first_name, middle_name, created_at, updated_at
        FROM authors
        ORDER BY last_name, first_name
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(
			&a.ID,
			&a.LastName,
			&a.FirstName,
			&a.MiddleName,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	r.cache.Set(ctx, cacheKey, authors, cacheTTL)

	return authors, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET last_name = $1, first_name = $2, middle_name = $3, updated_at = NOW()
        WHERE id = $4
        RETURNING id, last_name, first_name, middle_name, created_at, updated_at
    `

	var updated model.Author
	err := r.pool.QueryRow(ctx, query, a.LastName, a.FirstName, a.MiddleName, a.ID).Scan(
		&updated.ID,
		&updated.LastName,
		&updated.FirstName,
		&updated.MiddleName,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.cache.Delete(ctx, authorCacheKeyPrefix+a.ID.String())
	r.cache.DeletePattern(ctx, authorListCacheKey)

	return &updated, nil
}

// Delete removes the author. Books referencing the author are removed by
// the ON DELETE CASCADE constraint, so their ids are collected first and
// their cache entries dropped along with the author's.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	bookIDs, err := r.bookIDs(ctx, id)
	if err != nil {
		return err
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	keys := []string{authorCacheKeyPrefix + id.String()}
	for _, bookID := range bookIDs {
		keys = append(keys, bookCacheKeyPrefix+bookID.String())
	}
	r.cache.Delete(ctx, keys...)
	r.cache.DeletePattern(ctx, authorListCacheKey)
	r.cache.DeletePattern(ctx, bookListCacheKey)

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

// bookIDs lists the ids of the author's books before the cascade removes
// the rows.
func (r *postgresRepository) bookIDs(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM books WHERE author_id = $1`, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author book ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan book id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book ids: %w", err)
	}

	return ids, nil
}
