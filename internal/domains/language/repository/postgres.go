package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mylibrary-backend/internal/domains/language/model"
	"mylibrary-backend/pkg/cache"
)

const (
	languageCacheKeyPrefix  = "language:"
	languageListCachePrefix = "languages:list:"
	languageListCacheKey    = "languages:list:*"
	cacheTTL                = 15 * time.Minute

	pgForeignKeyViolation = "23503"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) Create(ctx context.Context, l *model.Language) (*model.Language, error) {
	query := `
        INSERT INTO languages (name)
        VALUES ($1)
        RETURNING id, name, created_at, updated_at
    `

	var created model.Language
	err := r.pool.QueryRow(ctx, query, l.Name).Scan(
		&created.ID,
		&created.Name,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create language: %w", err)
	}

	r.cache.DeletePattern(ctx, languageListCacheKey)

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Language, error) {
	cacheKey := languageCacheKeyPrefix + id.String()

	var l model.Language
	if found, err := r.cache.Get(ctx, cacheKey, &l); err == nil && found {
		return &l, nil
	}

	query := `SELECT id, name, created_at, updated_at FROM languages WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLanguageNotFound
		}
		return nil, fmt.Errorf("failed to get language by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &l, cacheTTL)

	return &l, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.LanguageFilter) ([]model.Language, error) {
	cacheKey := fmt.Sprintf("%s%d:%d", languageListCachePrefix, filter.Limit, filter.Offset)

	var cached []model.Language
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
        SELECT id, name, created_at, updated_at
        FROM languages
        ORDER BY name
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query languages: %w", err)
	}
	defer rows.Close()

	var languages []model.Language
	for rows.Next() {
		var l model.Language
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating languages: %w", err)
	}

	r.cache.Set(ctx, cacheKey, languages, cacheTTL)

	return languages, nil
}

func (r *postgresRepository) Update(ctx context.Context, l *model.Language) (*model.Language, error) {
	query := `
        UPDATE languages
        SET name = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING id, name, created_at, updated_at
    `

	var updated model.Language
	err := r.pool.QueryRow(ctx, query, l.Name, l.ID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLanguageNotFound
		}
		return nil, fmt.Errorf("failed to update language: %w", err)
	}

	r.cache.Delete(ctx, languageCacheKeyPrefix+l.ID.String())
	r.cache.DeletePattern(ctx, languageListCacheKey)

	return &updated, nil
}

// Delete removes the language. The books FK is ON DELETE RESTRICT, so the
// delete fails with ErrLanguageInUse while any book references it.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM languages WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return model.ErrLanguageInUse
		}
		return fmt.Errorf("failed to delete language: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrLanguageNotFound
	}

	r.cache.Delete(ctx, languageCacheKeyPrefix+id.String())
	r.cache.DeletePattern(ctx, languageListCacheKey)

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM languages WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check language existence: %w", err)
	}

	return exists, nil
}
