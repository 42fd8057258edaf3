package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mylibrary-backend/internal/domains/book/model"
	"mylibrary-backend/pkg/cache"
)

const (
	bookCacheKeyPrefix  = "book:"
	bookListCachePrefix = "books:list:"
	bookListCacheKey    = "books:list:*"
	cacheTTL            = 15 * time.Minute

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

// translateFKError maps FK violations on create/update to field-level
// domain errors so the handler can report them as validation problems.
func translateFKError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolation {
		return err
	}

	if strings.Contains(pgErr.ConstraintName, "author") {
		return model.ErrAuthorNotFound
	}
	if strings.Contains(pgErr.ConstraintName, "language") {
		return model.ErrLanguageNotFound
	}

	return err
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (name, publication_year, author_id, language_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, publication_year, author_id, language_id, created_at, updated_at
    `

	var created model.Book
	err := r.pool.QueryRow(ctx, query, b.Name, b.PublicationYear, b.AuthorID, b.LanguageID).Scan(
		&created.ID,
		&created.Name,
		&created.PublicationYear,
		&created.AuthorID,
		&created.LanguageID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if fkErr := translateFKError(err); fkErr != err {
			return nil, fkErr
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	r.cache.DeletePattern(ctx, bookListCacheKey)

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID, vis model.Visibility) (*model.Book, error) {
	// Visibility is part of the lookup itself: hidden rows scan as
	// missing, so existence of future-dated books is never leaked.
	// Cached copies are still checked against the caller's visibility.
	cacheKey := bookCacheKeyPrefix + id.String()

	var b model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		if vis.Hides(b.PublicationYear) {
			return nil, model.ErrBookNotFound
		}
		return &b, nil
	}

	query := `
        SELECT id, name, publication_year, author_id, language_id, created_at, updated_at
        FROM books
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Name,
		&b.PublicationYear,
		&b.AuthorID,
		&b.LanguageID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &b, cacheTTL)

	if vis.Hides(b.PublicationYear) {
		return nil, model.ErrBookNotFound
	}

	return &b, nil
}

// listCacheKey encodes every filter dimension, visibility included, so
// actors with different visible sets never share a cached page.
func listCacheKey(f model.BookFilter) string {
	visibility := "all"
	if !f.Visibility.All {
		visibility = strconv.Itoa(f.Visibility.MaxYear)
	}

	author, language := "", ""
	if f.AuthorID != nil {
		author = f.AuthorID.String()
	}
	if f.LanguageID != nil {
		language = f.LanguageID.String()
	}

	return fmt.Sprintf("%s%s:%s:%s:%s:%d:%d",
		bookListCachePrefix, visibility, strings.Join(f.SearchTerms, ","), author, language, f.Limit, f.Offset)
}

// List narrows by visibility first, then search terms (each term must
// match book name or author first/last name), then the equality filters.
func (r *postgresRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	cacheKey := listCacheKey(filter)

	var cached []model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	var qb strings.Builder
	qb.WriteString(`
        SELECT b.id, b.name, b.publication_year, b.author_id, b.language_id, b.created_at, b.updated_at
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	if !filter.Visibility.All {
		qb.WriteString(fmt.Sprintf(" AND b.publication_year <= $%d", argPos))
		args = append(args, filter.Visibility.MaxYear)
		argPos++
	}

	for _, term := range filter.SearchTerms {
		qb.WriteString(fmt.Sprintf(
			" AND (b.name ILIKE $%d OR a.last_name ILIKE $%d OR a.first_name ILIKE $%d)",
			argPos, argPos, argPos,
		))
		args = append(args, "%"+escapeWildcards(term)+"%")
		argPos++
	}

	if filter.AuthorID != nil {
		qb.WriteString(fmt.Sprintf(" AND b.author_id = $%d", argPos))
		args = append(args, *filter.AuthorID)
		argPos++
	}

	if filter.LanguageID != nil {
		qb.WriteString(fmt.Sprintf(" AND b.language_id = $%d", argPos))
		args = append(args, *filter.LanguageID)
		argPos++
	}

	qb.WriteString(" ORDER BY b.name")
	qb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.PublicationYear,
			&b.AuthorID,
			&b.LanguageID,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	r.cache.Set(ctx, cacheKey, books, cacheTTL)

	return books, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        UPDATE books
        SET name = $1, publication_year = $2, author_id = $3, language_id = $4, updated_at = NOW()
        WHERE id = $5
        RETURNING id, name, publication_year, author_id, language_id, created_at, updated_at
    `

	var updated model.Book
	err := r.pool.QueryRow(ctx, query, b.Name, b.PublicationYear, b.AuthorID, b.LanguageID, b.ID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.PublicationYear,
		&updated.AuthorID,
		&updated.LanguageID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		if fkErr := translateFKError(err); fkErr != err {
			return nil, fkErr
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	r.cache.Delete(ctx, bookCacheKeyPrefix+b.ID.String())
	r.cache.DeletePattern(ctx, bookListCacheKey)

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())
	r.cache.DeletePattern(ctx, bookListCacheKey)

	return nil
}

// escapeWildcards keeps user-supplied search terms from injecting ILIKE
// metacharacters.
func escapeWildcards(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
