package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mylibrary-backend/internal/domains/follow/model"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, f *model.Follow) (*model.Follow, error) {
	query := `
        INSERT INTO follows (user_id, author_id)
        VALUES ($1, $2)
        RETURNING id, user_id, author_id, created_at
    `

	var created model.Follow
	err := r.pool.QueryRow(ctx, query, f.UserID, f.AuthorID).Scan(
		&created.ID,
		&created.UserID,
		&created.AuthorID,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == pgUniqueViolation:
				return nil, model.ErrAlreadyFollowing
			case pgErr.Code == pgForeignKeyViolation && strings.Contains(pgErr.ConstraintName, "author"):
				return nil, model.ErrAuthorNotFound
			}
		}
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Follow, error) {
	query := `
        SELECT id, user_id, author_id, created_at
        FROM follows
        WHERE id = $1
    `

	var f model.Follow
	err := r.pool.QueryRow(ctx, query, id).Scan(&f.ID, &f.UserID, &f.AuthorID, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrFollowNotFound
		}
		return nil, fmt.Errorf("failed to get follow by id: %w", err)
	}

	return &f, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.FollowFilter) ([]model.Follow, error) {
	query := `
        SELECT id, user_id, author_id, created_at
        FROM follows
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `

	rows, err := r.pool.Query(ctx, query, filter.UserID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query follows: %w", err)
	}
	defer rows.Close()

	var follows []model.Follow
	for rows.Next() {
		var f model.Follow
		if err := rows.Scan(&f.ID, &f.UserID, &f.AuthorID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan follow: %w", err)
		}
		follows = append(follows, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follows: %w", err)
	}

	return follows, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM follows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrFollowNotFound
	}

	return nil
}

func (r *postgresRepository) ListFollowerEmails(ctx context.Context, authorID uuid.UUID) ([]string, error) {
	query := `
        SELECT DISTINCT u.email
        FROM follows f
        JOIN users u ON u.id = f.user_id
        WHERE f.author_id = $1
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query follower emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan follower email: %w", err)
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follower emails: %w", err)
	}

	return emails, nil
}
