package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mylibrary-backend/internal/domains/user/model"
)

const pgUniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
        INSERT INTO users (username, email, password_hash, first_name, middle_name, last_name, is_staff)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, username, email, password_hash, first_name, middle_name, last_name, is_staff, created_at, updated_at
    `

	var created model.User
	err := r.pool.QueryRow(ctx, query,
		u.Username, u.Email, u.PasswordHash, u.FirstName, u.MiddleName, u.LastName, u.IsStaff,
	).Scan(
		&created.ID,
		&created.Username,
		&created.Email,
		&created.PasswordHash,
		&created.FirstName,
		&created.MiddleName,
		&created.LastName,
		&created.IsStaff,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, model.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getBy(ctx, "username = $1", username)
}

func (r *postgresRepository) getBy(ctx context.Context, where string, arg interface{}) (*model.User, error) {
	query := `
        SELECT id, username, email, password_hash, first_name, middle_name, last_name, is_staff, created_at, updated_at
        FROM users
        WHERE ` + where

	var u model.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.MiddleName,
		&u.LastName,
		&u.IsStaff,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
