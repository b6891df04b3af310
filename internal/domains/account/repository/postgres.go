package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/account"
	"blog-backend/internal/shared/access"
)

const pgUniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) account.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *account.Account) error {
	const query = `
		INSERT INTO accounts (id, email, normalized_email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.Email,
		account.NormalizeEmail(a.Email),
		a.PasswordHash,
		a.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return account.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	const query = `
		SELECT a.id, a.email, a.password_hash, a.created_at,
		       COALESCE(array_agg(ar.role ORDER BY ar.role) FILTER (WHERE ar.role IS NOT NULL), '{}')
		FROM accounts a
		LEFT JOIN account_roles ar ON ar.account_id = a.id
		WHERE a.normalized_email = $1
		GROUP BY a.id
	`

	var (
		a     account.Account
		roles []string
	)
	err := r.pool.QueryRow(ctx, query, account.NormalizeEmail(email)).Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
		&roles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	a.Roles = make([]access.Role, 0, len(roles))
	for _, role := range roles {
		a.Roles = append(a.Roles, access.Role(role))
	}
	return &a, nil
}

func (r *postgresRepository) AddRoles(ctx context.Context, accountID uuid.UUID, roles ...access.Role) error {
	if len(roles) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, role := range roles {
		batch.Queue(`
			INSERT INTO account_roles (account_id, role)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, accountID, role.String())
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to add roles: %w", err)
	}
	return nil
}
