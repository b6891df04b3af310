package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/category"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const categoryColumns = `id, name, url_handle, created_at`

type postgresRepository struct {
	pool     *pgxpool.Pool
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewPostgresRepository tạo repository instance
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, cacheTTL time.Duration) category.CategoryRepository {
	return &postgresRepository{
		pool:     pool,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) error {
	const query = `
		INSERT INTO categories (id, name, url_handle, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.URLHandle, c.CreatedAt); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// ========== QUERY: filter + sort + paging ==========

// buildListQuery tách riêng để test SQL sinh ra
func buildListQuery(q category.Query) (string, []any) {
	var (
		sb    strings.Builder
		args  []any
		where []string
	)

	sb.WriteString("SELECT " + categoryColumns + " FROM categories")

	if q.Filter != "" {
		args = append(args, utils.ContainsPattern(q.Filter))
		where = append(where, fmt.Sprintf(`name ILIKE $%d ESCAPE '\'`, len(args)))
	}
	if len(where) > 0 {
		sb.WriteString(" WHERE " + utils.JoinWithAnd(where))
	}

	direction := "DESC"
	if q.Ascending {
		direction = "ASC"
	}

	switch q.SortBy {
	case category.SortName:
		sb.WriteString(" ORDER BY name " + direction + ", id")
	case category.SortURLHandle:
		sb.WriteString(" ORDER BY url_handle " + direction + ", id")
	default:
		// thứ tự insert
		sb.WriteString(" ORDER BY created_at, id")
	}

	args = append(args, q.Offset(), q.Limit())
	fmt.Fprintf(&sb, " OFFSET $%d LIMIT $%d", len(args)-1, len(args))

	return sb.String(), args
}

func (r *postgresRepository) Query(ctx context.Context, q category.Query) ([]category.Category, error) {
	query, args := buildListQuery(q)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return categories, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// ========== READ: cache-aside ==========

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	key := cache.CategoryKey(id)

	var cached category.Category
	if found, err := r.cache.Get(ctx, key, &cached); err != nil {
		logger.Error("GetByID: cache get failed", err)
	} else if found {
		return &cached, nil
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if err := r.cache.Set(ctx, key, c, r.cacheTTL); err != nil {
		logger.Error("GetByID: cache set failed", err)
	}
	return &c, nil
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]category.Category, error) {
	if len(ids) == 0 {
		return []category.Category{}, nil
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ANY($1)`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories by ids: %w", err)
	}

	categories, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return categories, nil
}

// ========== WRITE ==========

func (r *postgresRepository) Update(ctx context.Context, c *category.Category) error {
	const query = `
		UPDATE categories
		SET name = $2, url_handle = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.URLHandle)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	r.invalidate(ctx, c.ID)
	return nil
}

// Delete: FK ON DELETE CASCADE xoá luôn post_categories
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `DELETE FROM categories WHERE id = $1 RETURNING ` + categoryColumns

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	deleted, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	r.invalidate(ctx, id)
	return &deleted, nil
}

// invalidate xoá cache category và mọi post (post nhúng category)
func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, cache.CategoryKey(id)); err != nil {
		logger.Error("invalidate: delete category cache failed", err)
	}
	if err := r.cache.DeletePattern(ctx, cache.PostPattern); err != nil {
		logger.Error("invalidate: delete post cache failed", err)
	}
}

func scanCategory(row pgx.CollectableRow) (category.Category, error) {
	var c category.Category
	err := row.Scan(&c.ID, &c.Name, &c.URLHandle, &c.CreatedAt)
	return c, err
}
