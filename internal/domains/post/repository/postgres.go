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

	"blog-backend/internal/domains/category"
	"blog-backend/internal/domains/post"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/database"
	"blog-backend/pkg/logger"
)

const (
	pgUniqueViolation = "23505"
	urlHandleIndex    = "uq_blog_posts_url_handle"

	postColumns = `id, title, short_description, content, cover_image_url, url_handle,
		author, is_visible, published_date, created_at, updated_at`
)

// querier: *pgxpool.Pool và pgx.Tx đều thoả mãn
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type postgresRepository struct {
	pool     *pgxpool.Pool
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, cacheTTL time.Duration) post.PostRepository {
	return &postgresRepository{
		pool:     pool,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// ========== CREATE ==========

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) error {
	const insertPost = `
		INSERT INTO blog_posts (
			id, title, short_description, content, cover_image_url, url_handle,
			author, is_visible, published_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insertPost,
			p.ID, p.Title, p.ShortDescription, p.Content, p.CoverImageURL, p.URLHandle,
			p.Author, p.IsVisible, p.PublishedDate, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return mapWriteError(err)
		}
		return linkCategories(ctx, tx, p.ID, p.CategoryIDs())
	})
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	r.invalidate(ctx)
	return nil
}

// ========== READ ==========

func (r *postgresRepository) ListWithCategories(ctx context.Context) ([]post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts ORDER BY published_date DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	posts, err := pgx.CollectRows(rows, scanPost)
	if err != nil {
		return nil, fmt.Errorf("failed to scan posts: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	byPost, err := loadCategories(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Categories = categoriesOrEmpty(byPost[posts[i].ID])
	}
	return posts, nil
}

func (r *postgresRepository) GetByIDWithCategories(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return r.cachedOne(ctx, cache.PostByIDKey(id), `id = $1`, id)
}

func (r *postgresRepository) GetByURLHandleWithCategories(ctx context.Context, urlHandle string) (*post.Post, error) {
	return r.cachedOne(ctx, cache.PostBySlugKey(urlHandle), `url_handle = $1`, urlHandle)
}

func (r *postgresRepository) GetByIDShallow(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return getOne(ctx, r.pool, `id = $1`, id)
}

// cachedOne: cache-aside cho lookup một post kèm categories
func (r *postgresRepository) cachedOne(ctx context.Context, key, where string, arg any) (*post.Post, error) {
	var cached post.Post
	if found, err := r.cache.Get(ctx, key, &cached); err != nil {
		logger.Error("post: cache get failed", err)
	} else if found {
		return &cached, nil
	}

	p, err := getOne(ctx, r.pool, where, arg)
	if err != nil {
		return nil, err
	}
	byPost, err := loadCategories(ctx, r.pool, []uuid.UUID{p.ID})
	if err != nil {
		return nil, err
	}
	p.Categories = categoriesOrEmpty(byPost[p.ID])

	if err := r.cache.Set(ctx, key, p, r.cacheTTL); err != nil {
		logger.Error("post: cache set failed", err)
	}
	return p, nil
}

// ========== UPDATE ==========

func (r *postgresRepository) Update(ctx context.Context, p *post.Post, addCategoryIDs []uuid.UUID) error {
	const updatePost = `
		UPDATE blog_posts
		SET title = $2, short_description = $3, content = $4, cover_image_url = $5,
			url_handle = $6, author = $7, is_visible = $8, published_date = $9, updated_at = $10
		WHERE id = $1
	`

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updatePost,
			p.ID, p.Title, p.ShortDescription, p.Content, p.CoverImageURL,
			p.URLHandle, p.Author, p.IsVisible, p.PublishedDate, p.UpdatedAt,
		)
		if err != nil {
			return mapWriteError(err)
		}
		if tag.RowsAffected() == 0 {
			return post.ErrPostNotFound
		}
		return linkCategories(ctx, tx, p.ID, addCategoryIDs)
	})
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	r.invalidate(ctx)
	return nil
}

// ========== DELETE ==========

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	deleted, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*post.Post, error) {
		p, err := getOne(ctx, tx, `id = $1 FOR UPDATE`, id)
		if err != nil {
			return nil, err
		}
		byPost, err := loadCategories(ctx, tx, []uuid.UUID{id})
		if err != nil {
			return nil, err
		}
		p.Categories = categoriesOrEmpty(byPost[id])

		if _, err := tx.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id); err != nil {
			return nil, err
		}
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	r.invalidate(ctx)
	return deleted, nil
}

// ========== HELPERS ==========

func getOne(ctx context.Context, q querier, where string, arg any) (*post.Post, error) {
	rows, err := q.Query(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE `+where, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &p, nil
}

// loadCategories: một query cho mọi post, tránh N+1
func loadCategories(ctx context.Context, q querier, postIDs []uuid.UUID) (map[uuid.UUID][]category.Category, error) {
	out := make(map[uuid.UUID][]category.Category, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}

	const query = `
		SELECT pc.post_id, c.id, c.name, c.url_handle, c.created_at
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id = ANY($1)
		ORDER BY c.name, c.id
	`

	rows, err := q.Query(ctx, query, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load post categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID uuid.UUID
			c      category.Category
		)
		if err := rows.Scan(&postID, &c.ID, &c.Name, &c.URLHandle, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post category: %w", err)
		}
		out[postID] = append(out[postID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load post categories: %w", err)
	}
	return out, nil
}

// linkCategories chỉ insert, không bao giờ xoá. Category đã bị xoá giữa chừng được bỏ qua.
func linkCategories(ctx context.Context, tx pgx.Tx, postID uuid.UUID, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	const query = `
		INSERT INTO post_categories (post_id, category_id)
		SELECT $1, c.id FROM categories c WHERE c.id = ANY($2)
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.Exec(ctx, query, postID, categoryIDs); err != nil {
		return fmt.Errorf("failed to link categories: %w", err)
	}
	return nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == urlHandleIndex {
		return post.ErrDuplicateURLHandle
	}
	return err
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, cache.PostPattern); err != nil {
		logger.Error("post: invalidate cache failed", err)
	}
}

func categoriesOrEmpty(c []category.Category) []category.Category {
	if c == nil {
		return []category.Category{}
	}
	return c
}

func scanPost(row pgx.CollectableRow) (post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.ShortDescription, &p.Content, &p.CoverImageURL, &p.URLHandle,
		&p.Author, &p.IsVisible, &p.PublishedDate, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
