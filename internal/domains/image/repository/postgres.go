package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/image"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) image.ImageRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, img *image.Image) error {
	const query = `
		INSERT INTO images (id, file_name, file_extension, title, url, date_created)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		img.ID, img.FileName, img.FileExtension, img.Title, img.URL, img.DateCreated,
	)
	if err != nil {
		return fmt.Errorf("failed to insert image: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]image.Image, error) {
	const query = `
		SELECT id, file_name, file_extension, title, url, date_created
		FROM images
		ORDER BY date_created DESC, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	images, err := pgx.CollectRows(rows, pgx.RowToStructByPos[image.Image])
	if err != nil {
		return nil, fmt.Errorf("failed to scan images: %w", err)
	}
	return images, nil
}
