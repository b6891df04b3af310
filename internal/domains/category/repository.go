package category

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository định nghĩa data access cho categories
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error

	// Query áp dụng filter/sort/paging, Count bỏ qua mọi filter
	Query(ctx context.Context, q Query) ([]Category, error)
	Count(ctx context.Context) (int, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// GetByIDs trả các category tồn tại, id không có thì bỏ qua
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Category, error)

	Update(ctx context.Context, c *Category) error

	// Delete xoá category và các post_categories tham chiếu tới nó
	Delete(ctx context.Context, id uuid.UUID) (*Category, error)
}
