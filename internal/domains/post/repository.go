package post

import (
	"context"

	"github.com/google/uuid"
)

// PostRepository: tên method nói rõ có load categories hay không
type PostRepository interface {
	// Create insert post và join rows trong cùng một transaction
	Create(ctx context.Context, p *Post) error
	ListWithCategories(ctx context.Context) ([]Post, error)
	GetByIDWithCategories(ctx context.Context, id uuid.UUID) (*Post, error)
	GetByIDShallow(ctx context.Context, id uuid.UUID) (*Post, error)
	GetByURLHandleWithCategories(ctx context.Context, urlHandle string) (*Post, error)
	// Update overwrite scalars, chỉ thêm join rows cho addCategoryIDs
	Update(ctx context.Context, p *Post, addCategoryIDs []uuid.UUID) error
	// Delete trả về record đã xoá kèm categories
	Delete(ctx context.Context, id uuid.UUID) (*Post, error)
}
