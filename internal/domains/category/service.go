package category

import (
	"context"

	"github.com/google/uuid"
)

type CategoryService interface {
	Create(ctx context.Context, req *CreateCategoryReq) (*CategoryResp, error)
	Query(ctx context.Context, q Query) ([]CategoryResp, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryResp, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryReq) (*CategoryResp, error)
	Delete(ctx context.Context, id uuid.UUID) (*CategoryResp, error)

	// Resolve dùng bởi post service: dedupe, bỏ id không tồn tại
	Resolve(ctx context.Context, ids []uuid.UUID) ([]Category, error)
}
