package post

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/category"
)

type PostService interface {
	Create(ctx context.Context, req *CreatePostReq) (*PostResp, error)
	List(ctx context.Context) ([]PostResp, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PostResp, error)
	GetByURLHandle(ctx context.Context, urlHandle string) (*PostResp, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdatePostReq) (*PostResp, error)
	Delete(ctx context.Context, id uuid.UUID) (*PostResp, error)
}

// CategoryResolver là phần của category service mà post cần
type CategoryResolver interface {
	Resolve(ctx context.Context, ids []uuid.UUID) ([]category.Category, error)
}
