package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/validation"
	"blog-backend/pkg/logger"
)

type postServiceImpl struct {
	repository post.PostRepository
	categories post.CategoryResolver
	now        func() time.Time
}

func NewPostService(repo post.PostRepository, categories post.CategoryResolver) post.PostService {
	return &postServiceImpl{
		repository: repo,
		categories: categories,
		now:        time.Now,
	}
}

// Create: category id không tồn tại bị bỏ qua, không báo lỗi
func (s *postServiceImpl) Create(ctx context.Context, req *post.CreatePostReq) (*post.PostResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	entity := &post.Post{
		ID:        uuid.New(),
		CreatedAt: now.UTC(),
	}
	entity.Apply(req.Fields(), now)
	if err := validateHandle(entity); err != nil {
		return nil, err
	}

	resolved, err := s.categories.Resolve(ctx, req.Categories)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	entity.MergeCategories(resolved)

	if err := s.repository.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	logger.Info("post created", map[string]interface{}{
		"post_id":    entity.ID.String(),
		"url_handle": entity.URLHandle,
		"categories": len(entity.Categories),
	})
	return post.ToPostResp(entity), nil
}

func (s *postServiceImpl) List(ctx context.Context) ([]post.PostResp, error) {
	posts, err := s.repository.ListWithCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return post.ToPostResps(posts), nil
}

func (s *postServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*post.PostResp, error) {
	entity, err := s.repository.GetByIDWithCategories(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post.ToPostResp(entity), nil
}

// GetByURLHandle: so khớp chính xác
func (s *postServiceImpl) GetByURLHandle(ctx context.Context, urlHandle string) (*post.PostResp, error) {
	entity, err := s.repository.GetByURLHandleWithCategories(ctx, urlHandle)
	if err != nil {
		return nil, fmt.Errorf("get post by url handle: %w", err)
	}
	return post.ToPostResp(entity), nil
}

// Update overwrite scalars, categories chỉ được append.
// Join rows insert ON CONFLICT DO NOTHING nên hai update chồng nhau cho ra hợp của hai tập.
func (s *postServiceImpl) Update(ctx context.Context, id uuid.UUID, req *post.UpdatePostReq) (*post.PostResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity, err := s.repository.GetByIDShallow(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	entity.Apply(req.Fields(), s.now())
	if err := validateHandle(entity); err != nil {
		return nil, err
	}

	resolved, err := s.categories.Resolve(ctx, req.Categories)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	addIDs := make([]uuid.UUID, 0, len(resolved))
	for _, c := range resolved {
		addIDs = append(addIDs, c.ID)
	}

	if err := s.repository.Update(ctx, entity, addIDs); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	updated, err := s.repository.GetByIDWithCategories(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	logger.Info("post updated", map[string]interface{}{
		"post_id":    updated.ID.String(),
		"categories": len(updated.Categories),
	})
	return post.ToPostResp(updated), nil
}

func (s *postServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*post.PostResp, error) {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete post: %w", err)
	}

	logger.Info("post deleted", map[string]interface{}{
		"post_id": id.String(),
	})
	return post.ToPostResp(deleted), nil
}

// validateHandle: handle rỗng (title không slug được) hoặc có dạng UUID đều bị từ chối.
// GET /:idOrSlug coi mọi chuỗi parse được thành UUID là id.
func validateHandle(p *post.Post) error {
	handle := strings.TrimSpace(p.URLHandle)
	if handle == "" {
		return validation.New("urlHandle", post.MsgURLHandleRequired)
	}
	if _, err := uuid.Parse(handle); err == nil {
		return validation.New("urlHandle", post.MsgURLHandleIsUUID)
	}
	return nil
}
