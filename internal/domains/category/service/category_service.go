package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/category"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/logger"
)

type categoryServiceImpl struct {
	repository category.CategoryRepository
	now        func() time.Time
}

func NewCategoryService(repo category.CategoryRepository) category.CategoryService {
	return &categoryServiceImpl{
		repository: repo,
		now:        time.Now,
	}
}

func (s *categoryServiceImpl) Create(ctx context.Context, req *category.CreateCategoryReq) (*category.CategoryResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity := category.NewCategory(req.Name, req.URLHandle, s.now())
	if err := s.repository.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	logger.Info("category created", map[string]interface{}{
		"category_id": entity.ID.String(),
		"url_handle":  entity.URLHandle,
	})
	return category.ToCategoryResp(entity), nil
}

func (s *categoryServiceImpl) Query(ctx context.Context, q category.Query) ([]category.CategoryResp, error) {
	categories, err := s.repository.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	return category.ToCategoryResps(categories), nil
}

func (s *categoryServiceImpl) Count(ctx context.Context) (int, error) {
	count, err := s.repository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}

func (s *categoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*category.CategoryResp, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category.ToCategoryResp(entity), nil
}

// Update overwrite name + url handle
func (s *categoryServiceImpl) Update(ctx context.Context, id uuid.UUID, req *category.UpdateCategoryReq) (*category.CategoryResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	entity.Apply(req.Name, req.URLHandle)
	if err := s.repository.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category.ToCategoryResp(entity), nil
}

func (s *categoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*category.CategoryResp, error) {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}

	logger.Info("category deleted", map[string]interface{}{
		"category_id": id.String(),
	})
	return category.ToCategoryResp(deleted), nil
}

// Resolve dedupe ids, tra cứu một lần, bỏ qua id không tồn tại
func (s *categoryServiceImpl) Resolve(ctx context.Context, ids []uuid.UUID) ([]category.Category, error) {
	unique := utils.UniqueUUIDs(ids)
	if len(unique) == 0 {
		return []category.Category{}, nil
	}

	found, err := s.repository.GetByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("resolve categories: %w", err)
	}

	if dropped := len(unique) - len(found); dropped > 0 {
		logger.Debug(fmt.Sprintf("resolve categories: dropped %d unknown ids", dropped))
	}
	return found, nil
}
