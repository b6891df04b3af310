package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/category"
	"blog-backend/internal/shared/validation"
)

// stubRepository is a manual stub implementation of category.CategoryRepository
type stubRepository struct {
	createFunc   func(ctx context.Context, c *category.Category) error
	queryFunc    func(ctx context.Context, q category.Query) ([]category.Category, error)
	countFunc    func(ctx context.Context) (int, error)
	getByIDFunc  func(ctx context.Context, id uuid.UUID) (*category.Category, error)
	getByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]category.Category, error)
	updateFunc   func(ctx context.Context, c *category.Category) error
	deleteFunc   func(ctx context.Context, id uuid.UUID) (*category.Category, error)
}

func (m *stubRepository) Create(ctx context.Context, c *category.Category) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	return nil
}

func (m *stubRepository) Query(ctx context.Context, q category.Query) ([]category.Category, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, q)
	}
	return nil, nil
}

func (m *stubRepository) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *stubRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, category.ErrCategoryNotFound
}

func (m *stubRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]category.Category, error) {
	if m.getByIDsFunc != nil {
		return m.getByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *stubRepository) Update(ctx context.Context, c *category.Category) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, c)
	}
	return nil
}

func (m *stubRepository) Delete(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil, category.ErrCategoryNotFound
}

func TestCreate_DerivesURLHandle(t *testing.T) {
	var stored *category.Category
	svc := NewCategoryService(&stubRepository{
		createFunc: func(_ context.Context, c *category.Category) error {
			stored = c
			return nil
		},
	})

	resp, err := svc.Create(context.Background(), &category.CreateCategoryReq{Name: " Web Development "})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, "Web Development", stored.Name)
	assert.Equal(t, "web-development", resp.URLHandle)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestCreate_KeepsGivenURLHandle(t *testing.T) {
	svc := NewCategoryService(&stubRepository{})

	resp, err := svc.Create(context.Background(), &category.CreateCategoryReq{Name: "HTML", URLHandle: "html-basics"})
	require.NoError(t, err)
	assert.Equal(t, "html-basics", resp.URLHandle)
}

func TestCreate_RequiresName(t *testing.T) {
	called := false
	svc := NewCategoryService(&stubRepository{
		createFunc: func(context.Context, *category.Category) error {
			called = true
			return nil
		},
	})

	_, err := svc.Create(context.Background(), &category.CreateCategoryReq{Name: "   "})

	fe, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, "name", fe[0].Field)
	assert.False(t, called)
	assert.Equal(t, 400, category.GetHTTPStatusCode(err))
}

func TestQuery_PassesQueryThrough(t *testing.T) {
	var got category.Query
	svc := NewCategoryService(&stubRepository{
		queryFunc: func(_ context.Context, q category.Query) ([]category.Category, error) {
			got = q
			return []category.Category{{ID: uuid.New(), Name: "HTML"}}, nil
		},
	})

	q := category.NewQuery("html", "name", "asc", nil, nil)
	resp, err := svc.Query(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, q, got)
	assert.Len(t, resp, 1)
}

func TestUpdate_OverwritesFields(t *testing.T) {
	id := uuid.New()
	var updated *category.Category
	svc := NewCategoryService(&stubRepository{
		getByIDFunc: func(context.Context, uuid.UUID) (*category.Category, error) {
			return &category.Category{ID: id, Name: "Old", URLHandle: "old"}, nil
		},
		updateFunc: func(_ context.Context, c *category.Category) error {
			updated = c
			return nil
		},
	})

	resp, err := svc.Update(context.Background(), id, &category.UpdateCategoryReq{Name: "New Name"})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "new-name", updated.URLHandle)
	assert.Equal(t, id, resp.ID)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewCategoryService(&stubRepository{})

	_, err := svc.Update(context.Background(), uuid.New(), &category.UpdateCategoryReq{Name: "x"})

	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	assert.Equal(t, 404, category.GetHTTPStatusCode(err))
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewCategoryService(&stubRepository{})

	_, err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestDelete_ReturnsDeletedRecord(t *testing.T) {
	id := uuid.New()
	svc := NewCategoryService(&stubRepository{
		deleteFunc: func(_ context.Context, got uuid.UUID) (*category.Category, error) {
			return &category.Category{ID: got, Name: "Go", URLHandle: "go"}, nil
		},
	})

	resp, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, &category.CategoryResp{ID: id, Name: "Go", URLHandle: "go"}, resp)
}

func TestResolve_DedupesBeforeLookup(t *testing.T) {
	a, b, unknown := uuid.New(), uuid.New(), uuid.New()
	var lookedUp []uuid.UUID
	svc := NewCategoryService(&stubRepository{
		getByIDsFunc: func(_ context.Context, ids []uuid.UUID) ([]category.Category, error) {
			lookedUp = ids
			return []category.Category{{ID: a}, {ID: b}}, nil
		},
	})

	got, err := svc.Resolve(context.Background(), []uuid.UUID{a, b, a, unknown, b})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{a, b, unknown}, lookedUp)
	assert.Len(t, got, 2)
}

func TestResolve_Empty(t *testing.T) {
	svc := NewCategoryService(&stubRepository{
		getByIDsFunc: func(context.Context, []uuid.UUID) ([]category.Category, error) {
			return nil, errors.New("must not be called")
		},
	})

	got, err := svc.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
