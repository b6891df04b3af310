package category

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	fielderrors "blog-backend/internal/shared/validation"
)

// ============================================================
// REQUEST DTOs
// ============================================================

// CreateCategoryReq là body của POST /api/categories
type CreateCategoryReq struct {
	Name      string `json:"name"`
	URLHandle string `json:"urlHandle"`
}

func (r CreateCategoryReq) Validate() error {
	return validateNameAndHandle(r.Name, r.URLHandle)
}

// UpdateCategoryReq là body của PUT /api/categories/:id (overwrite toàn bộ)
type UpdateCategoryReq struct {
	Name      string `json:"name"`
	URLHandle string `json:"urlHandle"`
}

func (r UpdateCategoryReq) Validate() error {
	return validateNameAndHandle(r.Name, r.URLHandle)
}

func validateNameAndHandle(name, urlHandle string) error {
	return fielderrors.FromOzzo(validation.Errors{
		"name":      validation.Validate(strings.TrimSpace(name), validation.Required.Error("The Name field is required."), validation.Length(0, 255)),
		"urlHandle": validation.Validate(urlHandle, validation.Length(0, 255)),
	}.Filter())
}

// ============================================================
// RESPONSE DTOs
// ============================================================

type CategoryResp struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	URLHandle string    `json:"urlHandle"`
}

type CountResp struct {
	Count int `json:"count"`
}

func ToCategoryResp(c *Category) *CategoryResp {
	return &CategoryResp{
		ID:        c.ID,
		Name:      c.Name,
		URLHandle: c.URLHandle,
	}
}

func ToCategoryResps(categories []Category) []CategoryResp {
	out := make([]CategoryResp, 0, len(categories))
	for i := range categories {
		out = append(out, *ToCategoryResp(&categories[i]))
	}
	return out
}
