package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/category"
	fielderrors "blog-backend/internal/shared/validation"
)

// ============================================================
// REQUEST DTOs
// ============================================================

// CreatePostReq là body của POST /api/blogposts
type CreatePostReq struct {
	Title            string      `json:"title"`
	ShortDescription string      `json:"shortDescription"`
	Content          string      `json:"content"`
	CoverImageURL    string      `json:"coverImageUrl"`
	URLHandle        string      `json:"urlHandle"`
	Author           string      `json:"author"`
	IsVisible        bool        `json:"isVisible"`
	PublishedDate    time.Time   `json:"publishedDate"`
	Categories       []uuid.UUID `json:"categories"`
}

// UpdatePostReq là body của PUT /api/blogposts/:id.
// Scalars bị overwrite, Categories chỉ được thêm vào.
type UpdatePostReq CreatePostReq

func (r CreatePostReq) Validate() error {
	return validateFields(r.Fields())
}

func (r UpdatePostReq) Validate() error {
	return validateFields(CreatePostReq(r).Fields())
}

func (r CreatePostReq) Fields() Fields {
	return Fields{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Content:          r.Content,
		CoverImageURL:    r.CoverImageURL,
		URLHandle:        r.URLHandle,
		Author:           r.Author,
		IsVisible:        r.IsVisible,
		PublishedDate:    r.PublishedDate,
	}
}

func (r UpdatePostReq) Fields() Fields {
	return CreatePostReq(r).Fields()
}

func validateFields(f Fields) error {
	return fielderrors.FromOzzo(validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required.Error("The Title field is required."), validation.Length(0, 500)),
		validation.Field(&f.URLHandle, validation.Length(0, 500)),
		validation.Field(&f.Author, validation.Length(0, 255)),
		validation.Field(&f.CoverImageURL, validation.Length(0, 2048)),
	))
}

// ============================================================
// RESPONSE DTOs
// ============================================================

type PostResp struct {
	ID               uuid.UUID               `json:"id"`
	Title            string                  `json:"title"`
	ShortDescription string                  `json:"shortDescription"`
	Content          string                  `json:"content"`
	CoverImageURL    string                  `json:"coverImageUrl"`
	URLHandle        string                  `json:"urlHandle"`
	Author           string                  `json:"author"`
	IsVisible        bool                    `json:"isVisible"`
	PublishedDate    time.Time               `json:"publishedDate"`
	Categories       []category.CategoryResp `json:"categories"`
}

func ToPostResp(p *Post) *PostResp {
	categories := append([]category.Category(nil), p.Categories...)
	category.SortByName(categories)

	return &PostResp{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		CoverImageURL:    p.CoverImageURL,
		URLHandle:        p.URLHandle,
		Author:           p.Author,
		IsVisible:        p.IsVisible,
		PublishedDate:    p.PublishedDate,
		Categories:       category.ToCategoryResps(categories),
	}
}

func ToPostResps(posts []Post) []PostResp {
	out := make([]PostResp, 0, len(posts))
	for i := range posts {
		out = append(out, *ToPostResp(&posts[i]))
	}
	return out
}
