package post

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/category"
	"blog-backend/internal/shared/utils"
)

// Post là bài blog. Categories là tập hợp (không trùng, không quan trọng thứ tự).
type Post struct {
	ID               uuid.UUID           `json:"id"`
	Title            string              `json:"title"`
	ShortDescription string              `json:"shortDescription"`
	Content          string              `json:"content"`
	CoverImageURL    string              `json:"coverImageUrl"`
	URLHandle        string              `json:"urlHandle"`
	Author           string              `json:"author"`
	IsVisible        bool                `json:"isVisible"`
	PublishedDate    time.Time           `json:"publishedDate"`
	Categories       []category.Category `json:"categories"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// Fields là phần scalar do client gửi lên, dùng chung cho create và update
type Fields struct {
	Title            string    `json:"title"`
	ShortDescription string    `json:"shortDescription"`
	Content          string    `json:"content"`
	CoverImageURL    string    `json:"coverImageUrl"`
	URLHandle        string    `json:"urlHandle"`
	Author           string    `json:"author"`
	IsVisible        bool      `json:"isVisible"`
	PublishedDate    time.Time `json:"publishedDate"`
}

// Apply overwrite toàn bộ scalar fields. Url handle rỗng → slug từ title.
func (p *Post) Apply(f Fields, now time.Time) {
	p.Title = strings.TrimSpace(f.Title)
	p.ShortDescription = f.ShortDescription
	p.Content = f.Content
	p.CoverImageURL = strings.TrimSpace(f.CoverImageURL)
	p.URLHandle = utils.HandleOrSlug(f.URLHandle, p.Title)
	p.Author = strings.TrimSpace(f.Author)
	p.IsVisible = f.IsVisible
	p.PublishedDate = f.PublishedDate.UTC()
	if f.PublishedDate.IsZero() {
		p.PublishedDate = now.UTC()
	}
	p.UpdatedAt = now.UTC()
}

// MergeCategories thêm categories mới vào tập hiện có (additive, không bao giờ replace).
// Trả về các category thực sự được thêm.
func (p *Post) MergeCategories(incoming []category.Category) []category.Category {
	existing := make(map[uuid.UUID]struct{}, len(p.Categories))
	for _, c := range p.Categories {
		existing[c.ID] = struct{}{}
	}

	var added []category.Category
	for _, c := range incoming {
		if _, ok := existing[c.ID]; ok {
			continue
		}
		existing[c.ID] = struct{}{}
		p.Categories = append(p.Categories, c)
		added = append(added, c)
	}

	category.SortByName(p.Categories)
	return added
}

func (p *Post) CategoryIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}
