package category

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/shared/utils"
)

// Category là nhãn phân loại post. URL handle không unique.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	URLHandle string    `json:"urlHandle"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCategory tạo entity mới, url handle rỗng thì sinh từ name
func NewCategory(name, urlHandle string, now time.Time) *Category {
	name = strings.TrimSpace(name)
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		URLHandle: utils.HandleOrSlug(urlHandle, name),
		CreatedAt: now.UTC(),
	}
}

// Apply overwrite toàn bộ field có thể sửa
func (c *Category) Apply(name, urlHandle string) {
	c.Name = strings.TrimSpace(name)
	c.URLHandle = utils.HandleOrSlug(urlHandle, c.Name)
}

// SortByName sorts in place, ties broken by id.
func SortByName(categories []Category) {
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Name != categories[j].Name {
			return categories[i].Name < categories[j].Name
		}
		return categories[i].ID.String() < categories[j].ID.String()
	})
}
