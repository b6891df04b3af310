package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-backend/internal/domains/category"
)

func intPtr(v int) *int { return &v }

func TestBuildListQuery_Defaults(t *testing.T) {
	sql, args := buildListQuery(category.NewQuery("", "", "", nil, nil))

	assert.Equal(t,
		"SELECT id, name, url_handle, created_at FROM categories ORDER BY created_at, id OFFSET $1 LIMIT $2",
		sql)
	assert.Equal(t, []any{0, 100}, args)
}

func TestBuildListQuery_FilterSortPage(t *testing.T) {
	sql, args := buildListQuery(category.NewQuery("html", "Name", "ASC", intPtr(2), intPtr(5)))

	assert.Equal(t,
		`SELECT id, name, url_handle, created_at FROM categories WHERE name ILIKE $1 ESCAPE '\' ORDER BY name ASC, id OFFSET $2 LIMIT $3`,
		sql)
	assert.Equal(t, []any{"%html%", 5, 5}, args)
}

func TestBuildListQuery_URLHandleDescending(t *testing.T) {
	for _, sortBy := range []string{"url", "URLHandle", "urlhandle"} {
		sql, _ := buildListQuery(category.NewQuery("", sortBy, "down", nil, nil))
		assert.Contains(t, sql, "ORDER BY url_handle DESC, id", sortBy)
	}
}

func TestBuildListQuery_EscapesWildcards(t *testing.T) {
	_, args := buildListQuery(category.NewQuery("50%_off", "", "", nil, nil))
	assert.Equal(t, `%50\%\_off%`, args[0])
}
