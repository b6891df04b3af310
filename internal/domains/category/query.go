package category

import (
	"math"
	"strings"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 100
)

type SortField string

const (
	SortInsertion SortField = ""
	SortName      SortField = "name"
	SortURLHandle SortField = "url_handle"
)

// Query gom filter + sort + paging cho GET /api/categories
type Query struct {
	Filter     string
	SortBy     SortField
	Ascending  bool
	PageNumber int
	PageSize   int
}

// NewQuery chuẩn hoá tham số thô từ query string.
// sortBy: name | url | urlhandle (không phân biệt hoa thường), còn lại → thứ tự insert.
// sortDirection: asc → tăng dần, mọi giá trị khác → giảm dần.
// pageNumber/pageSize < 1 hoặc thiếu → default.
func NewQuery(filter, sortBy, sortDirection string, pageNumber, pageSize *int) Query {
	q := Query{
		Filter:     strings.TrimSpace(filter),
		Ascending:  strings.EqualFold(strings.TrimSpace(sortDirection), "asc"),
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
	}

	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "name":
		q.SortBy = SortName
	case "url", "urlhandle":
		q.SortBy = SortURLHandle
	default:
		q.SortBy = SortInsertion
	}

	if pageNumber != nil && *pageNumber >= 1 {
		q.PageNumber = *pageNumber
	}
	if pageSize != nil && *pageSize >= 1 {
		q.PageSize = *pageSize
	}
	return q
}

// Offset bão hoà ở math.MaxInt, page quá xa trả về trang rỗng thay vì OFFSET âm
func (q Query) Offset() int {
	skipped := q.PageNumber - 1
	if skipped > 0 && q.PageSize > math.MaxInt/skipped {
		return math.MaxInt
	}
	return skipped * q.PageSize
}

func (q Query) Limit() int {
	return q.PageSize
}
