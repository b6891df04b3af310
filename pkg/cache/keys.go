package cache

import "fmt"

// Cache key conventions:
//
//	category:<id>
//	post:id:<id>
//	post:slug:<url_handle>
const (
	PostPattern = "post:*"
)

func CategoryKey(id fmt.Stringer) string {
	return "category:" + id.String()
}

func PostByIDKey(id fmt.Stringer) string {
	return "post:id:" + id.String()
}

func PostBySlugKey(slug string) string {
	return "post:slug:" + slug
}
