package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9-]+`)
	repeatedHyphen = regexp.MustCompile(`-+`)
)

// GenerateSlug tạo url handle từ title/name.
// "Học Go căn bản!" → "hoc-go-can-ban"
func GenerateSlug(input string) string {
	// Step 1: Bỏ dấu
	ascii := RemoveDiacritics(input)

	// Step 2: Lowercase, spaces → hyphens
	hyphenated := strings.Join(strings.Fields(strings.ToLower(ascii)), "-")

	// Step 3: Keep only a-z, 0-9, hyphens
	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")

	// Step 4: Collapse and trim hyphens
	return strings.Trim(repeatedHyphen.ReplaceAllString(cleaned, "-"), "-")
}

// RemoveDiacritics strips combining marks after NFD decomposition.
// đ/Đ không decompose được nên map tay.
func RemoveDiacritics(input string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			switch r {
			case 'đ':
				return 'd'
			case 'Đ':
				return 'D'
			}
			return r
		}),
		norm.NFC,
	)

	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return out
}

// HandleOrSlug returns the trimmed handle, or a slug of fallback when it is empty.
func HandleOrSlug(handle, fallback string) string {
	if h := strings.TrimSpace(handle); h != "" {
		return h
	}
	return GenerateSlug(fallback)
}
