package utils

import (
	"strings"
)

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escape wildcard của LIKE/ILIKE để filter là substring thuần.
// Dùng cùng `ESCAPE '\'`.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern builds a %...% pattern for a literal substring match.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
