package postgres

import "strings"

// Sortable query parameters are never spliced into SQL text. Each
// listing resolves the requested sort key against a fixed allow-list of
// known columns and falls back to its default when the key is unknown.

var userSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"role":       "role",
	"created_at": "created_at",
}

var storeSortColumns = map[string]string{
	"name":           "s.name",
	"email":          "s.email",
	"address":        "s.address",
	"created_at":     "s.created_at",
	"average_rating": "average_rating",
	"rating_count":   "rating_count",
}

// orderClause builds a safe ORDER BY expression from client-controlled
// sort parameters. Direction defaults to ascending.
func orderClause(allowed map[string]string, sortBy, sortOrder, fallback string) string {
	column, ok := allowed[strings.ToLower(sortBy)]
	if !ok {
		column = fallback
	}

	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}

	return column + " " + direction
}
