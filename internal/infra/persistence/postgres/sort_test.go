package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause_KnownColumn(t *testing.T) {
	assert.Equal(t, "email ASC", orderClause(userSortColumns, "email", "asc", "name"))
	assert.Equal(t, "email DESC", orderClause(userSortColumns, "email", "desc", "name"))
	assert.Equal(t, "email DESC", orderClause(userSortColumns, "EMAIL", "DESC", "name"))
}

func TestOrderClause_UnknownColumnFallsBack(t *testing.T) {
	assert.Equal(t, "name ASC", orderClause(userSortColumns, "password_hash", "asc", "name"))
	assert.Equal(t, "name ASC", orderClause(userSortColumns, "", "", "name"))

	// Injection attempts resolve to the fallback column, never the input.
	clause := orderClause(userSortColumns, "name; DROP TABLE users;--", "asc", "name")
	assert.Equal(t, "name ASC", clause)
}

func TestOrderClause_DirectionDefaultsToAscending(t *testing.T) {
	assert.Equal(t, "name ASC", orderClause(userSortColumns, "name", "sideways", "name"))
	assert.Equal(t, "name ASC", orderClause(userSortColumns, "name", "", "name"))
}

func TestOrderClause_StoreColumnsAreQualified(t *testing.T) {
	assert.Equal(t, "s.name ASC", orderClause(storeSortColumns, "name", "asc", "s.name"))
	assert.Equal(t, "average_rating DESC", orderClause(storeSortColumns, "average_rating", "desc", "s.name"))
	assert.Equal(t, "rating_count ASC", orderClause(storeSortColumns, "rating_count", "", "s.name"))
}
