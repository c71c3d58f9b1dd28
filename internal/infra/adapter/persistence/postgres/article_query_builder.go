// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"newsportal/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for article listing in PostgreSQL.
// This builder is shared between COUNT and SELECT queries so both always use
// the same predicate.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for filters.
// Search terms go through websearch_to_tsquery against the indexed
// search_vector column, so every term must match (AND).
// Returns empty string if no conditions are provided.
func (qb *ArticleQueryBuilder) BuildWhereClause(filters repository.ArticleFilters, tableAlias string) (clause string, args []interface{}) {
	col := func(name string) string {
		if tableAlias == "" {
			return name
		}
		return tableAlias + "." + name
	}

	var conditions []string
	paramIndex := 1

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("status"), paramIndex))
		args = append(args, string(filters.Status))
		paramIndex++
	}

	if filters.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("category_id"), paramIndex))
		args = append(args, *filters.CategoryID)
		paramIndex++
	}

	if search := strings.TrimSpace(filters.Search); search != "" {
		conditions = append(conditions,
			fmt.Sprintf("%s @@ websearch_to_tsquery('simple', $%d)", col("search_vector"), paramIndex))
		args = append(args, search)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
