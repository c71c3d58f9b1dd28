// Package sqlite provides SQLite implementations of repository interfaces.
package sqlite

import (
	"strings"

	"newsportal/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for article listing.
// This builder is shared between COUNT and SELECT queries to eliminate duplication.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildWhereClause builds the WHERE clause and arguments for filters.
// Each search term must appear in the title, content or tags (multi-keyword
// AND logic). Returns empty string if no conditions are provided.
func (qb *ArticleQueryBuilder) BuildWhereClause(filters repository.ArticleFilters, tableAlias string) (clause string, args []interface{}) {
	col := func(name string) string {
		if tableAlias == "" {
			return name
		}
		return tableAlias + "." + name
	}

	var conditions []string

	if filters.Status != "" {
		conditions = append(conditions, col("status")+" = ?")
		args = append(args, string(filters.Status))
	}

	if filters.CategoryID != nil {
		conditions = append(conditions, col("category_id")+" = ?")
		args = append(args, *filters.CategoryID)
	}

	for _, term := range strings.Fields(filters.Search) {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		conditions = append(conditions, "("+
			col("title")+` LIKE ? ESCAPE '\' OR `+
			col("content")+` LIKE ? ESCAPE '\' OR `+
			col("tags")+` LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
