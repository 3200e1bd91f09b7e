package repository

import (
	"strings"

	"github.com/dreamjobs/api/internal/model"
)

// buildJobListQuery translates a listing filter into a SurrealQL SELECT on
// the job table. Category is an exact match, title a case-insensitive
// substring match, sort orders by salary_range, and pagination maps to
// LIMIT/START. A negative offset from out-of-range page numbers is clamped
// to zero here, at the point the query is emitted.
func buildJobListQuery(filter model.JobFilter) (string, map[string]interface{}) {
	query := `SELECT * FROM job`
	vars := map[string]interface{}{}

	conds := make([]string, 0, 3)
	if filter.Category != nil {
		conds = append(conds, `category = $category`)
		vars["category"] = *filter.Category
	}
	if filter.Title != nil {
		conds = append(conds, `string::lowercase(title) CONTAINS string::lowercase($title)`)
		vars["title"] = *filter.Title
	}
	if filter.PosterEmail != nil {
		conds = append(conds, `poster_email = $poster_email`)
		vars["poster_email"] = *filter.PosterEmail
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}

	query += sortClause(filter.Sort)

	if filter.HasPagination() {
		query += ` LIMIT $limit START $offset`
		vars["limit"] = filter.Limit
		offset := filter.Offset()
		if offset < 0 {
			offset = 0
		}
		vars["offset"] = offset
	}

	return query, vars
}

// sortClause maps a sort direction to an ORDER BY on salary_range.
// Unrecognized directions mean store-defined order, same as absent.
func sortClause(sort *string) string {
	if sort == nil {
		return ""
	}
	switch *sort {
	case model.SortAscending:
		return ` ORDER BY salary_range ASC`
	case model.SortDescending:
		return ` ORDER BY salary_range DESC`
	}
	return ""
}
