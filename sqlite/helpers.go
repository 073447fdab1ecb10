package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 parses a brand's created_at or updated_at column, which are
// stored as RFC3339 text. fieldName names the column in the error.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination applies a BrandFilter's Limit and Offset to a query.
// Zero values leave the query unbounded.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
