package dto

import (
	"fmt"
	"hallbook/shared/constant"
	"slices"
	"strings"
)

// QueryParams controls ordering of list queries. Columns outside the allowed set fall back to the default.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderBy renders an ORDER BY clause body, never interpolating a column outside allowed.
func (q QueryParams) OrderBy(defaultColumn string, allowed []string) string {
	column := defaultColumn
	if q.SortBy != "" && slices.Contains(allowed, q.SortBy) {
		column = q.SortBy
	}

	dir := constant.SortDirAsc
	if strings.ToUpper(q.SortDir) == constant.SortDirDesc {
		dir = constant.SortDirDesc
	}

	return fmt.Sprintf("%s %s", column, dir)
}
