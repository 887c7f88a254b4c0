// Package catalog holds the deterministic filter, sort and paginate
// functions applied to locally held lists.
package catalog

import (
	"strings"

	"vitalsync/internal/domain/entity"
)

// Paginate slices items into one page. Non-positive page and perPage fall back
// to 1 and defaultPerPage. A page past the end yields an empty item list; the
// caller owns clamping.
func Paginate[T any](items []T, page, perPage, defaultPerPage int) entity.ResultPage[T] {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	total := len(items)
	totalPages := 1
	if total > 0 {
		totalPages = (total-1)/perPage + 1
	}

	// page is compared before multiplying so huge values cannot overflow.
	pageItems := make([]T, 0, min(perPage, total))
	if page <= totalPages && total > 0 {
		start := (page - 1) * perPage
		end := total
		if perPage < total-start {
			end = start + perPage
		}
		pageItems = append(pageItems, items[start:end]...)
	}

	return entity.ResultPage[T]{
		Items:      pageItems,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// matchesText reports whether the lowercased search text occurs in the
// searchable fields joined by a single space.
func matchesText(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join(fields, " "))
	return strings.Contains(haystack, strings.ToLower(search))
}
