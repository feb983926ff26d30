// Package page slices ordered collections into fixed-size pages.
package page

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
	FirstIndex int `json:"first_index"`
	LastIndex  int `json:"last_index"`
}

const DefaultSize = 10

// Paginate returns the requested 1-based page and its boundaries. Pages
// before the first clamp to 1; pages past the last come back empty with the
// counts intact. FirstIndex/LastIndex are 1-based, both 0 on an empty page.
func Paginate[T any](items []T, pageNum, size int) ([]T, Meta) {
	if size < 1 {
		size = DefaultSize
	}
	if pageNum < 1 {
		pageNum = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	meta := Meta{Page: pageNum, PageSize: size, TotalCount: total, TotalPages: totalPages}

	start := (pageNum - 1) * size
	if start >= total {
		return []T{}, meta
	}
	end := start + size
	if end > total {
		end = total
	}

	meta.FirstIndex = start + 1
	meta.LastIndex = end

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, meta
}
