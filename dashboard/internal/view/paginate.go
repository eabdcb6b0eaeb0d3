package view

// PageSize is the number of rows on one page
const PageSize = 10

// PageCount returns the number of pages for n rows. An empty result still has
// one (empty) page.
func PageCount(n, size int) int {
	if size <= 0 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ClampPage bounds page to [1, pageCount]
func ClampPage(page, pageCount int) int {
	if page > pageCount {
		page = pageCount
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the rows of a 1-based page. Out-of-range pages are empty.
func Paginate[T any](rows []T, page, size int) []T {
	start := (page - 1) * size
	if page < 1 || size <= 0 || start >= len(rows) {
		return []T{}
	}
	end := min(start+size, len(rows))
	return rows[start:end]
}
