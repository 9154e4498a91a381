package service

// Paginate slices items into the requested fixed-size page. The page
// number is clamped to [1, totalPages], so a stale page request after
// the result set shrinks degrades to the last page instead of erroring.
func Paginate[T any](items []T, page, pageSize int) (pageItems []T, currentPage, totalPages int) {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages = (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	currentPage = page
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	start := (currentPage - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], currentPage, totalPages
}
