package navtui

// Pagination arithmetic. A section with zero items still reports one page so
// the item view always has a valid (empty) page to stand on.

// totalPages returns the page count for itemCount items at pageSize items
// per page. pageSize must be positive.
func totalPages(itemCount, pageSize int) int {
	if itemCount <= 0 {
		return 1
	}
	return (itemCount + pageSize - 1) / pageSize
}

// pageBounds returns the half-open item range [start, end) covered by page.
// An out-of-range page clamps to the nearest valid one.
func pageBounds(page, itemCount, pageSize int) (start, end int) {
	if last := totalPages(itemCount, pageSize) - 1; page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	start = page * pageSize
	end = start + pageSize
	if end > itemCount {
		end = itemCount
	}
	if start > itemCount {
		start = itemCount
	}
	return start, end
}
