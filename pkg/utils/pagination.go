package utils

// TotalPages derives the page count from the authoritative total; it is
// recomputed wherever needed and never stored alongside fetched state.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// SkipFor converts a 0-based page index into a result offset.
func SkipFor(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return page * perPage
}
