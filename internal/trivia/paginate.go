package trivia

// DefaultPageSize is the fixed page length served by the question bank.
const DefaultPageSize = 10

// Paginate returns the 1-indexed page window over items, clipped to the
// input length. A page past the end yields an empty slice, never an error;
// callers decide what an empty page means. Order is preserved.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
