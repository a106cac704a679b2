package utils

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Pagination is a normalized limit/offset request.
type Pagination struct {
	Limit  int
	Offset int
}

// NormalizePagination clamps raw query input to sane bounds.
func NormalizePagination(limit, offset int) Pagination {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Pagination{Limit: limit, Offset: offset}
}

// HasMore reports whether records remain beyond the current page.
func (p Pagination) HasMore(total int64) bool {
	return int64(p.Offset+p.Limit) < total
}

// PaginateSlice returns the requested window of an already-ordered sequence
// plus a continuation indicator. Ordering is stable across pages as long as
// the sequence does not change between fetches; offset pagination can skip
// or duplicate records under concurrent writes, which callers accept.
func PaginateSlice[T any](items []T, p Pagination) ([]T, bool) {
	if p.Offset >= len(items) {
		return []T{}, false
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end], end < len(items)
}
