// Package pagination slices in-memory collections into pages.
package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is one window over a collection.
type Page[T any] struct {
	Data       []T
	Page       int
	Limit      int
	TotalPages int
	TotalItems int
}

// Paginate returns the 1-based page of items holding at most limit elements.
//
// Pages outside [1, TotalPages] have empty Data and are not an error. A limit below 1
// falls back to DefaultLimit. Data never aliases items.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(items)
	result := Page[T]{
		Data:       []T{},
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
		TotalItems: total,
	}

	if page < 1 || page > result.TotalPages {
		return result
	}

	start := (page - 1) * limit
	end := min(start+limit, total)
	result.Data = append(result.Data, items[start:end]...)
	return result
}

// HasNext reports whether a page follows p.
func (p Page[T]) HasNext() bool {
	return p.Page >= 1 && p.Page < p.TotalPages
}

// Map converts the page's data while keeping its counters.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	data := make([]U, 0, len(p.Data))
	for _, item := range p.Data {
		data = append(data, fn(item))
	}
	return Page[U]{
		Data:       data,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
		TotalItems: p.TotalItems,
	}
}
