package domain

// PaginationParams carries page/limit values from the HTTP layer to the
// service layer. Page is 1-indexed. Limit is capped at 200 by
// NewPaginationParams, which is enough to return the whole registry at once.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to defaults (page=1, limit=50).
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 50}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 200 {
			p.Limit = 200
		}
	}
	return p
}

// Bounds returns the [lo, hi) slice bounds of the page within a list of n
// items. Pages past the end, however large, yield an empty range.
func (p PaginationParams) Bounds(n int) (lo, hi int) {
	page := max(p.Page, 1)
	if p.Limit <= 0 || page-1 > n/p.Limit {
		return n, n
	}
	lo = min((page-1)*p.Limit, n)
	hi = n
	if n-lo > p.Limit {
		hi = lo + p.Limit
	}
	return lo, hi
}
