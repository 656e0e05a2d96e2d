package model

// Page is the pagination envelope returned by the Vita list endpoints.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// HasMore reports whether more pages follow the current one.
func (p *Page[T]) HasMore() bool {
	return p.Page < p.TotalPages
}

// List is the unpaginated list envelope used by the vitals endpoints.
type List[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// ListOptions configures list queries with pagination and filtering.
type ListOptions struct {
	Page     int
	PageSize int
	Search   string
	IsActive *bool
}

// DefaultListOptions returns sensible defaults.
func DefaultListOptions() ListOptions {
	return ListOptions{Page: 1, PageSize: 20}
}

// Clamp enforces limits (max 100 per page, min page 1).
func (o *ListOptions) Clamp() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize <= 0 {
		o.PageSize = 20
	}
	if o.PageSize > 100 {
		o.PageSize = 100
	}
}
