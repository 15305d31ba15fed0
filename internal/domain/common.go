package domain

type ListOptions struct {
	Page  int
	Limit int
}

// Normalize applies the default page/limit (1, 10) used by every listing
// endpoint.
func (o ListOptions) Normalize() ListOptions {
	if o.Page <= 0 {
		o.Page = 1
	}
	if o.Limit <= 0 {
		o.Limit = 10
	}
	return o
}

func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

type Paginated[T any] struct {
	Data        []T   `json:"data"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

func NewPaginated[T any](data []T, total int64, opts ListOptions) *Paginated[T] {
	opts = opts.Normalize()

	totalPages := int(total) / opts.Limit
	if int(total)%opts.Limit != 0 {
		totalPages++
	}

	if data == nil {
		data = []T{}
	}

	return &Paginated[T]{
		Data:        data,
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: opts.Page,
	}
}
