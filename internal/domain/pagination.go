package domain

type Pagination struct {
	Page     int
	PageSize int
	Term     string
}

func (f Pagination) Limit() int {
	return f.PageSize
}

func (f Pagination) Offset() int {
	return (f.Page - 1) * f.PageSize
}
