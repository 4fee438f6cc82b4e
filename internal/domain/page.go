package domain

// PageRequest selects one page of a listing. Number is zero-based.
type PageRequest struct {
	Number int
	Size   int
}

func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// Page is one page of results plus the unpaginated total.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
}
