package dto

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageQuery binds 0-based paging parameters from the query string.
type PageQuery struct {
	Page int `form:"page" binding:"min=0"`
	Size int `form:"size" binding:"omitempty,min=1,max=100"`
}

// Resolve returns the page number and size, defaulting the size when absent.
func (q PageQuery) Resolve() (int, int) {
	size := q.Size
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	page := q.Page
	if page < 0 {
		page = 0
	}
	return page, size
}

type PageInfo struct {
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

func NewPageInfo(page, size int, total int64) PageInfo {
	totalPages := 0
	if size > 0 {
		totalPages = int(total) / size
		if int(total)%size != 0 {
			totalPages++
		}
	}
	return PageInfo{
		Page:          page,
		Size:          size,
		TotalElements: int(total),
		TotalPages:    totalPages,
	}
}

// PagedResponse is the body of every paged listing.
type PagedResponse[T any] struct {
	Data     []T      `json:"data"`
	PageInfo PageInfo `json:"pageInfo"`
}

func NewPagedResponse[T any](data []T, page, size int, total int64) *PagedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &PagedResponse[T]{Data: data, PageInfo: NewPageInfo(page, size, total)}
}

// ArrayResponseWrapper wraps unpaged lists with their length.
type ArrayResponseWrapper[T any] struct {
	Count int64 `json:"count"`
	Data  []T   `json:"data"`
}

func NewArrayResponse[T any](data []T) ArrayResponseWrapper[T] {
	if data == nil {
		data = []T{}
	}
	return ArrayResponseWrapper[T]{Count: int64(len(data)), Data: data}
}
