package pagination

// Pageable carries the requested page slice. Page is zero-based.
type Pageable struct {
	Page int
	Size int
}

const (
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 100
)

// NewPageable clamps page and size to usable values: negative pages become
// the first page, non-positive sizes fall back to the default, and sizes
// above MaxSize are capped.
func NewPageable(page, size int) Pageable {
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Pageable{Page: page, Size: size}
}

// Offset is the number of rows to skip for this page.
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a paginated listing, reporting total counts alongside
// the returned content.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage assembles a page and derives TotalPages as ceil(total/size).
func NewPage[T any](content []T, pageable Pageable, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if total > 0 {
		pages = int((total + int64(pageable.Size) - 1) / int64(pageable.Size))
	}
	return &Page[T]{
		Content:       content,
		Page:          pageable.Page,
		Size:          pageable.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
