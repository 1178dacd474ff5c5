package listquery

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit well inside int range.
	MaxPage = 1_000_000
)

// Pagination is the page metadata returned with every list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Skip returns the number of rows before page.
func Skip(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// Paginate computes page metadata from the filtered total, never from the size of
// the returned window.
func Paginate(page, limit int, total int64) Pagination {
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
