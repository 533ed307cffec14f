package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// MaxPageSize bounds the page_size query value.
const MaxPageSize = 100

// Paginate computes the window [From, To) of total items for a 1-based page.
func Paginate(page, pageSize, total int) Pagination {
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page <= 0 {
		page = 1
	}
	if total < 0 {
		total = 0
	}
	from := total
	if page-1 <= total/pageSize {
		from = min((page-1)*pageSize, total)
	}
	to := from + min(pageSize, total-from)
	totalPages := (total + pageSize - 1) / pageSize
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int64(totalPages),
		TotalItems: int64(total),
		HasMore:    to < total,
		From:       from,
		To:         to,
	}
}
