package models

// Pagination summarises a page of results for rendering.
type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
	Start      int  `json:"start"`
	End        int  `json:"end"`
}

func NewPagination(page, perPage, total, totalPages int) Pagination {
	p := Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}

	if total > 0 && perPage > 0 {
		p.Start = (page-1)*perPage + 1
		p.End = min(page*perPage, total)
	}

	return p
}
