package domain

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// TodoRequest struct - Domain request DTO for add and update
	TodoRequest struct {
		ID          string
		Title       string
		Description string
		Completed   bool
	}

	// PagedResult struct - one page of todo items with navigation links.
	// For an empty collection every link is empty and Data is empty.
	PagedResult struct {
		Page       int        `json:"page"`
		Pages      int        `json:"pages"`
		PageSize   int        `json:"page_size"`
		TotalCount int64      `json:"total_count"`
		FirstPage  string     `json:"first_page"`
		LastPage   string     `json:"last_page"`
		PrevPage   string     `json:"prev_page"`
		NextPage   string     `json:"next_page"`
		Data       []TodoItem `json:"data"`
	}
)

// NewPagedResult builds the response projection of a page.
func NewPagedResult(bounds PageBounds, items []TodoItem) *PagedResult {
	result := &PagedResult{
		Page:       bounds.Page,
		Pages:      bounds.LastPage,
		PageSize:   bounds.PageSize,
		TotalCount: bounds.TotalCount,
		FirstPage:  bounds.Links.First,
		LastPage:   bounds.Links.Last,
		PrevPage:   bounds.Links.Prev,
		NextPage:   bounds.Links.Next,
		Data:       []TodoItem{},
	}
	if bounds.IsEmpty() {
		return result
	}
	result.Data = append(result.Data, items...)
	return result
}
