package dto

import "time"

// CreateEmployeeRequest payload.
type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

// EmployeeResponse is the wire shape of a roster entry.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Salary     float64   `json:"salary"`
	CreatedAt  time.Time `json:"created_at"`
}

// EmployeeListQuery captures filters and paging for the stateless list endpoint.
type EmployeeListQuery struct {
	Search      string
	Departments []string
	Page        int
	PageSize    int
}

// PageButtonResponse describes one pager button.
type PageButtonResponse struct {
	Kind   string `json:"kind"`
	Page   int    `json:"page,omitempty"`
	Active bool   `json:"active,omitempty"`
}

// PaginationResponse is the pager state for a page of results.
type PaginationResponse struct {
	Page       int                  `json:"page"`
	TotalPages int                  `json:"total_pages"`
	TotalItems int                  `json:"total_items"`
	Start      int                  `json:"start"`
	End        int                  `json:"end"`
	HasPrev    bool                 `json:"has_prev"`
	HasNext    bool                 `json:"has_next"`
	Buttons    []PageButtonResponse `json:"buttons"`
	Summary    string               `json:"summary"`
}

// EmployeePageResponse is one filtered page of the roster.
type EmployeePageResponse struct {
	Search              string             `json:"search"`
	SelectedDepartments []string           `json:"selected_departments"`
	Departments         []string           `json:"departments"`
	Employees           []EmployeeResponse `json:"employees"`
	Pagination          PaginationResponse `json:"pagination"`
}

// ViewSearchRequest sets the view's search term.
type ViewSearchRequest struct {
	Search string `json:"search"`
}

// ViewDepartmentsRequest replaces or toggles the view's department selection.
// With Department set, only that department is toggled to Selected.
type ViewDepartmentsRequest struct {
	Departments []string `json:"departments"`
	Department  string   `json:"department"`
	Selected    bool     `json:"selected"`
}

// ViewPageRequest jumps to a page.
type ViewPageRequest struct {
	Page int `json:"page"`
}

// ViewPageSizeRequest changes items per page.
type ViewPageSizeRequest struct {
	PageSize int `json:"page_size"`
}
