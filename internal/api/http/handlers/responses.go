package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/api/dto"
	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/pagination"
	"github.com/spec-kit/roster-service/internal/service"
)

// maxPageSize caps client supplied page sizes.
const maxPageSize = 100

func employeeResponse(e domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       e.Role,
		Department: e.Department,
		Salary:     e.Salary,
		CreatedAt:  e.CreatedAt,
	}
}

func employeeResponses(employees []domain.Employee) []dto.EmployeeResponse {
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		items = append(items, employeeResponse(e))
	}
	return items
}

func paginationResponse(ctl pagination.Controls) dto.PaginationResponse {
	buttons := make([]dto.PageButtonResponse, 0, len(ctl.Buttons))
	for _, b := range ctl.Buttons {
		buttons = append(buttons, dto.PageButtonResponse{Kind: string(b.Kind), Page: b.Page, Active: b.Active})
	}
	return dto.PaginationResponse{
		Page:       ctl.CurrentPage,
		TotalPages: ctl.TotalPages,
		TotalItems: ctl.TotalItems,
		Start:      ctl.Start,
		End:        ctl.End,
		HasPrev:    ctl.HasPrev,
		HasNext:    ctl.HasNext,
		Buttons:    buttons,
		Summary:    ctl.Summary,
	}
}

func pageResponse(res service.PageResult) dto.EmployeePageResponse {
	selected := res.SelectedDepartments
	if selected == nil {
		selected = []string{}
	}
	return dto.EmployeePageResponse{
		Search:              res.Search,
		SelectedDepartments: selected,
		Departments:         res.Departments,
		Employees:           employeeResponses(res.Employees),
		Pagination:          paginationResponse(res.Pager),
	}
}

// parseDepartments accepts repeated and comma separated department params.
func parseDepartments(c *fiber.Ctx) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("department") {
		for _, part := range strings.Split(string(raw), ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseIntQuery(c *fiber.Ctx, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}
