package handlers

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/api/dto"
	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/service"
	apperrors "github.com/spec-kit/roster-service/pkg/util/errorutil"
)

// EmployeesHandler exposes the roster endpoints.
type EmployeesHandler struct {
	data         *service.DataService
	itemsPerPage int
	maxVisible   int
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(data *service.DataService, itemsPerPage, maxVisible int) *EmployeesHandler {
	return &EmployeesHandler{data: data, itemsPerPage: itemsPerPage, maxVisible: maxVisible}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	q := parseEmployeeListQuery(c, h.itemsPerPage)
	res := h.data.QueryPage(service.PageQuery{
		Search:       q.Search,
		Departments:  q.Departments,
		Page:         q.Page,
		ItemsPerPage: q.PageSize,
		MaxVisible:   h.maxVisible,
	})
	return c.JSON(fiber.Map{"data": pageResponse(res)})
}

// Get handles GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	emp, ok := h.data.GetEmployee(id)
	if !ok {
		return apperrors.NewNotFound("employee", map[string]any{"id": id})
	}
	return c.JSON(fiber.Map{"data": employeeResponse(emp)})
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateCreateEmployee(&req); err != nil {
		return err
	}

	emp, err := h.data.Add(c.UserContext(), domain.EmployeeFields{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
		Salary:     req.Salary,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": employeeResponse(emp)})
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	removed, ok, err := h.data.Remove(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewNotFound("employee", map[string]any{"id": id})
	}
	return c.JSON(fiber.Map{"data": employeeResponse(removed)})
}

// Reload handles POST /api/employees/reload.
func (h *EmployeesHandler) Reload(c *fiber.Ctx) error {
	employees, err := h.data.LoadAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"count": len(employees)}})
}

// Departments handles GET /api/departments.
func (h *EmployeesHandler) Departments(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.data.Departments()})
}

func validateCreateEmployee(req *dto.CreateEmployeeRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Role = strings.TrimSpace(req.Role)
	req.Department = strings.TrimSpace(req.Department)

	details := map[string]any{}
	if req.Name == "" {
		details["name"] = "required"
	}
	if req.Email == "" {
		details["email"] = "required"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		details["email"] = "invalid"
	}
	if req.Salary < 0 {
		details["salary"] = "must be zero or positive"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid employee", details)
	}
	return nil
}

func parseEmployeeListQuery(c *fiber.Ctx, defaultPageSize int) dto.EmployeeListQuery {
	return dto.EmployeeListQuery{
		Search:      strings.TrimSpace(c.Query("search")),
		Departments: parseDepartments(c),
		Page:        parseIntQuery(c, "page", 1),
		PageSize:    min(parseIntQuery(c, "page_size", defaultPageSize), maxPageSize),
	}
}
