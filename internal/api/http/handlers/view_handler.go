package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/api/dto"
	"github.com/spec-kit/roster-service/internal/service"
	apperrors "github.com/spec-kit/roster-service/pkg/util/errorutil"
)

// ViewHandler drives the shared browsing session.
type ViewHandler struct {
	view *service.RosterView
}

// NewViewHandler constructs handler.
func NewViewHandler(view *service.RosterView) *ViewHandler {
	return &ViewHandler{view: view}
}

// Get handles GET /api/view.
func (h *ViewHandler) Get(c *fiber.Ctx) error {
	return h.respond(c)
}

// SetSearch handles PUT /api/view/search.
func (h *ViewHandler) SetSearch(c *fiber.Ctx) error {
	var req dto.ViewSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	h.view.SetSearch(req.Search)
	return h.respond(c)
}

// SetDepartments handles PUT /api/view/departments.
func (h *ViewHandler) SetDepartments(c *fiber.Ctx) error {
	var req dto.ViewDepartmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Department != "" {
		h.view.SetDepartmentSelected(req.Department, req.Selected)
	} else {
		h.view.SetDepartments(req.Departments)
	}
	return h.respond(c)
}

// SetPage handles PUT /api/view/page. Out of range pages leave the cursor unchanged.
func (h *ViewHandler) SetPage(c *fiber.Ctx) error {
	var req dto.ViewPageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	h.view.SetPage(req.Page)
	return h.respond(c)
}

// Next handles POST /api/view/next.
func (h *ViewHandler) Next(c *fiber.Ctx) error {
	h.view.NextPage()
	return h.respond(c)
}

// Prev handles POST /api/view/prev.
func (h *ViewHandler) Prev(c *fiber.Ctx) error {
	h.view.PrevPage()
	return h.respond(c)
}

// SetPageSize handles PUT /api/view/page-size.
func (h *ViewHandler) SetPageSize(c *fiber.Ctx) error {
	var req dto.ViewPageSizeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.PageSize < 1 {
		return apperrors.NewValidationError("invalid page size", map[string]any{"page_size": "must be positive"})
	}
	h.view.SetItemsPerPage(min(req.PageSize, maxPageSize))
	return h.respond(c)
}

func (h *ViewHandler) respond(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": pageResponse(h.view.Snapshot())})
}
