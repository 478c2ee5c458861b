package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/export"
	"github.com/spec-kit/roster-service/internal/service"
	apperrors "github.com/spec-kit/roster-service/pkg/util/errorutil"
)

// ExportHandler serves downloads of the filtered roster.
type ExportHandler struct {
	data *service.DataService
	now  func() time.Time
}

// NewExportHandler constructs handler.
func NewExportHandler(data *service.DataService) *ExportHandler {
	return &ExportHandler{data: data, now: time.Now}
}

// Export handles GET /api/export/:format.
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Params("format"))
	if err != nil {
		return apperrors.NewValidationError(err.Error(), map[string]any{"format": c.Params("format")})
	}

	employees := h.data.FilteredView(strings.TrimSpace(c.Query("search")), parseDepartments(c))
	if len(employees) == 0 {
		return apperrors.NewDomainError("NOTHING_TO_EXPORT", "no employees to export", http.StatusNotFound, nil)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, employees); err != nil {
		return apperrors.NewInternalError(err)
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, format.FileName(h.now())))
	return c.Send(buf.Bytes())
}
