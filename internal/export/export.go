package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spec-kit/roster-service/internal/domain"
)

// Format names a supported export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Header is the column order shared by the tabular formats.
var Header = []string{"Name", "Email", "Role", "Department", "Salary", "Created At"}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// FileName builds the download name, e.g. employees_2024-03-01.csv.
func (f Format) FileName(at time.Time) string {
	return fmt.Sprintf("employees_%s.%s", at.Format("2006-01-02"), f)
}

// Write encodes employees to w in the given format.
func Write(w io.Writer, f Format, employees []domain.Employee) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, employees)
	case FormatJSON:
		return WriteJSON(w, employees)
	case FormatXLSX:
		return WriteXLSX(w, employees)
	}
	return fmt.Errorf("unsupported export format %q", string(f))
}

func row(e domain.Employee) []string {
	return []string{
		e.Name,
		e.Email,
		e.Role,
		e.Department,
		formatSalary(e.Salary),
		formatTime(e.CreatedAt),
	}
}

func formatSalary(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
