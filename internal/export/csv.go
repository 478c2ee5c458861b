package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spec-kit/roster-service/internal/domain"
)

// WriteCSV writes a header row then one row per employee.
func WriteCSV(w io.Writer, employees []domain.Employee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range employees {
		if err := cw.Write(row(e)); err != nil {
			return fmt.Errorf("write csv row %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
