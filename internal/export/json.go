package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spec-kit/roster-service/internal/domain"
)

type employeeRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Salary     float64   `json:"salary"`
	CreatedAt  time.Time `json:"createdAt"`
}

// WriteJSON writes an indented array of employee objects.
func WriteJSON(w io.Writer, employees []domain.Employee) error {
	records := make([]employeeRecord, 0, len(employees))
	for _, e := range employees {
		records = append(records, employeeRecord{
			ID:         e.ID,
			Name:       e.Name,
			Email:      e.Email,
			Role:       e.Role,
			Department: e.Department,
			Salary:     e.Salary,
			CreatedAt:  e.CreatedAt.UTC(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode json export: %w", err)
	}
	return nil
}
