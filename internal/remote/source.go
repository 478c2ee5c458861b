// Package remote defines the system-of-record contract the roster syncs with
// and its network adapters.
package remote

import (
	"context"
	"time"

	"github.com/spec-kit/roster-service/internal/domain"
)

// Source is the remote system of record. Implementations report transport
// failures as *errorutil.NetworkError and rejections as *errorutil.HTTPError.
type Source interface {
	FetchAll(ctx context.Context) ([]RawRecord, error)
	Create(ctx context.Context, fields domain.EmployeeFields) (RawRecord, error)
	Delete(ctx context.Context, remoteID string) error
}

// RawRecord is a record as the remote source knows it. ID is the remote
// identity without any local namespace. Absent optional fields are nil or empty.
type RawRecord struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role,omitempty"`
	Department string     `json:"department,omitempty"`
	Salary     *float64   `json:"salary,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

// FromFields builds the raw form of submitted fields under remoteID.
func FromFields(remoteID string, fields domain.EmployeeFields) RawRecord {
	salary := fields.Salary
	raw := RawRecord{
		ID:         remoteID,
		Name:       fields.Name,
		Email:      fields.Email,
		Role:       fields.Role,
		Department: fields.Department,
		Salary:     &salary,
	}
	if !fields.CreatedAt.IsZero() {
		created := fields.CreatedAt
		raw.CreatedAt = &created
	}
	return raw
}
