package service

import (
	"time"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/remote"
)

// Seed values for fields the remote source does not provide, assigned by position.
var (
	seedRoles = []string{
		"Software Engineer", "Product Manager", "Designer", "Marketing Specialist",
		"Sales Representative", "HR Manager", "Finance Analyst", "Operations Manager",
		"QA Engineer", "DevOps Engineer",
	}
	seedDepartments = []string{"Engineering", "Marketing", "Sales", "HR", "Finance", "Operations"}
)

const (
	seedBaseSalary = 50000
	seedSalaryStep = 5000
)

// Hydrator maps remote records into employee fields under a local id namespace.
type Hydrator struct {
	prefix string
	now    func() time.Time
}

// NewHydrator builds a hydrator namespacing remote ids with prefix.
func NewHydrator(prefix string) Hydrator {
	return Hydrator{prefix: prefix, now: func() time.Time { return time.Now().UTC() }}
}

// LocalID namespaces a remote id. An empty remote id stays empty.
func (h Hydrator) LocalID(remoteID string) string {
	if remoteID == "" {
		return ""
	}
	return h.prefix + remoteID
}

// Hydrate converts a full fetch, synthesizing absent role, department, salary
// and creation time from each record's position.
func (h Hydrator) Hydrate(raws []remote.RawRecord) []domain.EmployeeFields {
	now := h.now()
	out := make([]domain.EmployeeFields, 0, len(raws))
	for i, raw := range raws {
		fields := domain.EmployeeFields{
			ID:         h.LocalID(raw.ID),
			Name:       raw.Name,
			Email:      raw.Email,
			Role:       raw.Role,
			Department: raw.Department,
			CreatedAt:  now,
		}
		if fields.Role == "" {
			fields.Role = seedRoles[i%len(seedRoles)]
		}
		if fields.Department == "" {
			fields.Department = seedDepartments[i%len(seedDepartments)]
		}
		if raw.Salary != nil {
			fields.Salary = *raw.Salary
		} else {
			fields.Salary = float64(seedBaseSalary + (i%10)*seedSalaryStep)
		}
		if raw.CreatedAt != nil {
			fields.CreatedAt = *raw.CreatedAt
		}
		out = append(out, fields)
	}
	return out
}

// FromCreated combines a create response with the submitted fields. Values
// echoed by the remote win; nothing is synthesized.
func (h Hydrator) FromCreated(raw remote.RawRecord, submitted domain.EmployeeFields) domain.EmployeeFields {
	fields := submitted
	fields.ID = h.LocalID(raw.ID)
	if raw.Name != "" {
		fields.Name = raw.Name
	}
	if raw.Email != "" {
		fields.Email = raw.Email
	}
	if raw.Role != "" {
		fields.Role = raw.Role
	}
	if raw.Department != "" {
		fields.Department = raw.Department
	}
	if raw.Salary != nil {
		fields.Salary = *raw.Salary
	}
	if raw.CreatedAt != nil {
		fields.CreatedAt = *raw.CreatedAt
	}
	return fields
}
