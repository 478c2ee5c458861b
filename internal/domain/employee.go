package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalIDPrefix prefixes ids generated in-process.
const LocalIDPrefix = "emp_"

// Employee is a single roster entry. Values are replaced, never mutated, once stored.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Department string
	Salary     float64
	CreatedAt  time.Time
}

// EmployeeFields carries raw input for NewEmployee. Zero values mean "omitted".
type EmployeeFields struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Department string
	Salary     float64
	CreatedAt  time.Time
}

// NewEmployee normalizes fields into an Employee, filling the id and creation time when absent.
func NewEmployee(fields EmployeeFields) Employee {
	emp := Employee{
		ID:         fields.ID,
		Name:       fields.Name,
		Email:      fields.Email,
		Role:       fields.Role,
		Department: fields.Department,
		Salary:     fields.Salary,
		CreatedAt:  fields.CreatedAt,
	}
	if emp.ID == "" {
		emp.ID = GenerateID()
	}
	if emp.Salary < 0 {
		emp.Salary = 0
	}
	if emp.CreatedAt.IsZero() {
		emp.CreatedAt = time.Now().UTC()
	}
	return emp
}

// GenerateID returns a process-unique id of the form emp_<unix millis>_<9 random chars>.
func GenerateID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s%d_%s", LocalIDPrefix, time.Now().UnixMilli(), suffix)
}

// Fields returns the employee as input fields, id included.
func (e Employee) Fields() EmployeeFields {
	return EmployeeFields{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       e.Role,
		Department: e.Department,
		Salary:     e.Salary,
		CreatedAt:  e.CreatedAt,
	}
}

// MatchesSearch reports whether term occurs, case-insensitively, in name, email, role or department.
func (e Employee) MatchesSearch(term string) bool {
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Name), needle) ||
		strings.Contains(strings.ToLower(e.Email), needle) ||
		strings.Contains(strings.ToLower(e.Role), needle) ||
		strings.Contains(strings.ToLower(e.Department), needle)
}

// MatchesDepartments reports whether the employee's department is selected. An empty selection matches all.
func (e Employee) MatchesDepartments(selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	return slices.Contains(selected, e.Department)
}
