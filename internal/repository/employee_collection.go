package repository

import (
	"container/list"
	"sort"

	"github.com/spec-kit/roster-service/internal/domain"
)

// EmployeeCollection is an insertion-ordered set of employees keyed by id.
// It is not safe for concurrent use; DataService serializes access.
type EmployeeCollection struct {
	order *list.List
	index map[string]*list.Element
}

// NewEmployeeCollection builds an empty collection.
func NewEmployeeCollection() *EmployeeCollection {
	return &EmployeeCollection{
		order: list.New(),
		index: make(map[string]*list.Element),
	}
}

// Add normalizes fields into an Employee and appends it. Adding an id that is
// already present replaces the stored record in place.
func (c *EmployeeCollection) Add(fields domain.EmployeeFields) domain.Employee {
	emp := domain.NewEmployee(fields)
	if el, ok := c.index[emp.ID]; ok {
		el.Value = emp
		return emp
	}
	c.index[emp.ID] = c.order.PushBack(emp)
	return emp
}

// Remove deletes the employee with id, reporting false when it was absent.
func (c *EmployeeCollection) Remove(id string) (domain.Employee, bool) {
	el, ok := c.index[id]
	if !ok {
		return domain.Employee{}, false
	}
	delete(c.index, id)
	return c.order.Remove(el).(domain.Employee), true
}

// GetByID looks up an employee.
func (c *EmployeeCollection) GetByID(id string) (domain.Employee, bool) {
	el, ok := c.index[id]
	if !ok {
		return domain.Employee{}, false
	}
	return el.Value.(domain.Employee), true
}

// Has reports whether id is present.
func (c *EmployeeCollection) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// GetAll returns a copy of the contents in insertion order.
func (c *EmployeeCollection) GetAll() []domain.Employee {
	out := make([]domain.Employee, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(domain.Employee))
	}
	return out
}

// Count returns the number of stored employees.
func (c *EmployeeCollection) Count() int {
	return c.order.Len()
}

// Clear drops every employee.
func (c *EmployeeCollection) Clear() {
	c.order.Init()
	c.index = make(map[string]*list.Element)
}

// ReplaceAll clears the collection and bulk-inserts fields in order.
func (c *EmployeeCollection) ReplaceAll(fields []domain.EmployeeFields) {
	c.Clear()
	for _, f := range fields {
		c.Add(f)
	}
}

// Filter returns employees matching search (empty matches all) and the
// department selection (empty matches all), in insertion order.
func (c *EmployeeCollection) Filter(search string, departments []string) []domain.Employee {
	out := make([]domain.Employee, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		emp := el.Value.(domain.Employee)
		if search != "" && !emp.MatchesSearch(search) {
			continue
		}
		if !emp.MatchesDepartments(departments) {
			continue
		}
		out = append(out, emp)
	}
	return out
}

// Departments returns the distinct departments present, sorted ascending.
func (c *EmployeeCollection) Departments() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for el := c.order.Front(); el != nil; el = el.Next() {
		dept := el.Value.(domain.Employee).Department
		if _, ok := seen[dept]; ok {
			continue
		}
		seen[dept] = struct{}{}
		out = append(out, dept)
	}
	sort.Strings(out)
	return out
}
