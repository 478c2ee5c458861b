package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/events"
	"github.com/spec-kit/roster-service/internal/pagination"
)

// PageResult is one page of a filtered roster.
type PageResult struct {
	Search              string
	SelectedDepartments []string
	Departments         []string
	Employees           []domain.Employee
	Pager               pagination.Controls
}

// PageQuery describes a stateless page request.
type PageQuery struct {
	Search       string
	Departments  []string
	Page         int
	ItemsPerPage int
	MaxVisible   int
}

// QueryPage filters the roster and cuts out the requested page. Pages past
// the end land on the last page.
func (s *DataService) QueryPage(q PageQuery) PageResult {
	filtered := s.FilteredView(q.Search, q.Departments)
	p := pagination.New(q.ItemsPerPage)
	p.SetTotalItems(len(filtered))
	if q.Page > p.LastPage() {
		q.Page = p.LastPage()
	}
	p.SetCurrentPage(q.Page)

	return PageResult{
		Search:              q.Search,
		SelectedDepartments: slices.Clone(q.Departments),
		Departments:         s.Departments(),
		Employees:           pagination.Window(p, filtered),
		Pager:               p.Controls(q.MaxVisible),
	}
}

// RosterView is a long-lived browsing session: search term, department
// selection and page cursor, re-derived whenever the roster changes.
type RosterView struct {
	mu          sync.Mutex
	data        *DataService
	paginator   *pagination.Paginator
	maxVisible  int
	search      string
	selected    []string
	unsubscribe func()
}

// NewRosterView builds a view over data and subscribes it to roster changes.
func NewRosterView(data *DataService, itemsPerPage, maxVisible int) *RosterView {
	if maxVisible < 1 {
		maxVisible = pagination.DefaultMaxVisible
	}
	v := &RosterView{
		data:       data,
		paginator:  pagination.New(itemsPerPage),
		maxVisible: maxVisible,
	}
	v.refreshLocked()
	v.unsubscribe = data.Subscribe(func(context.Context, events.Event) error {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.refreshLocked()
		return nil
	})
	return v
}

// Close detaches the view from roster notifications.
func (v *RosterView) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
	}
}

// SetSearch changes the free-text term. Surrounding whitespace is ignored.
func (v *RosterView) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = strings.TrimSpace(term)
	v.refreshLocked()
}

// SetDepartmentSelected adds or removes one department from the selection.
func (v *RosterView) SetDepartmentSelected(department string, selected bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	idx := slices.Index(v.selected, department)
	switch {
	case selected && idx < 0:
		v.selected = append(v.selected, department)
	case !selected && idx >= 0:
		v.selected = slices.Delete(v.selected, idx, idx+1)
	}
	v.refreshLocked()
}

// SetDepartments replaces the selection, dropping duplicates and blanks.
func (v *RosterView) SetDepartments(departments []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	selected := make([]string, 0, len(departments))
	for _, d := range departments {
		if d == "" || slices.Contains(selected, d) {
			continue
		}
		selected = append(selected, d)
	}
	v.selected = selected
	v.refreshLocked()
}

// SetPage moves to page when it exists.
func (v *RosterView) SetPage(page int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.paginator.SetCurrentPage(page)
}

// NextPage advances one page when possible.
func (v *RosterView) NextPage() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.paginator.NextPage()
}

// PrevPage steps back one page when possible.
func (v *RosterView) PrevPage() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.paginator.PrevPage()
}

// SetItemsPerPage changes the page size and returns to page 1.
func (v *RosterView) SetItemsPerPage(k int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.paginator.SetItemsPerPage(k)
	v.refreshLocked()
}

// Snapshot returns the current page and pager state.
func (v *RosterView) Snapshot() PageResult {
	v.mu.Lock()
	defer v.mu.Unlock()
	filtered := v.data.FilteredView(v.search, v.selected)
	v.paginator.SetTotalItems(len(filtered))
	return PageResult{
		Search:              v.search,
		SelectedDepartments: slices.Clone(v.selected),
		Departments:         v.data.Departments(),
		Employees:           pagination.Window(v.paginator, filtered),
		Pager:               v.paginator.Controls(v.maxVisible),
	}
}

// Filtered returns every employee matching the view's criteria.
func (v *RosterView) Filtered() []domain.Employee {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.data.FilteredView(v.search, v.selected)
}

func (v *RosterView) refreshLocked() {
	v.paginator.SetTotalItems(len(v.data.FilteredView(v.search, v.selected)))
}
