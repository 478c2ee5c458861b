// Package pagination computes page windows over a filtered employee count.
// It holds a small cursor and no rendering concerns.
package pagination

import "fmt"

const (
	DefaultItemsPerPage = 10
	DefaultMaxVisible   = 5
)

// ButtonKind distinguishes page controls from gap markers.
type ButtonKind string

const (
	ButtonPage     ButtonKind = "page"
	ButtonEllipsis ButtonKind = "ellipsis"
)

// PageButton describes one entry of the page control strip.
type PageButton struct {
	Kind   ButtonKind
	Page   int
	Active bool
}

// Controls bundles everything a presentation layer needs for the pager.
type Controls struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	Start       int
	End         int
	HasPrev     bool
	HasNext     bool
	Buttons     []PageButton
	Summary     string
}

// Paginator tracks the current page over totalItems split by itemsPerPage.
// currentPage always lies in [1, max(1, TotalPages())].
type Paginator struct {
	currentPage  int
	itemsPerPage int
	totalItems   int
}

// New builds a paginator on page 1. Non-positive sizes fall back to DefaultItemsPerPage.
func New(itemsPerPage int) *Paginator {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	return &Paginator{currentPage: 1, itemsPerPage: itemsPerPage}
}

func (p *Paginator) CurrentPage() int  { return p.currentPage }
func (p *Paginator) ItemsPerPage() int { return p.itemsPerPage }
func (p *Paginator) TotalItems() int   { return p.totalItems }

// TotalPages is ceil(totalItems / itemsPerPage); zero items yields zero pages.
func (p *Paginator) TotalPages() int {
	pages := p.totalItems / p.itemsPerPage
	if p.totalItems%p.itemsPerPage != 0 {
		pages++
	}
	return pages
}

// LastPage is TotalPages floored at 1, the highest valid cursor value.
func (p *Paginator) LastPage() int {
	return max(1, p.TotalPages())
}

// SetTotalItems updates the count and clamps the cursor down to the last page.
func (p *Paginator) SetTotalItems(n int) {
	if n < 0 {
		n = 0
	}
	p.totalItems = n
	if last := p.LastPage(); p.currentPage > last {
		p.currentPage = last
	}
}

// SetItemsPerPage changes the page size and resets to page 1. Values below 1 are ignored.
func (p *Paginator) SetItemsPerPage(k int) {
	if k < 1 {
		return
	}
	p.itemsPerPage = k
	p.currentPage = 1
}

// SetCurrentPage moves the cursor when 1 <= page <= TotalPages and reports
// whether it did. Out-of-range requests are ignored.
func (p *Paginator) SetCurrentPage(page int) bool {
	if page < 1 || page > p.TotalPages() {
		return false
	}
	p.currentPage = page
	return true
}

// NextPage advances one page unless already on the last one.
func (p *Paginator) NextPage() bool {
	return p.SetCurrentPage(p.currentPage + 1)
}

// PrevPage steps back one page unless already on the first one.
func (p *Paginator) PrevPage() bool {
	return p.SetCurrentPage(p.currentPage - 1)
}

func (p *Paginator) HasPrev() bool { return p.currentPage > 1 }
func (p *Paginator) HasNext() bool { return p.currentPage < p.TotalPages() }

// PageSlice returns [start, end) bounds of the current page within the filtered sequence.
func (p *Paginator) PageSlice() (int, int) {
	start := (p.currentPage - 1) * p.itemsPerPage
	if start > p.totalItems {
		start = p.totalItems
	}
	end := start + min(p.itemsPerPage, p.totalItems-start)
	return start, end
}

// VisiblePageButtons returns a window of up to maxVisible pages starting at
// currentPage - maxVisible/2. Page 1 and the last page are always present,
// with an ellipsis when the window skips pages between them.
func (p *Paginator) VisiblePageButtons(maxVisible int) []PageButton {
	if maxVisible < 1 {
		maxVisible = 1
	}
	totalPages := p.TotalPages()
	startPage := max(1, p.currentPage-maxVisible/2)
	endPage := min(totalPages, startPage+maxVisible-1)

	buttons := make([]PageButton, 0, maxVisible+4)
	if startPage > 1 {
		buttons = append(buttons, p.pageButton(1))
		if startPage > 2 {
			buttons = append(buttons, PageButton{Kind: ButtonEllipsis})
		}
	}
	for i := startPage; i <= endPage; i++ {
		buttons = append(buttons, p.pageButton(i))
	}
	if endPage < totalPages {
		if endPage < totalPages-1 {
			buttons = append(buttons, PageButton{Kind: ButtonEllipsis})
		}
		buttons = append(buttons, p.pageButton(totalPages))
	}
	return buttons
}

func (p *Paginator) pageButton(page int) PageButton {
	return PageButton{Kind: ButtonPage, Page: page, Active: page == p.currentPage}
}

// Summary renders "Showing X-Y of N employees".
func (p *Paginator) Summary() string {
	start, end := p.PageSlice()
	if p.totalItems == 0 {
		return "Showing 0 of 0 employees"
	}
	return fmt.Sprintf("Showing %d-%d of %d employees", start+1, end, p.totalItems)
}

// Controls snapshots the pager state for display.
func (p *Paginator) Controls(maxVisible int) Controls {
	start, end := p.PageSlice()
	return Controls{
		CurrentPage: p.currentPage,
		TotalPages:  p.TotalPages(),
		TotalItems:  p.totalItems,
		Start:       start,
		End:         end,
		HasPrev:     p.HasPrev(),
		HasNext:     p.HasNext(),
		Buttons:     p.VisiblePageButtons(maxVisible),
		Summary:     p.Summary(),
	}
}

// Window returns the current page of items using PageSlice bounds.
func Window[T any](p *Paginator, items []T) []T {
	start, end := p.PageSlice()
	if end > len(items) {
		end = len(items)
	}
	if start > end {
		start = end
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
