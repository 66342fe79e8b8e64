// Package pagination computes page-number windows and renders page
// navigation.
//
// The window computation is a pure function of the current page, the page
// count and the number of page slots, so it can be tested without rendering.
package pagination

import "strconv"

// DefaultMaxPageNumbers is the number of page slots used when none is given.
const DefaultMaxPageNumbers = 5

// Item is one entry of a page window: a page number or an ellipsis.
type Item struct {
	Page     int
	Ellipsis bool
}

// PageItem returns the item for page p.
func PageItem(p int) Item { return Item{Page: p} }

// EllipsisItem is the gap marker.
var EllipsisItem = Item{Ellipsis: true}

// String renders the item as it appears in the control.
func (i Item) String() string {
	if i.Ellipsis {
		return "..."
	}
	return strconv.Itoa(i.Page)
}

// Window returns the sequence of page numbers and ellipses to display.
//
// When every page fits, all pages are shown. Otherwise the slots are split
// into floor(max/2) on the left and the remainder minus one on the right, and
// the first and last page stay reachable on either side of an ellipsis.
func Window(currentPage, totalPages, maxPageNumbers int) []Item {
	if maxPageNumbers <= 0 {
		maxPageNumbers = DefaultMaxPageNumbers
	}

	items := make([]Item, 0, maxPageNumbers+4)
	if totalPages <= maxPageNumbers {
		for p := 1; p <= totalPages; p++ {
			items = append(items, PageItem(p))
		}
		return items
	}

	leftSide := maxPageNumbers / 2
	rightSide := maxPageNumbers - leftSide - 1

	switch {
	case currentPage <= leftSide+1:
		for p := 1; p <= maxPageNumbers-1; p++ {
			items = append(items, PageItem(p))
		}
		items = append(items, EllipsisItem, PageItem(totalPages))
	case currentPage >= totalPages-rightSide:
		items = append(items, PageItem(1), EllipsisItem)
		for p := totalPages - maxPageNumbers + 2; p <= totalPages; p++ {
			items = append(items, PageItem(p))
		}
	default:
		items = append(items, PageItem(1), EllipsisItem)
		for p := currentPage - leftSide + 1; p <= currentPage+rightSide-1; p++ {
			items = append(items, PageItem(p))
		}
		items = append(items, EllipsisItem, PageItem(totalPages))
	}
	return items
}

// TotalPages returns ceil(totalItems/pageSize), or 0 when either is not
// positive.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Bounds returns the half-open index range [lo, hi) of the items on page
// currentPage. Out-of-range pages yield an empty range.
func Bounds(currentPage, pageSize, totalItems int) (lo, hi int) {
	if currentPage < 1 || pageSize <= 0 || totalItems <= 0 {
		return 0, 0
	}
	lo = (currentPage - 1) * pageSize
	if lo >= totalItems {
		return totalItems, totalItems
	}
	hi = min(lo+pageSize, totalItems)
	return lo, hi
}

// Info returns the 1-based first and last item numbers shown on a page, for
// "Showing start to end of total" summaries. An empty collection yields 0, 0.
func Info(currentPage, pageSize, totalItems int) (start, end int) {
	lo, hi := Bounds(currentPage, pageSize, totalItems)
	if hi == lo {
		return 0, 0
	}
	return lo + 1, hi
}
