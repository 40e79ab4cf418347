package pagination

import (
	"errors"
	"fmt"
	"slices"
)

// Page-size selector choices and defaults.
const (
	DefaultPageLimit = 10
	DefaultPage      = 1
	MinPage          = 1
)

// PageSizeChoices are the records-per-page options offered by the page-size selector.
//
//nolint:gochecknoglobals // Fixed selector options.
var PageSizeChoices = []int{10, 20, 30}

// Common validation errors.
var (
	ErrInvalidPageLimit    = errors.New("page limit must be > 0")
	ErrInvalidTotalRecords = errors.New("total records must be >= 0")
	ErrUnsupportedPageSize = errors.New("page size must be one of 10, 20, 30")
)

// State is the paginator's page state.
type State struct {
	CurrentPage  int `json:"current_page"  yaml:"current_page"`
	PageLimit    int `json:"page_limit"    yaml:"page_limit"`
	TotalRecords int `json:"total_records" yaml:"total_records"`
}

// TotalPages returns ceil(TotalRecords / PageLimit), or 0 when there are no records.
func (s State) TotalPages() int {
	return totalPages(s.TotalRecords, s.PageLimit)
}

// Offset returns the zero-based index of the first record on the current page.
func (s State) Offset() int {
	if s.CurrentPage < MinPage {
		return 0
	}
	return (s.CurrentPage - 1) * s.PageLimit
}

// Validate checks the state for configuration errors (value receiver).
func (s State) Validate() error {
	if s.PageLimit <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageLimit, s.PageLimit)
	}
	if s.TotalRecords < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotalRecords, s.TotalRecords)
	}
	return nil
}

// IsPageSizeChoice reports whether size is one of PageSizeChoices.
func IsPageSizeChoice(size int) bool {
	return slices.Contains(PageSizeChoices, size)
}

// NextPageSize returns the selector choice following size, wrapping around.
// Sizes outside the choice list restart at the first choice.
func NextPageSize(size int) int {
	i := slices.Index(PageSizeChoices, size)
	if i < 0 {
		return PageSizeChoices[0]
	}
	return PageSizeChoices[(i+1)%len(PageSizeChoices)]
}

// Page returns the items that fall on the current page of s.
// It returns a sub-slice of items (no copy); an empty slice when the page is past the end.
func Page[T any](items []T, s State) []T {
	if len(items) == 0 || s.PageLimit <= 0 {
		return items
	}

	start := s.Offset()
	if start >= len(items) {
		return items[:0]
	}
	end := min(start+s.PageLimit, len(items))
	return items[start:end]
}

func totalPages(totalRecords, pageLimit int) int {
	if totalRecords <= 0 || pageLimit <= 0 {
		return 0
	}
	pages := totalRecords / pageLimit
	if totalRecords%pageLimit > 0 {
		pages++
	}
	return pages
}
