package pagination

import (
	"fmt"

	"github.com/rs/zerolog"
)

// PageChangeEvent is delivered to the host after every navigation.
type PageChangeEvent struct {
	CurrentPage  int `json:"current_page"  yaml:"current_page"`
	TotalPages   int `json:"total_pages"   yaml:"total_pages"`
	PageLimit    int `json:"page_limit"    yaml:"page_limit"`
	TotalRecords int `json:"total_records" yaml:"total_records"`
}

// Config configures a Controller.
type Config struct {
	// CurrentPage is the initial page; it is clamped into range.
	CurrentPage int

	// PageLimit is the number of records per page. Must be > 0.
	PageLimit int

	// TotalRecords is the size of the host's data set. Must be >= 0.
	TotalRecords int

	// Neighbors is the neighbor count passed to ComputeWindow. Must be > 0.
	Neighbors int

	// OnPageChanged receives every PageChangeEvent. Nil means no-op.
	OnPageChanged func(PageChangeEvent)

	// Logger receives debug logs for navigation. Nil disables logging.
	Logger *zerolog.Logger
}

// Controller owns a paginator's page state. Its state is mutated only through the
// navigation methods, each of which emits exactly one PageChangeEvent, even when the
// clamped page equals the previous one.
//
// A Controller is not safe for concurrent use; it is driven from a single UI event loop.
type Controller struct {
	state     State
	neighbors int
	onChange  func(PageChangeEvent)
	logger    zerolog.Logger
}

// NewController validates cfg and returns a controller positioned on the clamped initial page.
func NewController(cfg Config) (*Controller, error) {
	neighbors := cfg.Neighbors
	if neighbors <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNeighborCount, neighbors)
	}

	state := State{
		CurrentPage:  cfg.CurrentPage,
		PageLimit:    cfg.PageLimit,
		TotalRecords: cfg.TotalRecords,
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "pagination").Logger()
	}

	c := &Controller{
		state:     state,
		neighbors: neighbors,
		onChange:  cfg.OnPageChanged,
		logger:    logger,
	}
	c.state.CurrentPage = c.clamp(state.CurrentPage)
	return c, nil
}

// State returns a copy of the current page state.
func (c *Controller) State() State {
	return c.state
}

// TotalPages returns the derived page count.
func (c *Controller) TotalPages() int {
	return c.state.TotalPages()
}

// Neighbors returns the configured neighbor count.
func (c *Controller) Neighbors() int {
	return c.neighbors
}

// Visible reports whether the paginator renders at all.
func (c *Controller) Visible() bool {
	return c.state.TotalRecords > 0
}

// ShowPageNumbers reports whether the page-number row renders.
// The page-size selector is shown whenever Visible is true.
func (c *Controller) ShowPageNumbers() bool {
	return c.TotalPages() > 1
}

// Window returns the indicator sequence for the current state, or nil when there are no records.
func (c *Controller) Window() []Indicator {
	if !c.Visible() {
		return nil
	}
	// neighbors was validated at construction.
	window, _ := ComputeWindow(c.state.CurrentPage, c.TotalPages(), c.neighbors)
	return window
}

// Meta returns serializable metadata for the current page.
func (c *Controller) Meta() Meta {
	return NewMeta(c.state)
}

// GotoPage moves to page, clamped into [1, max(TotalPages, 1)], and emits a PageChangeEvent.
func (c *Controller) GotoPage(page int) {
	c.gotoPage(page, c.state.PageLimit)
}

// MoveNext moves one page forward.
func (c *Controller) MoveNext() {
	c.GotoPage(c.state.CurrentPage + 1)
}

// MovePrev moves one page back.
func (c *Controller) MovePrev() {
	c.GotoPage(c.state.CurrentPage - 1)
}

// JumpToFirst moves to page 1.
func (c *Controller) JumpToFirst() {
	c.GotoPage(MinPage)
}

// JumpToLast moves to the last page.
func (c *Controller) JumpToLast() {
	c.GotoPage(c.TotalPages())
}

// SetPageLimit changes the page size and returns to page 1.
// A non-positive limit is a programming error: it is rejected and no event is emitted.
func (c *Controller) SetPageLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageLimit, limit)
	}
	c.gotoPage(MinPage, limit)
	return nil
}

// CyclePageLimit advances the page-size selector to the next choice.
func (c *Controller) CyclePageLimit() {
	// NextPageSize always returns a positive choice.
	_ = c.SetPageLimit(NextPageSize(c.state.PageLimit))
}

// SetTotalRecords updates the record count after the host's data set changed and re-clamps
// the current page. It does not emit an event.
func (c *Controller) SetTotalRecords(total int) {
	c.state.TotalRecords = max(total, 0)
	c.state.CurrentPage = c.clamp(c.state.CurrentPage)
}

// Activate performs the navigation an indicator stands for.
func (c *Controller) Activate(ind Indicator) {
	switch ind.Kind {
	case KindPage:
		c.GotoPage(ind.Page)
	case KindPrev:
		c.MovePrev()
	case KindNext:
		c.MoveNext()
	case KindJumpPrev:
		c.JumpToFirst()
	case KindJumpNext:
		c.JumpToLast()
	}
}

func (c *Controller) gotoPage(page, limit int) {
	c.state.PageLimit = limit
	c.state.CurrentPage = c.clamp(page)

	event := PageChangeEvent{
		CurrentPage:  c.state.CurrentPage,
		TotalPages:   c.TotalPages(),
		PageLimit:    c.state.PageLimit,
		TotalRecords: c.state.TotalRecords,
	}

	c.logger.Debug().
		Int("requested_page", page).
		Int("current_page", event.CurrentPage).
		Int("total_pages", event.TotalPages).
		Int("page_limit", event.PageLimit).
		Msg("page changed")

	if c.onChange != nil {
		c.onChange(event)
	}
}

// clamp bounds page into [1, max(TotalPages, 1)].
func (c *Controller) clamp(page int) int {
	upper := max(c.TotalPages(), MinPage)
	return min(max(page, MinPage), upper)
}
