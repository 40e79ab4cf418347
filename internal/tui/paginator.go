package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/datatable/internal/pagination"
)

// paginatorGap separates the page-number row from the page-size selector.
const paginatorGap = "   "

// RenderPaginator renders the page-number row and page-size selector for c.
// It returns an empty string when there are no records, and only the selector
// when everything fits on one page.
func RenderPaginator(c *pagination.Controller) string {
	if c == nil || !c.Visible() {
		return ""
	}

	selector := PageSizeStyle.Render(pageSizeLabel(c.State().PageLimit))
	if !c.ShowPageNumbers() {
		return selector
	}

	window := c.Window()
	current := c.State().CurrentPage
	parts := make([]string, 0, len(window))
	for _, ind := range window {
		parts = append(parts, renderIndicator(ind, current))
	}

	numbers := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return lipgloss.JoinHorizontal(lipgloss.Center, numbers, paginatorGap, selector)
}

func renderIndicator(ind pagination.Indicator, current int) string {
	if ind.Kind == pagination.KindPage {
		if ind.Page == current {
			return CurrentPageStyle.Render(IndicatorLabel(ind, current))
		}
		return PageStyle.Render(IndicatorLabel(ind, current))
	}
	return ArrowStyle.Render(IndicatorLabel(ind, current))
}

// IndicatorLabel returns the unstyled label of an indicator; the current page is bracketed.
func IndicatorLabel(ind pagination.Indicator, current int) string {
	switch ind.Kind {
	case pagination.KindPage:
		if ind.Page == current {
			return "[" + strconv.Itoa(ind.Page) + "]"
		}
		return strconv.Itoa(ind.Page)
	case pagination.KindPrev:
		return IconPrev
	case pagination.KindNext:
		return IconNext
	case pagination.KindJumpPrev:
		return IconJumpPrev
	case pagination.KindJumpNext:
		return IconJumpNext
	default:
		return "?"
	}
}

// FormatWindow renders an indicator sequence as a single unstyled line,
// e.g. "« ‹ 13 14 [15] 16 17 › »".
func FormatWindow(window []pagination.Indicator, current int) string {
	labels := make([]string, 0, len(window))
	for _, ind := range window {
		labels = append(labels, IndicatorLabel(ind, current))
	}
	return strings.Join(labels, " ")
}

// PaginatorLine renders c as a single unstyled line for plain output.
func PaginatorLine(c *pagination.Controller) string {
	if c == nil || !c.Visible() {
		return ""
	}
	selector := pageSizeLabel(c.State().PageLimit)
	if !c.ShowPageNumbers() {
		return selector
	}
	return FormatWindow(c.Window(), c.State().CurrentPage) + paginatorGap + selector
}

func pageSizeLabel(limit int) string {
	return fmt.Sprintf("%d/page", limit)
}
