package pagination

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultNeighbors is the number of page numbers shown on each side of the current page
// before the window collapses into jump markers.
const DefaultNeighbors = 3

// ErrInvalidNeighborCount is returned when the neighbor count is not positive.
var ErrInvalidNeighborCount = errors.New("neighbor count must be >= 1")

// ErrUnknownIndicatorKind is returned when decoding an unknown indicator kind.
var ErrUnknownIndicatorKind = errors.New("unknown indicator kind")

// IndicatorKind tags a single entry of a page window.
type IndicatorKind int

const (
	// KindPage is a numbered page control.
	KindPage IndicatorKind = iota
	// KindPrev steps one page back.
	KindPrev
	// KindNext steps one page forward.
	KindNext
	// KindJumpPrev jumps to the first page.
	KindJumpPrev
	// KindJumpNext jumps to the last page.
	KindJumpNext
)

// String returns the name of the indicator kind.
func (k IndicatorKind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindPrev:
		return "prev"
	case KindNext:
		return "next"
	case KindJumpPrev:
		return "jump_prev"
	case KindJumpNext:
		return "jump_next"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k IndicatorKind) MarshalText() ([]byte, error) {
	if k < KindPage || k > KindJumpNext {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIndicatorKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *IndicatorKind) UnmarshalText(text []byte) error {
	for kind := KindPage; kind <= KindJumpNext; kind++ {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownIndicatorKind, text)
}

// Indicator is one entry of a page window. Page is only set for KindPage.
type Indicator struct {
	Kind IndicatorKind `json:"kind"           yaml:"kind"`
	Page int           `json:"page,omitempty" yaml:"page,omitempty"`
}

// PageNumber returns a numbered page indicator.
func PageNumber(page int) Indicator {
	return Indicator{Kind: KindPage, Page: page}
}

// Marker indicators.
//
//nolint:gochecknoglobals // Immutable value markers, compared by value.
var (
	PrevArrow = Indicator{Kind: KindPrev}
	NextArrow = Indicator{Kind: KindNext}
	JumpPrev  = Indicator{Kind: KindJumpPrev}
	JumpNext  = Indicator{Kind: KindJumpNext}
)

// String renders the indicator as plain text, e.g. "15" or "jump_prev".
func (i Indicator) String() string {
	if i.Kind == KindPage {
		return strconv.Itoa(i.Page)
	}
	return i.Kind.String()
}

// ComputeWindow returns the page indicators to display for currentPage out of totalPages.
//
// When every page fits (totalPages <= neighbors+4) the result is simply 1..totalPages.
// Otherwise the window holds the pages within neighbors-1 of the current page, padded on a
// single spilling side so the numeric count stays steady near the edges, bracketed by
// Prev/Next arrows on the spilling sides and always wrapped in JumpPrev/JumpNext.
//
// totalPages == 0 yields an empty window; callers are expected to hide the paginator instead.
func ComputeWindow(currentPage, totalPages, neighbors int) ([]Indicator, error) {
	if neighbors <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNeighborCount, neighbors)
	}
	if totalPages <= 0 {
		return nil, nil
	}

	totalNumbers := neighbors + 2
	totalBlocks := totalNumbers + 2

	if totalPages <= totalBlocks {
		return pageRange(1, totalPages), nil
	}

	startPage := max(currentPage-(neighbors-1), 1)
	endPage := min(currentPage+(neighbors-1), totalPages)

	pages := pageRange(startPage, endPage)
	singleSpillOffset := totalNumbers - len(pages) - 1

	leftSpill := startPage > 1
	rightSpill := endPage < totalPages

	window := make([]Indicator, 0, totalBlocks+len(pages))
	window = append(window, JumpPrev)

	switch {
	case leftSpill && !rightSpill:
		window = append(window, PrevArrow)
		window = append(window, pageRange(startPage-singleSpillOffset, startPage-1)...)
		window = append(window, pages...)
	case !leftSpill && rightSpill:
		window = append(window, pages...)
		window = append(window, pageRange(endPage+1, endPage+singleSpillOffset)...)
		window = append(window, NextArrow)
	case leftSpill && rightSpill:
		window = append(window, PrevArrow)
		window = append(window, pages...)
		window = append(window, NextArrow)
	default:
		window = append(window, pages...)
	}

	return append(window, JumpNext), nil
}

// pageRange returns numbered indicators for from..to inclusive; empty when from > to.
func pageRange(from, to int) []Indicator {
	if from > to {
		return nil
	}
	out := make([]Indicator, 0, to-from+1)
	for p := from; p <= to; p++ {
		out = append(out, PageNumber(p))
	}
	return out
}
