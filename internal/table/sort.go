package table

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Direction is a column's sort direction.
type Direction int

const (
	// Unsorted leaves rows in host order.
	Unsorted Direction = iota
	// Ascending sorts smallest first.
	Ascending
	// Descending sorts largest first.
	Descending
)

// Sort order names accepted by ParseSort.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// Sort parsing errors.
var (
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'factor:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return SortOrderAsc
	case Descending:
		return SortOrderDesc
	default:
		return "none"
	}
}

// SortState is the single-column sort of a table. The zero value is unsorted.
type SortState struct {
	Key       string
	Direction Direction
}

// Active reports whether rows are sorted.
func (s SortState) Active() bool {
	return s.Key != "" && s.Direction != Unsorted
}

// Toggle advances the sort for key. The same key cycles ascending, descending, unsorted;
// a different key starts ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key != key || s.Direction == Unsorted {
		return SortState{Key: key, Direction: Ascending}
	}
	if s.Direction == Ascending {
		return SortState{Key: key, Direction: Descending}
	}
	return SortState{}
}

// DirectionFor returns the direction applied to key.
func (s SortState) DirectionFor(key string) Direction {
	if s.Key != key {
		return Unsorted
	}
	return s.Direction
}

// ParseSort parses "field" or "field:order" into a SortState. An empty string is unsorted.
func ParseSort(sortStr string) (SortState, error) {
	if strings.TrimSpace(sortStr) == "" {
		return SortState{}, nil
	}

	parts := strings.Split(sortStr, ":")
	if len(parts) > sortPartsMax {
		return SortState{}, fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	field := strings.TrimSpace(parts[0])
	if field == "" {
		return SortState{}, ErrEmptySortField
	}

	order := SortOrderAsc
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}

	switch order {
	case SortOrderAsc:
		return SortState{Key: field, Direction: Ascending}, nil
	case SortOrderDesc:
		return SortState{Key: field, Direction: Descending}, nil
	default:
		return SortState{}, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
}

// Sort returns rows ordered by state. It returns a new slice and never modifies rows.
// The sort is stable in both directions. Unknown keys and unsorted state return a copy
// in host order.
func Sort[T any](rows []T, columns []Column[T], state SortState) []T {
	sorted := slices.Clone(rows)
	if !state.Active() {
		return sorted
	}

	idx := ColumnIndex(columns, state.Key)
	if idx < 0 {
		return sorted
	}
	col := columns[idx]

	slices.SortStableFunc(sorted, func(a, b T) int {
		c := CompareValues(col.Value(a), col.Value(b))
		if state.Direction == Descending {
			return -c
		}
		return c
	})
	return sorted
}

// CompareValues orders two cell values. Numbers compare numerically, times chronologically,
// strings lexically and bools false first. Nil sorts before everything else. Mixed or
// unknown types fall back to comparing their formatted text.
func CompareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return cmp.Compare(fa, fb)
		}
	}

	switch va := a.(type) {
	case string:
		if vb, ok := b.(string); ok {
			return cmp.Compare(va, vb)
		}
	case time.Time:
		if vb, ok := b.(time.Time); ok {
			return va.Compare(vb)
		}
	case bool:
		if vb, ok := b.(bool); ok {
			return compareBool(va, vb)
		}
	}

	return cmp.Compare(FormatValue(a), FormatValue(b))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

//nolint:cyclop // One branch per numeric kind.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
