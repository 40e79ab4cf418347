// Package table holds the column descriptors, sort state and cell formatting shared by the
// interactive table model and the plain-text renderer.
package table

import (
	"errors"
	"fmt"
)

// ErrNoColumns is returned when a table is configured without columns.
var ErrNoColumns = errors.New("table requires at least one column")

// ErrInvalidColumn is returned when a column descriptor is incomplete.
var ErrInvalidColumn = errors.New("invalid column")

// Column describes how one column reads and displays a row of type T.
// Columns are owned by the host and read-only to the table.
type Column[T any] struct {
	// Header is the column title.
	Header string

	// Key identifies the column for sorting and selection (the accessor key).
	Key string

	// Numeric right-aligns the column and formats numbers with thousand separators.
	Numeric bool

	// Width is the display width in cells. Zero selects a width from the header.
	Width int

	// Value extracts the cell value from a row.
	Value func(row T) any

	// Render optionally overrides the default cell formatting.
	Render func(value any) string
}

// Cell returns the display string for row in this column.
func (c Column[T]) Cell(row T) string {
	value := c.Value(row)
	if c.Render != nil {
		return c.Render(value)
	}
	return FormatValue(value)
}

// DisplayWidth returns the configured width, or the header width plus room for a sort marker.
func (c Column[T]) DisplayWidth() int {
	if c.Width > 0 {
		return c.Width
	}
	return max(StringWidth(c.Header)+sortMarkerWidth, minColumnWidth)
}

// ValidateColumns checks that columns are usable and their keys unique.
func ValidateColumns[T any](columns []Column[T]) error {
	if len(columns) == 0 {
		return ErrNoColumns
	}

	seen := make(map[string]bool, len(columns))
	for i, c := range columns {
		if c.Key == "" {
			return fmt.Errorf("%w: column %d has no key", ErrInvalidColumn, i)
		}
		if c.Value == nil {
			return fmt.Errorf("%w: column %q has no value accessor", ErrInvalidColumn, c.Key)
		}
		if seen[c.Key] {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidColumn, c.Key)
		}
		seen[c.Key] = true
	}
	return nil
}

// ColumnIndex returns the index of the column with key, or -1.
func ColumnIndex[T any](columns []Column[T], key string) int {
	for i, c := range columns {
		if c.Key == key {
			return i
		}
	}
	return -1
}
