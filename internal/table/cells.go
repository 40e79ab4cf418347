package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Layout constants.
const (
	sortMarkerWidth = 2
	minColumnWidth  = 6
	ellipsis        = "…"
	dateLayout      = "2006-01-02"
)

// Sort markers shown next to a sorted column header.
const (
	MarkerAscending  = "▲"
	MarkerDescending = "▼"
)

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatValue renders a cell value as text. Integers and floats get thousand separators,
// floats keep their shortest exact representation, times render as dates.
func FormatValue(v any) string {
	if v == nil {
		return ""
	}
	if f, ok := toFloat(v); ok {
		return formatNumber(f)
	}

	switch val := v.(type) {
	case string:
		return val
	case time.Time:
		return val.Format(dateLayout)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// formatNumber formats f with thousand separators on the integer part.
func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	if f == math.Trunc(f) && f < math.MaxInt64 {
		return sign + printer.Sprintf("%d", int64(f))
	}

	text := strconv.FormatFloat(f, 'f', -1, 64)
	intPart, fracPart, found := strings.Cut(text, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return sign + text
	}
	out := sign + printer.Sprintf("%d", n)
	if found {
		out += "." + fracPart
	}
	return out
}

// SortMarker returns the header marker for a direction, or an empty string when unsorted.
func SortMarker(d Direction) string {
	switch d {
	case Ascending:
		return MarkerAscending
	case Descending:
		return MarkerDescending
	default:
		return ""
	}
}

// HeaderTitle returns the header text with the sort marker appended when sorted.
func HeaderTitle(header string, d Direction) string {
	if marker := SortMarker(d); marker != "" {
		return header + " " + marker
	}
	return header
}

// StringWidth returns the display width of s in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// Fit truncates s to width and pads it, right-aligned when numeric.
func Fit(s string, width int, numeric bool) string {
	s = Truncate(s, width)
	if numeric {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}
