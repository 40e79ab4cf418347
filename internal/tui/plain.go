package tui

import (
	"strings"

	"github.com/rshade/datatable/internal/pagination"
	"github.com/rshade/datatable/internal/table"
)

// plainColumnGap separates columns in plain output.
const plainColumnGap = "  "

// RenderPlain renders rows as an unstyled text table for non-interactive output, followed by
// the paginator line when pager is non-nil and has records. Rows are sorted by s first.
func RenderPlain[T any](
	columns []table.Column[T],
	rows []T,
	s table.SortState,
	pager *pagination.Controller,
) string {
	var b strings.Builder

	headers := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, c := range columns {
		width := c.DisplayWidth()
		headers[i] = table.Fit(table.HeaderTitle(c.Header, s.DirectionFor(c.Key)), width, c.Numeric)
		rules[i] = strings.Repeat("-", width)
	}
	writeLine(&b, headers)
	writeLine(&b, rules)

	for _, r := range table.Sort(rows, columns, s) {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = table.Fit(c.Cell(r), c.DisplayWidth(), c.Numeric)
		}
		writeLine(&b, cells)
	}

	if line := PaginatorLine(pager); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func writeLine(b *strings.Builder, cells []string) {
	b.WriteString(strings.TrimRight(strings.Join(cells, plainColumnGap), " "))
	b.WriteString("\n")
}
