package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datatable/internal/table"
)

func TestRenderPlain(t *testing.T) {
	out := RenderPlain(conversionColumns(), conversionRows(), table.SortState{}, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "To convert    Into      Multiply by", lines[0])
	assert.Equal(t, "------------  ------  -------------", lines[1])
	assert.Equal(t, "inches        1233             25.4", lines[2])
	assert.Equal(t, "feet          1               30.48", lines[3])
	assert.Equal(t, "yards         13            0.91444", lines[4])
}

func TestRenderPlain_Sorted(t *testing.T) {
	out := RenderPlain(
		conversionColumns(),
		conversionRows(),
		table.SortState{Key: "factor", Direction: table.Descending},
		nil,
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Multiply by ▼")
	assert.True(t, strings.HasPrefix(lines[2], "feet"))
	assert.True(t, strings.HasPrefix(lines[4], "yards"))
}

func TestRenderPlain_WithPaginator(t *testing.T) {
	pager := newController(t, 2, 10, 25)

	out := RenderPlain(conversionColumns(), conversionRows(), table.SortState{}, pager)

	assert.True(t, strings.HasSuffix(out, "\n1 [2] 3   10/page\n"))
}

func TestRenderPlain_NoRecordsOmitsPaginator(t *testing.T) {
	pager := newController(t, 1, 10, 0)

	out := RenderPlain(conversionColumns(), []conversion{}, table.SortState{}, pager)

	assert.NotContains(t, out, "/page")
}
