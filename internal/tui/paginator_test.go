package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datatable/internal/pagination"
)

func newController(t *testing.T, page, limit, total int) *pagination.Controller {
	t.Helper()
	c, err := pagination.NewController(pagination.Config{
		CurrentPage:  page,
		PageLimit:    limit,
		TotalRecords: total,
		Neighbors:    pagination.DefaultNeighbors,
	})
	require.NoError(t, err)
	return c
}

func TestFormatWindow(t *testing.T) {
	window, err := pagination.ComputeWindow(15, 30, pagination.DefaultNeighbors)
	require.NoError(t, err)

	assert.Equal(t, "« ‹ 13 14 [15] 16 17 › »", FormatWindow(window, 15))
}

func TestPaginatorLine(t *testing.T) {
	tests := []struct {
		name               string
		page, limit, total int
		want               string
	}{
		{name: "no records renders nothing", page: 1, limit: 10, total: 0, want: ""},
		{name: "single page shows only selector", page: 1, limit: 10, total: 8, want: "10/page"},
		{name: "few pages", page: 2, limit: 10, total: 25, want: "1 [2] 3   10/page"},
		{name: "collapsed window", page: 1, limit: 10, total: 300, want: "« [1] 2 3 4 › »   10/page"},
		{name: "larger page size", page: 1, limit: 30, total: 300, want: "« [1] 2 3 4 › »   30/page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(t, tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.want, PaginatorLine(c))
		})
	}
}

func TestPaginatorLine_Nil(t *testing.T) {
	assert.Empty(t, PaginatorLine(nil))
}

func TestRenderPaginator(t *testing.T) {
	t.Run("no records", func(t *testing.T) {
		assert.Empty(t, RenderPaginator(newController(t, 1, 10, 0)))
	})

	t.Run("single page keeps selector", func(t *testing.T) {
		out := RenderPaginator(newController(t, 1, 10, 5))
		assert.Contains(t, out, "10/page")
		assert.NotContains(t, out, "[1]")
	})

	t.Run("interior page", func(t *testing.T) {
		out := RenderPaginator(newController(t, 15, 10, 300))
		for _, want := range []string{IconJumpPrev, IconPrev, "13", "[15]", "17", IconNext, IconJumpNext, "10/page"} {
			assert.Contains(t, out, want)
		}
		assert.NotContains(t, out, "18")
	})
}
