package listview_test

import (
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listview "github.com/rshade/datatable/internal/tui/list"
)

func numbered(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func render(item int, selected bool) string {
	if selected {
		return "> " + strconv.Itoa(item)
	}
	return "  " + strconv.Itoa(item)
}

func TestVirtualListModel_New(t *testing.T) {
	m := listview.NewVirtualListModel(numbered(5), 20, 80, render)

	assert.Equal(t, 5, m.ItemCount())
	assert.Equal(t, 20, m.Height())
	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 5, m.VisibleTo())
}

func TestVirtualListModel_VisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		height     int
		selected   int
		expectFrom int
		expectTo   int
	}{
		{name: "first page", total: 100, height: 20, selected: 0, expectFrom: 0, expectTo: 20},
		{name: "middle", total: 100, height: 20, selected: 50, expectFrom: 40, expectTo: 60},
		{name: "last", total: 100, height: 20, selected: 99, expectFrom: 80, expectTo: 100},
		{name: "fewer items than height", total: 5, height: 20, selected: 4, expectFrom: 0, expectTo: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := listview.NewVirtualListModel(numbered(tt.total), tt.height, 80, render)
			m.SetSelected(tt.selected)

			assert.Equal(t, tt.expectFrom, m.VisibleFrom())
			assert.Equal(t, tt.expectTo, m.VisibleTo())
		})
	}
}

func TestVirtualListModel_KeyNavigation(t *testing.T) {
	m := listview.NewVirtualListModel(numbered(50), 10, 80, render)

	keys := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{msg: tea.KeyMsg{Type: tea.KeyDown}, want: 1},
		{msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, want: 2},
		{msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, want: 1},
		{msg: tea.KeyMsg{Type: tea.KeyPgDown}, want: 11},
		{msg: tea.KeyMsg{Type: tea.KeyEnd}, want: 49},
		{msg: tea.KeyMsg{Type: tea.KeyDown}, want: 49},
		{msg: tea.KeyMsg{Type: tea.KeyPgUp}, want: 39},
		{msg: tea.KeyMsg{Type: tea.KeyHome}, want: 0},
		{msg: tea.KeyMsg{Type: tea.KeyUp}, want: 0},
	}

	for _, k := range keys {
		_, _ = m.Update(k.msg)
		assert.Equal(t, k.want, m.Selected(), "after %s", k.msg.String())
	}
}

func TestVirtualListModel_View(t *testing.T) {
	m := listview.NewVirtualListModel(numbered(30), 3, 80, render)
	m.SetSelected(10)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"  9", "> 10", "  11"}, lines)
}

func TestVirtualListModel_Empty(t *testing.T) {
	m := listview.NewVirtualListModel([]int{}, 10, 80, render)

	assert.Empty(t, m.View())
	_, ok := m.SelectedItem()
	assert.False(t, ok)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Selected())
}

func TestVirtualListModel_SetItems(t *testing.T) {
	m := listview.NewVirtualListModel(numbered(30), 5, 80, render)
	m.SetSelected(25)

	m.SetItems(numbered(10))

	assert.Equal(t, 9, m.Selected())
	item, ok := m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, 9, item)
}

func TestVirtualListModel_WindowResize(t *testing.T) {
	m := listview.NewVirtualListModel(numbered(30), 5, 80, render)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})

	assert.Equal(t, 40, m.Width())
	assert.Equal(t, 12, m.Height())
	assert.Equal(t, 12, m.VisibleTo())
}
