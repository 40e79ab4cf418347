package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// RenderFunc renders one item. The selected parameter indicates whether the item has the cursor.
// The returned string may span several lines; each line counts against the viewport height.
type RenderFunc[T any] func(item T, selected bool) string

// VirtualListModel renders a window of items around the selected one.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// selected is the index of the item under the cursor.
	selected int

	// visibleFrom and visibleTo bound the rendered items [from, to).
	visibleFrom int
	visibleTo   int

	// height is the number of items that fit in the viewport.
	height int
	width  int
}

// NewVirtualListModel creates a list over items showing height items at a time.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 1),
		width:      width,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *VirtualListModel[T]) handleKey(key string) {
	switch key {
	case "up", "k":
		m.SetSelected(m.selected - 1)
	case "down", "j":
		m.SetSelected(m.selected + 1)
	case "pgup":
		m.SetSelected(m.selected - m.height)
	case "pgdown":
		m.SetSelected(m.selected + m.height)
	case "home", "g":
		m.SetSelected(0)
	case "end", "G":
		m.SetSelected(len(m.items) - 1)
	}
}

// updateVisibleRange centers the viewport on the selected item, pinned to the list ends.
func (m *VirtualListModel[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}

	from := m.selected - m.height/halfViewportDivisor
	from = min(from, len(m.items)-m.height)
	from = max(from, 0)

	m.visibleFrom = from
	m.visibleTo = min(from+m.height, len(m.items))
}

// View renders the visible items.
func (m *VirtualListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	lines := make([]string, 0, m.visibleTo-m.visibleFrom)
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		lines = append(lines, m.renderFunc(m.items[i], i == m.selected))
	}
	return strings.Join(lines, "\n")
}

// SetItems replaces the items, keeping the selection index within bounds.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.SetSelected(m.selected)
}

// SetSize updates the viewport dimensions.
func (m *VirtualListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = max(height, 1)
	m.updateVisibleRange()
}

// ItemCount returns the total number of items in the list.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the currently selected item index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// SetSelected sets the selected item index, capping to valid bounds.
func (m *VirtualListModel[T]) SetSelected(index int) {
	m.selected = min(max(index, 0), max(len(m.items)-1, 0))
	m.updateVisibleRange()
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible item index (exclusive).
func (m *VirtualListModel[T]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}

// SelectedItem returns the item under the cursor, or false when the list is empty.
func (m *VirtualListModel[T]) SelectedItem() (T, bool) {
	var zero T
	if len(m.items) == 0 {
		return zero, false
	}
	return m.items[m.selected], true
}
