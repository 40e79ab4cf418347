package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/datatable/internal/dataset"
	"github.com/rshade/datatable/internal/pagination"
	"github.com/rshade/datatable/internal/table"
	"github.com/rshade/datatable/internal/tui"
)

// fallbackSeparator joins column values in the narrow list view.
const fallbackSeparator = " · "

// showModel hosts a TableModel over the full data set. It owns the rows and hands the table
// one sorted page at a time, or every row while the narrow list is shown.
type showModel struct {
	all      []dataset.Record
	columns  []table.Column[dataset.Record]
	table    *tui.TableModel[dataset.Record]
	selected string
}

func newShowModel(opts *rootOptions, in *showInput) (*showModel, error) {
	m := &showModel{
		all:     in.rows,
		columns: in.columns,
	}

	tm, err := tui.NewTableModel(tui.TableConfig[dataset.Record]{
		Columns:     in.columns,
		Responsive:  opts.cfg.Table.Responsive,
		Breakpoint:  opts.cfg.Table.Breakpoint,
		Fallback:    m.renderCard,
		Paginate:    opts.cfg.Table.Paginate,
		Pagination:  in.pager,
		InitialSort: in.sort,
		Logger:      &logger,
	})
	if err != nil {
		return nil, err
	}
	m.table = tm
	m.reslice()
	return m, nil
}

// Init implements tea.Model.
func (m *showModel) Init() tea.Cmd {
	return m.table.Init()
}

// Update re-slices the data on page and sort changes and forwards everything else.
func (m *showModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.PageChangedMsg:
		logger.Debug().
			Int("page", msg.CurrentPage).
			Int("total_pages", msg.TotalPages).
			Msg("re-slicing rows")
		m.reslice()
		return m, nil
	case tui.SortChangedMsg:
		m.reslice()
		return m, nil
	case tui.RowClickedMsg[dataset.Record]:
		m.selected = m.describe(msg.Row)
		return m, nil
	case tea.WindowSizeMsg:
		before := m.table.State()
		_, cmd := m.table.Update(msg)
		if m.table.State() != before {
			m.reslice()
		}
		return m, cmd
	}

	_, cmd := m.table.Update(msg)
	return m, cmd
}

// reslice sorts the full data set and gives the table the current page. The narrow list has
// no paginator, so it gets every row.
func (m *showModel) reslice() {
	rows := table.Sort(m.all, m.columns, m.table.Sort())
	if pager := m.table.Pager(); pager != nil && m.table.State() != tui.ViewStateFallback {
		rows = pagination.Page(rows, pager.State())
	}
	m.table.SetRows(rows)
}

// View renders the table and the last selected row.
func (m *showModel) View() string {
	view := m.table.View()
	if view == "" || m.selected == "" {
		return view
	}
	return view + "\n" + tui.HelpStyle.Render("Selected: "+m.selected)
}

func (m *showModel) renderCard(row dataset.Record, _ bool) string {
	return m.describe(row)
}

// describe renders a record as "Header: value" pairs.
func (m *showModel) describe(row dataset.Record) string {
	parts := make([]string, 0, len(m.columns))
	for _, c := range m.columns {
		parts = append(parts, c.Header+": "+c.Cell(row))
	}
	return strings.Join(parts, fallbackSeparator)
}
