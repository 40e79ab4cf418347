package tui

import (
	"fmt"
	"strconv"
	"strings"

	bubbletable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/datatable/internal/config"
	"github.com/rshade/datatable/internal/pagination"
	"github.com/rshade/datatable/internal/table"
	listview "github.com/rshade/datatable/internal/tui/list"
)

const (
	// defaultWidth and defaultHeight are used until the first WindowSizeMsg arrives.
	defaultWidth  = 120
	defaultHeight = 24

	// chromeHeight is the number of lines reserved for the header, status, paginator and help.
	chromeHeight = 8

	// minHeight is the minimum number of body rows.
	minHeight = 3

	// maxPageInput caps the digits collected for a go-to-page jump.
	maxPageInput = 6
)

// ViewState represents the current state of a table model.
type ViewState int

const (
	// ViewStateTable shows the table and paginator.
	ViewStateTable ViewState = iota
	// ViewStateFallback shows the responsive fallback list. The paginator and its keys are
	// inactive; the host decides which rows the list shows.
	ViewStateFallback
	// ViewStateQuitting is set after the user quits.
	ViewStateQuitting
)

// PageChangedMsg is emitted after every paginator navigation so the host can re-slice its rows.
type PageChangedMsg struct {
	pagination.PageChangeEvent
}

// SortChangedMsg is emitted after the user changes the sort so a paging host can re-sort
// its full data set before slicing.
type SortChangedMsg struct {
	Sort table.SortState
}

// RowClickedMsg is emitted when the user selects a row with enter.
type RowClickedMsg[T any] struct {
	Row T
}

// TableConfig configures a TableModel.
type TableConfig[T any] struct {
	// Columns describe the table columns. At least one is required.
	Columns []table.Column[T]

	// Rows are the rows for the current render, owned by the host.
	Rows []T

	// OnRowClick receives the full row when the user presses enter. Nil means no-op.
	OnRowClick func(row T)

	// Responsive enables the fallback view on narrow terminals.
	Responsive bool

	// IsNarrow decides whether a terminal width is narrow. Nil compares against Breakpoint.
	IsNarrow func(width int) bool

	// Breakpoint is the narrow threshold used when IsNarrow is nil. Zero selects the default.
	Breakpoint int

	// Fallback renders one row in the responsive view. Responsive has no effect without it.
	Fallback listview.RenderFunc[T]

	// Paginate enables the paginator.
	Paginate bool

	// Pagination configures the paginator. A zero PageLimit or Neighbors selects the default.
	Pagination pagination.Config

	// SelectedStyle overrides the style of the cursor row. Nil keeps TableSelectedStyle.
	SelectedStyle *lipgloss.Style

	// InitialSort is the sort applied before the first render.
	InitialSort table.SortState

	// Width and Height are the initial terminal size. Zero selects a default.
	Width  int
	Height int

	// Logger receives debug logs. Nil disables logging.
	Logger *zerolog.Logger
}

// TableModel is a Bubble Tea model rendering a sortable table with an optional responsive
// fallback and an optional paginator.
type TableModel[T any] struct {
	state ViewState

	columns    []table.Column[T]
	rows       []T // as supplied by the host
	sorted     []T // rows in display order
	sort       table.SortState
	focusedCol int

	onRowClick func(T)
	responsive bool
	isNarrow   func(int) bool
	fallback   listview.RenderFunc[T]

	// pager is nil when pagination is disabled.
	pager     *pagination.Controller
	pending   []pagination.PageChangeEvent
	pageInput string // digits typed before keyGotoPage

	table bubbletable.Model
	list  *listview.VirtualListModel[T]

	width  int
	height int

	logger zerolog.Logger
}

// NewTableModel validates cfg and builds a table model.
func NewTableModel[T any](cfg TableConfig[T]) (*TableModel[T], error) {
	if err := table.ValidateColumns(cfg.Columns); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "tui").Logger()
	}

	m := &TableModel[T]{
		state:      ViewStateTable,
		columns:    cfg.Columns,
		rows:       cfg.Rows,
		sort:       cfg.InitialSort,
		onRowClick: cfg.OnRowClick,
		responsive: cfg.Responsive,
		isNarrow:   cfg.IsNarrow,
		fallback:   cfg.Fallback,
		width:      cfg.Width,
		height:     cfg.Height,
		logger:     logger,
	}
	if m.width <= 0 {
		m.width = defaultWidth
	}
	if m.height <= 0 {
		m.height = defaultHeight
	}
	if m.isNarrow == nil {
		breakpoint := cfg.Breakpoint
		if breakpoint <= 0 {
			breakpoint = config.DefaultBreakpoint
		}
		m.isNarrow = func(width int) bool { return width < breakpoint }
	}
	if idx := table.ColumnIndex(m.columns, m.sort.Key); idx >= 0 {
		m.focusedCol = idx
	}

	if cfg.Paginate {
		pager, err := m.newPager(cfg.Pagination, cfg.Logger)
		if err != nil {
			return nil, fmt.Errorf("configuring paginator: %w", err)
		}
		m.pager = pager
	}

	m.table = bubbletable.New(
		bubbletable.WithFocused(true),
		bubbletable.WithHeight(m.bodyHeight()),
	)
	styles := bubbletable.DefaultStyles()
	styles.Header = TableHeaderStyle
	styles.Cell = TableCellStyle
	styles.Selected = TableSelectedStyle
	if cfg.SelectedStyle != nil {
		styles.Selected = *cfg.SelectedStyle
	}
	m.table.SetStyles(styles)

	m.applySort()
	m.list = listview.NewVirtualListModel(m.sorted, m.bodyHeight(), m.width, m.renderFallback)
	m.updateState()
	return m, nil
}

// newPager wraps the host's page-change callback so the model also queues a PageChangedMsg.
func (m *TableModel[T]) newPager(cfg pagination.Config, logger *zerolog.Logger) (*pagination.Controller, error) {
	if cfg.PageLimit == 0 {
		cfg.PageLimit = pagination.DefaultPageLimit
	}
	if cfg.Neighbors == 0 {
		cfg.Neighbors = pagination.DefaultNeighbors
	}
	if cfg.Logger == nil {
		cfg.Logger = logger
	}
	hostCallback := cfg.OnPageChanged
	cfg.OnPageChanged = func(e pagination.PageChangeEvent) {
		m.pending = append(m.pending, e)
		if hostCallback != nil {
			hostCallback(e)
		}
	}
	return pagination.NewController(cfg)
}

// Init implements tea.Model.
func (m *TableModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles keys and resizes.
func (m *TableModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *TableModel[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pager != nil && m.state == ViewStateTable {
		if cmd, handled := m.handlePageInput(msg.String()); handled {
			return m, cmd
		}
	}

	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEnter:
		return m, m.clickSelected()
	}

	if m.state == ViewStateFallback {
		_, cmd := m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case keyNextCol:
		m.focusedCol = (m.focusedCol + 1) % len(m.columns)
		return m, nil
	case keyPrevCol:
		m.focusedCol = (m.focusedCol - 1 + len(m.columns)) % len(m.columns)
		return m, nil
	case keySort:
		m.ToggleSort(m.columns[m.focusedCol].Key)
		sort := m.sort
		return m, func() tea.Msg { return SortChangedMsg{Sort: sort} }
	}

	if m.pager != nil {
		switch msg.String() {
		case keyLeft, keyH:
			m.pager.Activate(pagination.PrevArrow)
			return m, m.flushPageEvents()
		case keyRight, keyL:
			m.pager.Activate(pagination.NextArrow)
			return m, m.flushPageEvents()
		case keyFirst:
			m.pager.Activate(pagination.JumpPrev)
			return m, m.flushPageEvents()
		case keyLast:
			m.pager.Activate(pagination.JumpNext)
			return m, m.flushPageEvents()
		case keyPageSize:
			m.pager.CyclePageLimit()
			return m, m.flushPageEvents()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handlePageInput collects a page number typed as digits and activates that page indicator
// on keyGotoPage. Any other key discards the digits and is not consumed.
func (m *TableModel[T]) handlePageInput(k string) (tea.Cmd, bool) {
	if len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
		if len(m.pageInput) < maxPageInput {
			m.pageInput += k
		}
		return nil, true
	}

	input := m.pageInput
	m.pageInput = ""
	if input == "" || k != keyGotoPage {
		return nil, false
	}
	page, err := strconv.Atoi(input)
	if err != nil {
		return nil, true
	}
	m.pager.Activate(pagination.PageNumber(page))
	return m.flushPageEvents(), true
}

// PageInput returns the digits typed so far for a go-to-page jump.
func (m *TableModel[T]) PageInput() string {
	return m.pageInput
}

// flushPageEvents turns queued controller events into PageChangedMsg commands, in order.
func (m *TableModel[T]) flushPageEvents() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.pending))
	for _, e := range m.pending {
		cmds = append(cmds, func() tea.Msg { return PageChangedMsg{PageChangeEvent: e} })
	}
	m.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// clickSelected delivers the row under the cursor to OnRowClick.
func (m *TableModel[T]) clickSelected() tea.Cmd {
	row, ok := m.SelectedRow()
	if !ok {
		return nil
	}
	if m.onRowClick != nil {
		m.onRowClick(row)
	}
	return func() tea.Msg { return RowClickedMsg[T]{Row: row} }
}

// SelectedRow returns the row under the cursor in the active view.
func (m *TableModel[T]) SelectedRow() (T, bool) {
	if m.state == ViewStateFallback {
		return m.list.SelectedItem()
	}
	var zero T
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.sorted) {
		return zero, false
	}
	return m.sorted[idx], true
}

// ToggleSort advances the sort for the column with key and re-sorts the rows.
func (m *TableModel[T]) ToggleSort(key string) {
	if idx := table.ColumnIndex(m.columns, key); idx >= 0 {
		m.focusedCol = idx
	}
	m.sort = m.sort.Toggle(key)
	m.logger.Debug().
		Str("key", m.sort.Key).
		Stringer("direction", m.sort.Direction).
		Msg("sort changed")
	m.applySort()
}

// SetSort replaces the sort state and re-sorts the rows.
func (m *TableModel[T]) SetSort(s table.SortState) {
	m.sort = s
	m.applySort()
}

// Sort returns the current sort state.
func (m *TableModel[T]) Sort() table.SortState {
	return m.sort
}

// FocusedColumn returns the key of the column the sort keys act on.
func (m *TableModel[T]) FocusedColumn() string {
	return m.columns[m.focusedCol].Key
}

// SetRows replaces the host rows. The sort state is kept and applied to the new rows.
func (m *TableModel[T]) SetRows(rows []T) {
	m.rows = rows
	m.applySort()
}

// Rows returns the rows in display order.
func (m *TableModel[T]) Rows() []T {
	return m.sorted
}

// SetTotalRecords updates the paginator's record count without emitting an event.
func (m *TableModel[T]) SetTotalRecords(total int) {
	if m.pager != nil {
		m.pager.SetTotalRecords(total)
	}
}

// Pager returns the paginator controller, or nil when pagination is disabled.
func (m *TableModel[T]) Pager() *pagination.Controller {
	return m.pager
}

// State returns the current view state.
func (m *TableModel[T]) State() ViewState {
	return m.state
}

// SetSize resizes the table and fallback list and re-evaluates the responsive breakpoint.
func (m *TableModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(m.bodyHeight())
	m.list.SetSize(width, m.bodyHeight())
	m.updateState()
}

func (m *TableModel[T]) bodyHeight() int {
	return max(m.height-chromeHeight, minHeight)
}

// useFallback reports whether the responsive fallback replaces the table.
func (m *TableModel[T]) useFallback() bool {
	return m.responsive && m.fallback != nil && m.isNarrow(m.width)
}

func (m *TableModel[T]) updateState() {
	if m.state == ViewStateQuitting {
		return
	}
	if m.useFallback() {
		m.state = ViewStateFallback
		return
	}
	m.state = ViewStateTable
}

// applySort re-sorts the host rows and refreshes both views.
func (m *TableModel[T]) applySort() {
	m.sorted = table.Sort(m.rows, m.columns, m.sort)

	cols := make([]bubbletable.Column, len(m.columns))
	for i, c := range m.columns {
		cols[i] = bubbletable.Column{
			Title: table.HeaderTitle(c.Header, m.sort.DirectionFor(c.Key)),
			Width: c.DisplayWidth(),
		}
	}

	rows := make([]bubbletable.Row, len(m.sorted))
	for i, r := range m.sorted {
		row := make(bubbletable.Row, len(m.columns))
		for j, c := range m.columns {
			row[j] = table.Fit(c.Cell(r), c.DisplayWidth(), c.Numeric)
		}
		rows[i] = row
	}

	// Rows must be cleared first: the bubbles table renders rows against the new columns.
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	// The bubbles cursor drops to -1 on an empty table and SetRows never restores it.
	switch cursor := m.table.Cursor(); {
	case len(rows) == 0:
	case cursor < 0:
		m.table.SetCursor(0)
	case cursor >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	}

	if m.list != nil {
		m.list.SetItems(m.sorted)
	}
}

func (m *TableModel[T]) renderFallback(row T, selected bool) string {
	out := m.fallback(row, selected)
	if selected {
		return FallbackSelectedStyle.Render(out)
	}
	return out
}

// View renders the active view.
func (m *TableModel[T]) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateFallback:
		return m.list.View() + "\n\n" + HelpStyle.Render(helpTextList)
	default:
		return m.renderTableView()
	}
}

func (m *TableModel[T]) renderTableView() string {
	var b strings.Builder
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	if paginator := RenderPaginator(m.pager); paginator != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Right, paginator))
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(helpText))
	return b.String()
}

// renderStatus shows the focused column and the active sort.
func (m *TableModel[T]) renderStatus() string {
	focused := m.columns[m.focusedCol]
	status := "Column: " + focused.Header
	if m.sort.Active() {
		idx := table.ColumnIndex(m.columns, m.sort.Key)
		if idx >= 0 {
			status += "  Sort: " + table.HeaderTitle(m.columns[idx].Header, m.sort.Direction)
		}
	}
	if m.pageInput != "" {
		status += "  Go to page: " + m.pageInput
	}
	return HelpStyle.Render(status)
}
