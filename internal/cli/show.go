package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/datatable/internal/dataset"
	"github.com/rshade/datatable/internal/pagination"
	"github.com/rshade/datatable/internal/table"
	"github.com/rshade/datatable/internal/tui"
)

// ErrUnknownSortField is returned when --sort names a column the dataset does not declare.
var ErrUnknownSortField = errors.New("unknown sort field")

type showFlags struct {
	data     []string
	page     int
	pageSize int
	sort     string
	plain    bool
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	var flags showFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display datasets as a sortable, paginated table",
		Long: `Loads one or more YAML or JSON datasets with identical columns and displays their rows.

On a terminal the table is interactive: tab selects a column, s cycles its sort, the arrow keys
page through the data and p cycles the page size. Narrow terminals switch to a list view.
When stdout is not a terminal, or with --plain, the requested page is printed as text.`,
		Example: `  datatable show --data conversions.yaml
  datatable show --data a.yaml --data b.json --sort factor:desc --page 2 --plain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, opts, flags)
		},
	}

	cmd.Flags().StringArrayVar(&flags.data, "data", nil, "dataset file (.yaml, .yml or .json); repeatable")
	cmd.Flags().IntVar(&flags.page, "page", pagination.DefaultPage, "initial page (clamped into range)")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "records per page: 10, 20 or 30 (default from config)")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort as field[:asc|desc]")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "print a plain table instead of the interactive view")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

// showInput is a loaded, validated show invocation.
type showInput struct {
	rows    []dataset.Record
	columns []table.Column[dataset.Record]
	sort    table.SortState
	pager   pagination.Config
}

func runShow(cmd *cobra.Command, opts *rootOptions, flags showFlags) error {
	ctx := cmd.Context()

	in, err := loadShowInput(ctx, opts, cmd.Flags().Changed("page-size"), flags)
	if err != nil {
		return err
	}

	logger.Info().
		Ctx(ctx).
		Int("records", len(in.rows)).
		Int("page", in.pager.CurrentPage).
		Int("page_size", in.pager.PageLimit).
		Str("sort", in.sort.Key).
		Msg("showing dataset")

	if flags.plain || !opts.interactive() {
		return renderPlainShow(cmd.OutOrStdout(), opts, in)
	}
	return runInteractiveShow(ctx, opts, in)
}

func loadShowInput(ctx context.Context, opts *rootOptions, pageSizeSet bool, flags showFlags) (*showInput, error) {
	datasets, err := dataset.LoadAll(ctx, flags.data)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Merge(datasets)
	if err != nil {
		return nil, err
	}
	columns := ds.TableColumns()

	sortState, err := table.ParseSort(flags.sort)
	if err != nil {
		return nil, fmt.Errorf("invalid --sort: %w", err)
	}
	if sortState.Active() && table.ColumnIndex(columns, sortState.Key) < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortField, sortState.Key)
	}

	pageSize := opts.cfg.Table.PageSize
	if pageSizeSet {
		if !pagination.IsPageSizeChoice(flags.pageSize) {
			return nil, fmt.Errorf("invalid --page-size: %w: got %d", pagination.ErrUnsupportedPageSize, flags.pageSize)
		}
		pageSize = flags.pageSize
	}

	return &showInput{
		rows:    ds.Rows,
		columns: columns,
		sort:    sortState,
		pager: pagination.Config{
			CurrentPage:  flags.page,
			PageLimit:    pageSize,
			TotalRecords: len(ds.Rows),
			Neighbors:    opts.cfg.Table.Neighbors,
			Logger:       &logger,
		},
	}, nil
}

// renderPlainShow prints the requested page, sorted across the whole data set.
func renderPlainShow(w io.Writer, opts *rootOptions, in *showInput) error {
	rows := table.Sort(in.rows, in.columns, in.sort)

	var pager *pagination.Controller
	if opts.cfg.Table.Paginate {
		var err error
		pager, err = pagination.NewController(in.pager)
		if err != nil {
			return fmt.Errorf("configuring paginator: %w", err)
		}
		rows = pagination.Page(rows, pager.State())
	}

	_, err := io.WriteString(w, tui.RenderPlain(in.columns, rows, in.sort, pager))
	return err
}

func runInteractiveShow(ctx context.Context, opts *rootOptions, in *showInput) error {
	model, err := newShowModel(opts, in)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
