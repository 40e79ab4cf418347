package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/datatable/internal/pagination"
	"github.com/rshade/datatable/internal/tui"
)

// Output formats of the window command.
const (
	outputText = "text"
	outputJSON = "json"
)

// ErrUnsupportedOutput is returned for --output values other than text and json.
var ErrUnsupportedOutput = errors.New("unsupported output format")

type windowFlags struct {
	page      int
	records   int
	pageSize  int
	neighbors int
	output    string
}

// windowResult is the JSON document printed by the window command.
type windowResult struct {
	Window []pagination.Indicator `json:"window"`
	Meta   pagination.Meta        `json:"meta"`
}

func newWindowCmd(opts *rootOptions) *cobra.Command {
	var flags windowFlags

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the paginator window for a page",
		Long: `Computes the page indicators the paginator shows for a page, page size and record count.

The current page is shown in brackets; « and » jump to the first and last page, ‹ and › step
one page.`,
		Example: `  datatable window --page 15 --records 300
  datatable window --page 1 --records 25 --page-size 10 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWindow(cmd, opts, flags)
		},
	}

	cmd.Flags().IntVar(&flags.page, "page", pagination.DefaultPage, "current page (clamped into range)")
	cmd.Flags().IntVar(&flags.records, "records", 0, "total number of records")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "records per page (default from config)")
	cmd.Flags().IntVar(&flags.neighbors, "neighbors", 0, "neighbor count (default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: text or json (default from config)")

	return cmd
}

func runWindow(cmd *cobra.Command, opts *rootOptions, flags windowFlags) error {
	pageSize := opts.cfg.Table.PageSize
	if cmd.Flags().Changed("page-size") {
		pageSize = flags.pageSize
	}
	neighbors := opts.cfg.Table.Neighbors
	if cmd.Flags().Changed("neighbors") {
		if flags.neighbors <= 0 {
			return fmt.Errorf("%w: got %d", pagination.ErrInvalidNeighborCount, flags.neighbors)
		}
		neighbors = flags.neighbors
	}
	output := opts.cfg.Output.DefaultFormat
	if flags.output != "" {
		output = flags.output
	}

	pager, err := pagination.NewController(pagination.Config{
		CurrentPage:  flags.page,
		PageLimit:    pageSize,
		TotalRecords: flags.records,
		Neighbors:    neighbors,
		Logger:       &logger,
	})
	if err != nil {
		return err
	}

	switch output {
	case outputText:
		return writeWindowText(cmd.OutOrStdout(), pager)
	case outputJSON:
		return writeWindowJSON(cmd.OutOrStdout(), pager)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, output)
	}
}

func writeWindowText(w io.Writer, pager *pagination.Controller) error {
	meta := pager.Meta()
	if !pager.Visible() {
		_, err := fmt.Fprintln(w, "no records")
		return err
	}
	_, err := fmt.Fprintf(w, "%s\npage %d of %d (%d records)\n",
		tui.PaginatorLine(pager), meta.CurrentPage, meta.TotalPages, meta.TotalItems)
	return err
}

func writeWindowJSON(w io.Writer, pager *pagination.Controller) error {
	result := windowResult{
		Window: pager.Window(),
		Meta:   pager.Meta(),
	}
	if result.Window == nil {
		result.Window = []pagination.Indicator{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
