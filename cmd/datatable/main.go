// Command datatable renders YAML and JSON datasets as a sortable, paginated terminal table.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rshade/datatable/internal/cli"
	"github.com/rshade/datatable/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(context.Background())
}
