package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datatable/internal/dataset"
	"github.com/rshade/datatable/internal/table"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr error
	}{
		{version: "1.0"},
		{version: "1.4.2"},
		{version: "v1"},
		{version: "", wantErr: dataset.ErrMissingVersion},
		{version: "2.0.0", wantErr: dataset.ErrUnsupportedVersion},
		{version: "0.9.0", wantErr: dataset.ErrUnsupportedVersion},
		{version: "latest", wantErr: dataset.ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := dataset.CheckVersion(tt.version)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	ds, err := dataset.Load(context.Background(), filepath.Join("testdata", "conversions.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "1.0", ds.Version)
	assert.Equal(t, filepath.Join("testdata", "conversions.yaml"), ds.Source)
	require.Len(t, ds.Columns, 3)
	assert.True(t, ds.Columns[2].Numeric)
	require.Len(t, ds.Rows, 3)
	assert.Equal(t, "inches", ds.Rows[0]["fromUnit"])
	assert.InDelta(t, 25.4, ds.Rows[0]["factor"], 1e-9)
}

func TestLoad_JSON(t *testing.T) {
	ds, err := dataset.Load(context.Background(), filepath.Join("testdata", "more_conversions.json"))
	require.NoError(t, err)

	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "miles", ds.Rows[0]["fromUnit"])
	assert.Equal(t, 28, ds.Rows[1]["factor"])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{
			name:    "unsupported extension",
			file:    "data.csv",
			content: "a,b",
			wantErr: dataset.ErrUnsupportedFormat,
		},
		{
			name:    "missing version",
			file:    "data.yaml",
			content: "columns: [{key: a}]\n",
			wantErr: dataset.ErrMissingVersion,
		},
		{
			name:    "empty file",
			file:    "data.yaml",
			content: "",
			wantErr: dataset.ErrMissingVersion,
		},
		{
			name:    "future version",
			file:    "data.yaml",
			content: "version: \"2.0\"\ncolumns: [{key: a}]\n",
			wantErr: dataset.ErrUnsupportedVersion,
		},
		{
			name:    "no columns",
			file:    "data.yaml",
			content: "version: \"1.0\"\nrows: [{a: 1}]\n",
			wantErr: table.ErrNoColumns,
		},
		{
			name:    "duplicate column key",
			file:    "data.yaml",
			content: "version: \"1.0\"\ncolumns: [{key: a}, {key: a}]\n",
			wantErr: table.ErrInvalidColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			_, err := dataset.Load(context.Background(), path)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_MalformedYAML(t *testing.T) {
	_, err := dataset.Decode(strings.NewReader("version: [1.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding dataset")
}

func TestTableColumns(t *testing.T) {
	ds := &dataset.Dataset{
		Version: "1.0",
		Columns: []dataset.ColumnDef{
			{Key: "name"},
			{Header: "Count", Key: "count", Numeric: true, Width: 8},
		},
	}

	columns := ds.TableColumns()
	require.Len(t, columns, 2)
	assert.Equal(t, "name", columns[0].Header)
	assert.Equal(t, 8, columns[1].DisplayWidth())

	row := dataset.Record{"name": "widgets", "count": 1200}
	assert.Equal(t, "widgets", columns[0].Cell(row))
	assert.Equal(t, "1,200", columns[1].Cell(row))
	assert.Empty(t, columns[0].Cell(dataset.Record{}))
}

func TestLoadAll_PreservesOrder(t *testing.T) {
	paths := []string{
		filepath.Join("testdata", "more_conversions.json"),
		filepath.Join("testdata", "conversions.yaml"),
	}

	datasets, err := dataset.LoadAll(context.Background(), paths)
	require.NoError(t, err)

	require.Len(t, datasets, 2)
	assert.Equal(t, paths[0], datasets[0].Source)
	assert.Equal(t, paths[1], datasets[1].Source)
}

func TestLoadAll_FailsOnFirstError(t *testing.T) {
	paths := []string{
		filepath.Join("testdata", "conversions.yaml"),
		writeFile(t, "bad.yaml", "version: \"3\"\ncolumns: [{key: a}]\n"),
	}

	_, err := dataset.LoadAll(context.Background(), paths)
	require.ErrorIs(t, err, dataset.ErrUnsupportedVersion)
}

func TestLoadAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dataset.LoadAll(ctx, []string{filepath.Join("testdata", "conversions.yaml")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMerge(t *testing.T) {
	datasets, err := dataset.LoadAll(context.Background(), []string{
		filepath.Join("testdata", "conversions.yaml"),
		filepath.Join("testdata", "more_conversions.json"),
	})
	require.NoError(t, err)

	merged, err := dataset.Merge(datasets)
	require.NoError(t, err)

	assert.Equal(t, "1.0", merged.Version)
	require.Len(t, merged.Rows, 5)
	assert.Equal(t, "inches", merged.Rows[0]["fromUnit"])
	assert.Equal(t, "ounces", merged.Rows[4]["fromUnit"])
}

func TestMerge_Errors(t *testing.T) {
	_, err := dataset.Merge(nil)
	require.ErrorIs(t, err, dataset.ErrNoDatasets)

	a := &dataset.Dataset{Version: "1.0", Columns: []dataset.ColumnDef{{Key: "a"}}}
	b := &dataset.Dataset{Version: "1.0", Columns: []dataset.ColumnDef{{Key: "b"}}}
	_, err = dataset.Merge([]*dataset.Dataset{a, b})
	require.ErrorIs(t, err, dataset.ErrColumnMismatch)
}

func TestSortRecords(t *testing.T) {
	ds, err := dataset.Load(context.Background(), filepath.Join("testdata", "conversions.yaml"))
	require.NoError(t, err)

	sorted := table.Sort(ds.Rows, ds.TableColumns(), table.SortState{Key: "factor", Direction: table.Descending})

	require.Len(t, sorted, 3)
	assert.Equal(t, "feet", sorted[0]["fromUnit"])
	assert.Equal(t, "yards", sorted[2]["fromUnit"])
}
