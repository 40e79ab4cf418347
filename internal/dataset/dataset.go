// Package dataset loads the tabular data files shown by the datatable CLI.
//
// A dataset file is YAML or JSON:
//
//	version: "1.0"
//	columns:
//	  - {header: "To convert", key: fromUnit}
//	  - {header: "Multiply by", key: factor, numeric: true}
//	rows:
//	  - {fromUnit: inches, factor: 25.4}
//
// Rows are decoded into Records and read through table.Column accessors.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/datatable/internal/logging"
	"github.com/rshade/datatable/internal/table"
)

// SupportedVersions is the semver constraint a dataset's version must satisfy.
const SupportedVersions = "^1"

var (
	// ErrMissingVersion is returned when a dataset has no version field.
	ErrMissingVersion = errors.New("dataset version is required")

	// ErrUnsupportedVersion is returned when a dataset version does not satisfy SupportedVersions.
	ErrUnsupportedVersion = errors.New("unsupported dataset version")

	// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml and .json.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrColumnMismatch is returned when merged datasets declare different columns.
	ErrColumnMismatch = errors.New("datasets have different columns")

	// ErrNoDatasets is returned when merging an empty list.
	ErrNoDatasets = errors.New("no datasets to merge")
)

// Record is one row of a dataset, keyed by column key.
type Record map[string]any

// ColumnDef declares one column of a dataset.
type ColumnDef struct {
	Header  string `yaml:"header"            json:"header"`
	Key     string `yaml:"key"               json:"key"`
	Numeric bool   `yaml:"numeric,omitempty" json:"numeric,omitempty"`
	Width   int    `yaml:"width,omitempty"   json:"width,omitempty"`
}

// Dataset is a decoded data file.
type Dataset struct {
	Version string      `yaml:"version" json:"version"`
	Columns []ColumnDef `yaml:"columns" json:"columns"`
	Rows    []Record    `yaml:"rows"    json:"rows"`

	// Source is the path the dataset was loaded from, if any.
	Source string `yaml:"-" json:"-"`
}

// CheckVersion reports whether version satisfies SupportedVersions.
func CheckVersion(version string) error {
	if strings.TrimSpace(version) == "" {
		return ErrMissingVersion
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

// Decode reads a YAML or JSON dataset from r and validates it.
func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding dataset: %w", ErrMissingVersion)
		}
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks the version and the column declarations.
func (d *Dataset) Validate() error {
	if err := CheckVersion(d.Version); err != nil {
		return err
	}
	return table.ValidateColumns(d.TableColumns())
}

// TableColumns converts the column declarations into table columns reading Records.
func (d *Dataset) TableColumns() []table.Column[Record] {
	columns := make([]table.Column[Record], 0, len(d.Columns))
	for _, c := range d.Columns {
		header := c.Header
		if header == "" {
			header = c.Key
		}
		columns = append(columns, table.Column[Record]{
			Header:  header,
			Key:     c.Key,
			Numeric: c.Numeric,
			Width:   c.Width,
			Value:   recordValue(c.Key),
		})
	}
	return columns
}

func recordValue(key string) func(Record) any {
	return func(r Record) any { return r[key] }
}

// Load reads and validates the dataset at path.
func Load(ctx context.Context, path string) (*Dataset, error) {
	log := logging.FromContext(ctx)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	ds.Source = path

	log.Debug().
		Ctx(ctx).
		Str("component", "dataset").
		Str("path", path).
		Str("version", ds.Version).
		Int("columns", len(ds.Columns)).
		Int("rows", len(ds.Rows)).
		Msg("dataset loaded")
	return ds, nil
}

// LoadAll loads paths concurrently. The result keeps the order of paths; the first error
// cancels the remaining loads.
func LoadAll(ctx context.Context, paths []string) ([]*Dataset, error) {
	results := make([]*Dataset, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			ds, err := Load(gCtx, path)
			if err != nil {
				return err
			}
			results[i] = ds
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Merge concatenates the rows of datasets that declare the same column keys.
// The first dataset's column declarations and version are kept.
func Merge(datasets []*Dataset) (*Dataset, error) {
	if len(datasets) == 0 {
		return nil, ErrNoDatasets
	}

	first := datasets[0]
	merged := &Dataset{
		Version: first.Version,
		Columns: first.Columns,
		Source:  first.Source,
	}

	keys := columnKeys(first.Columns)
	for _, ds := range datasets {
		if !slices.Equal(keys, columnKeys(ds.Columns)) {
			return nil, fmt.Errorf("%w: %s and %s", ErrColumnMismatch, first.Source, ds.Source)
		}
		merged.Rows = append(merged.Rows, ds.Rows...)
	}
	return merged, nil
}

func columnKeys(columns []ColumnDef) []string {
	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = c.Key
	}
	return keys
}
