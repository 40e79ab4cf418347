package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateColumns(t *testing.T) {
	valid := conversionColumns()
	require.NoError(t, ValidateColumns(valid))

	require.ErrorIs(t, ValidateColumns[conversion](nil), ErrNoColumns)

	noKey := []Column[conversion]{{Header: "x", Value: func(conversion) any { return nil }}}
	require.ErrorIs(t, ValidateColumns(noKey), ErrInvalidColumn)

	noValue := []Column[conversion]{{Header: "x", Key: "x"}}
	require.ErrorIs(t, ValidateColumns(noValue), ErrInvalidColumn)

	dup := append(conversionColumns(), conversionColumns()[0])
	err := ValidateColumns(dup)
	require.ErrorIs(t, err, ErrInvalidColumn)
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestColumn_Cell(t *testing.T) {
	cols := conversionColumns()
	row := conversionRows()[0]

	assert.Equal(t, "inches", cols[0].Cell(row))
	assert.Equal(t, "25.4", cols[2].Cell(row))

	custom := cols[1]
	custom.Render = func(any) string { return "Custom Render" }
	assert.Equal(t, "Custom Render", custom.Cell(row))
}

func TestColumn_DisplayWidth(t *testing.T) {
	assert.Equal(t, 12, Column[conversion]{Header: "x", Width: 12}.DisplayWidth())
	assert.Equal(t, 12, Column[conversion]{Header: "To convert"}.DisplayWidth())
	assert.Equal(t, minColumnWidth, Column[conversion]{Header: "Id"}.DisplayWidth())
}

func TestColumnIndex(t *testing.T) {
	cols := conversionColumns()
	assert.Equal(t, 2, ColumnIndex(cols, "factor"))
	assert.Equal(t, -1, ColumnIndex(cols, "nope"))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "int", in: 18248, want: "18,248"},
		{name: "negative int", in: -1500, want: "-1,500"},
		{name: "float", in: 1234.5, want: "1,234.5"},
		{name: "small float", in: 0.91444, want: "0.91444"},
		{name: "negative float", in: -0.5, want: "-0.5"},
		{name: "integral float", in: 300.0, want: "300"},
		{name: "string", in: "feet", want: "feet"},
		{name: "bool", in: true, want: "true"},
		{name: "time", in: time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC), want: "2025-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestHeaderTitle(t *testing.T) {
	assert.Equal(t, "Into", HeaderTitle("Into", Unsorted))
	assert.Equal(t, "Into ▲", HeaderTitle("Into", Ascending))
	assert.Equal(t, "Into ▼", HeaderTitle("Into", Descending))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "feet  ", Fit("feet", 6, false))
	assert.Equal(t, "  25.4", Fit("25.4", 6, true))
	assert.Equal(t, "millim…", Fit("millimetres", 7, false))
	assert.Equal(t, 7, StringWidth(Fit("millimetres", 7, false)))
	assert.Empty(t, Truncate("abc", 0))
}
