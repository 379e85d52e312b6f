// Package model provides domain model for dtagen
package model

import (
	"errors"
	"fmt"
)

// Standard validation errors returned by NewDataset
var (
	// ErrDuplicateColumnName is returned when a dataset contains duplicate column names
	ErrDuplicateColumnName = errors.New("duplicate column name")

	// ErrRowArity is returned when a row's length differs from the column count
	ErrRowArity = errors.New("row arity does not match column count")

	// ErrValueType is returned when a cell value kind is incompatible with its column type
	ErrValueType = errors.New("value kind incompatible with column type")

	// ErrValueRange is returned when an integer cell does not fit the column's storage type
	ErrValueRange = errors.New("value out of range for column type")
)

// ColumnType represents the semantic storage type of a column
type ColumnType int

const (
	// ColumnTypeByte represents an int8 column, also used for boolean-as-numeric data
	ColumnTypeByte ColumnType = iota
	// ColumnTypeInt represents an int16 column
	ColumnTypeInt
	// ColumnTypeLong represents an int32 column
	ColumnTypeLong
	// ColumnTypeFloat represents a float32 column
	ColumnTypeFloat
	// ColumnTypeDouble represents a float64 column
	ColumnTypeDouble
	// ColumnTypeString represents a fixed-width text column
	ColumnTypeString
)

// String returns the Stata-side type name
func (ct ColumnType) String() string {
	switch ct {
	case ColumnTypeByte:
		return "byte"
	case ColumnTypeInt:
		return "int"
	case ColumnTypeLong:
		return "long"
	case ColumnTypeFloat:
		return "float"
	case ColumnTypeDouble:
		return "double"
	case ColumnTypeString:
		return "str"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether the column type stores numeric data
func (ct ColumnType) IsNumeric() bool {
	return ct != ColumnTypeString
}

// Data ranges for the integer column types. Values above the upper bound
// are reserved for missing-value codes in the target format.
const (
	MaxByte = 100
	MinByte = -127
	MaxInt  = 32740
	MinInt  = -32767
	MaxLong = 2147483620
	MinLong = -2147483647
)

// Column describes one dataset column: its name, storage type, and the
// optional display format and variable label carried into the output file.
type Column struct {
	// Name is the column (variable) name
	Name string
	// Type is the storage type
	Type ColumnType
	// Format is the display format; a type-appropriate default is used when empty
	Format string
	// Label is the variable label; may be empty
	Label string
}

// valueKind discriminates the in-memory representation of a cell
type valueKind int

const (
	kindMissing valueKind = iota
	kindInt
	kindFloat
	kindString
)

// Value is one typed cell. Missing is an explicit state rather than an
// in-band sentinel; the serializer maps it to the encoding the target
// format version uses for the column's type.
type Value struct {
	kind valueKind
	i    int64
	f    float64
	s    string
}

// NewInt creates an integer cell value.
func NewInt(v int64) Value {
	return Value{kind: kindInt, i: v}
}

// NewFloat creates a floating-point cell value.
func NewFloat(v float64) Value {
	return Value{kind: kindFloat, f: v}
}

// NewString creates a text cell value.
func NewString(v string) Value {
	return Value{kind: kindString, s: v}
}

// NewMissing creates a missing cell value.
func NewMissing() Value {
	return Value{kind: kindMissing}
}

// IsMissing reports whether the cell holds no data
func (v Value) IsMissing() bool {
	return v.kind == kindMissing
}

// Int returns the integer content; zero when the cell is not an integer
func (v Value) Int() int64 {
	return v.i
}

// Float returns the floating-point content; zero when the cell is not a float
func (v Value) Float() float64 {
	return v.f
}

// String returns the text content; empty when the cell is not text
func (v Value) String() string {
	return v.s
}

// Equal compare Value.
func (v Value) Equal(v2 Value) bool {
	return v == v2
}

// Dataset represents an ordered tabular dataset: declared columns plus
// ordered rows of typed cells. It is the value passed to a Serializer.
type Dataset struct {
	// label is the dataset label written to the file header
	label string
	// columns is the ordered column definitions
	columns []Column
	// rows is the ordered row data
	rows [][]Value
	// widths holds the byte width of each string column (zero for numeric columns)
	widths []int
}

// NewDataset create new Dataset. It validates that column names are
// unique, that every row has one cell per column, and that each cell's
// kind fits its column type. String column widths are derived from the
// longest value in the column (minimum one byte).
func NewDataset(label string, columns []Column, rows [][]Value) (*Dataset, error) {
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, ok := seen[col.Name]; ok {
			return nil, fmt.Errorf("column %q: %w", col.Name, ErrDuplicateColumnName)
		}
		seen[col.Name] = struct{}{}
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		if col.Type == ColumnTypeString {
			widths[i] = 1
		}
	}

	for rowIdx, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w",
				rowIdx, len(row), len(columns), ErrRowArity)
		}
		for colIdx, cell := range row {
			col := columns[colIdx]
			if err := checkCell(col, cell); err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", rowIdx, col.Name, err)
			}
			if col.Type == ColumnTypeString && len(cell.String()) > widths[colIdx] {
				widths[colIdx] = len(cell.String())
			}
		}
	}

	return &Dataset{
		label:   label,
		columns: columns,
		rows:    rows,
		widths:  widths,
	}, nil
}

// checkCell validates one cell against its column definition
func checkCell(col Column, cell Value) error {
	if cell.IsMissing() {
		// Text has no missing state in the target format; callers use a
		// placeholder value instead.
		if col.Type == ColumnTypeString {
			return ErrValueType
		}
		return nil
	}

	switch col.Type {
	case ColumnTypeByte, ColumnTypeInt, ColumnTypeLong:
		if cell.kind != kindInt {
			return ErrValueType
		}
		return checkIntRange(col.Type, cell.Int())
	case ColumnTypeFloat, ColumnTypeDouble:
		if cell.kind != kindFloat {
			return ErrValueType
		}
		return nil
	case ColumnTypeString:
		if cell.kind != kindString {
			return ErrValueType
		}
		return nil
	default:
		return ErrValueType
	}
}

// checkIntRange validates that an integer fits the column's storage type
func checkIntRange(ct ColumnType, v int64) error {
	switch ct {
	case ColumnTypeByte:
		if v < MinByte || v > MaxByte {
			return ErrValueRange
		}
	case ColumnTypeInt:
		if v < MinInt || v > MaxInt {
			return ErrValueRange
		}
	case ColumnTypeLong:
		if v < MinLong || v > MaxLong {
			return ErrValueRange
		}
	}
	return nil
}

// Label return dataset label.
func (d *Dataset) Label() string {
	return d.label
}

// Columns return column definitions.
func (d *Dataset) Columns() []Column {
	return d.columns
}

// Rows return row data.
func (d *Dataset) Rows() [][]Value {
	return d.rows
}

// Width returns the byte width of the string column at index i, or zero
// for numeric columns.
func (d *Dataset) Width(i int) int {
	return d.widths[i]
}

// NumRows return the row count.
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// NumColumns return the column count.
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// Equal compare Dataset.
func (d *Dataset) Equal(d2 *Dataset) bool {
	if d.label != d2.label {
		return false
	}
	if len(d.columns) != len(d2.columns) {
		return false
	}
	for i, col := range d.columns {
		if col != d2.columns[i] {
			return false
		}
	}
	if len(d.rows) != len(d2.rows) {
		return false
	}
	for i, row := range d.rows {
		for j, cell := range row {
			if !cell.Equal(d2.rows[i][j]) {
				return false
			}
		}
	}
	return true
}
