// Package dta serializes tabular datasets to Stata's binary .dta format.
//
// Two layouts are emitted: the legacy fixed-offset layout used by format
// version 114, and the tagged layout introduced with version 117. Version
// capabilities (string width limits, field sizes, observation-count
// width) are checked before any bytes are written, so a schema a version
// cannot represent fails with UnsupportedVersionError and never produces
// a partial file.
package dta

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/dta-tools/dtagen/domain/model"
)

// CanonicalVersion is the default format version fixtures are written in.
const CanonicalVersion = 114

// fixedTimestamp is stamped into every file header. Stata stamps the
// wall clock here; a fixed value keeps regenerated corpora byte-identical.
const fixedTimestamp = "01 Jan 2024 00:00"

// SupportedVersions returns the format versions this writer can emit, in
// ascending order.
func SupportedVersions() []int {
	return []int{114, 117, 118}
}

// versionCaps holds the per-version layout parameters and limits
type versionCaps struct {
	// modern selects the tagged 117+ layout
	modern bool
	// maxStrWidth is the widest representable fixed-width string column
	maxStrWidth int
	// nameField is the size of a variable name field including the NUL
	nameField int
	// fmtField is the size of a display format field including the NUL
	fmtField int
	// varLabelField is the size of a variable label field including the NUL
	varLabelField int
	// wideObs selects a 64-bit observation count
	wideObs bool
	// wideLabel selects a 16-bit dataset label length prefix
	wideLabel bool
}

// capsFor returns the layout parameters for a format version
func capsFor(version int) (versionCaps, bool) {
	switch version {
	case 114:
		return versionCaps{
			maxStrWidth:   244,
			nameField:     33,
			fmtField:      49,
			varLabelField: 81,
		}, true
	case 117:
		return versionCaps{
			modern:        true,
			maxStrWidth:   2045,
			nameField:     33,
			fmtField:      49,
			varLabelField: 81,
		}, true
	case 118:
		return versionCaps{
			modern:        true,
			maxStrWidth:   2045,
			nameField:     129,
			fmtField:      57,
			varLabelField: 321,
			wideObs:       true,
			wideLabel:     true,
		}, true
	default:
		return versionCaps{}, false
	}
}

// Numeric type codes, legacy (single byte) and modern (uint16) encodings.
// String columns encode their byte width instead.
const (
	legacyTypeByte   = 251
	legacyTypeInt    = 252
	legacyTypeLong   = 253
	legacyTypeFloat  = 254
	legacyTypeDouble = 255

	modernTypeByte   = 65530
	modernTypeInt    = 65529
	modernTypeLong   = 65528
	modernTypeFloat  = 65527
	modernTypeDouble = 65526
)

// In-band missing-value codes. Integer types reserve the values above
// their data range; floating-point types reserve specific bit patterns.
const (
	missingByte = 101
	missingInt  = 32741
	missingLong = 2147483621

	missingFloatBits  = 0x7f000000
	missingDoubleBits = 0x7fe0000000000000
)

// Writer serializes datasets to .dta files. The zero value is usable;
// NewWriter exists for symmetry with the rest of the module.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Serialize encodes the dataset in the given format version and writes it
// to path, replacing any existing file. A version that cannot represent
// the schema fails with UnsupportedVersionError before the file is touched.
func (w *Writer) Serialize(ds *model.Dataset, version int, path string) error {
	data, err := encode(ds, version)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dta: failed to write %s: %w", path, err)
	}
	return nil
}

// encode produces the complete file image for one dataset and version
func encode(ds *model.Dataset, version int) ([]byte, error) {
	caps, ok := capsFor(version)
	if !ok {
		return nil, unsupportedVersion(version, "writer emits versions %v", SupportedVersions())
	}
	if err := checkSchema(ds, version, caps); err != nil {
		return nil, err
	}

	if caps.modern {
		return encodeModern(ds, version, caps), nil
	}
	return encodeLegacy(ds, version, caps), nil
}

// checkSchema verifies that the dataset fits the version's limits
func checkSchema(ds *model.Dataset, version int, caps versionCaps) error {
	if ds.NumColumns() > math.MaxInt16 {
		return unsupportedVersion(version, "%d columns exceed the variable limit", ds.NumColumns())
	}
	if !caps.wideObs && ds.NumRows() > math.MaxInt32 {
		return unsupportedVersion(version, "%d rows exceed the 32-bit observation count", ds.NumRows())
	}
	for i, col := range ds.Columns() {
		if len(col.Name) > caps.nameField-1 {
			return unsupportedVersion(version, "variable name %q exceeds %d bytes", col.Name, caps.nameField-1)
		}
		if col.Type == model.ColumnTypeString && ds.Width(i) > caps.maxStrWidth {
			return unsupportedVersion(version, "string column %q width %d exceeds limit %d",
				col.Name, ds.Width(i), caps.maxStrWidth)
		}
	}
	return nil
}

// displayFormat returns the column's display format, falling back to a
// type-appropriate default
func displayFormat(col model.Column, width int) string {
	if col.Format != "" {
		return col.Format
	}
	switch col.Type {
	case model.ColumnTypeByte, model.ColumnTypeInt:
		return "%8.0g"
	case model.ColumnTypeLong:
		return "%12.0g"
	case model.ColumnTypeFloat:
		return "%9.0g"
	case model.ColumnTypeDouble:
		return "%10.0g"
	case model.ColumnTypeString:
		return fmt.Sprintf("%%%ds", width)
	default:
		return "%9.0g"
	}
}

// putPadded writes s into a fixed-size NUL-padded field, truncating to
// size-1 bytes so the field always ends with a NUL
func putPadded(buf *bytes.Buffer, s string, size int) {
	if len(s) > size-1 {
		s = s[:size-1]
	}
	buf.WriteString(s)
	for i := len(s); i < size; i++ {
		buf.WriteByte(0)
	}
}

// putUint16 writes a little-endian uint16
func putUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

// putUint32 writes a little-endian uint32
func putUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// putUint64 writes a little-endian uint64
func putUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

// writeRows emits the packed observation data, identical for both layouts
func writeRows(buf *bytes.Buffer, ds *model.Dataset) {
	columns := ds.Columns()
	for _, row := range ds.Rows() {
		for colIdx, cell := range row {
			writeCell(buf, columns[colIdx].Type, ds.Width(colIdx), cell)
		}
	}
}

// writeCell emits one cell, substituting the type's missing code when the
// cell holds no data
func writeCell(buf *bytes.Buffer, ct model.ColumnType, width int, cell model.Value) {
	switch ct {
	case model.ColumnTypeByte:
		v := int64(missingByte)
		if !cell.IsMissing() {
			v = cell.Int()
		}
		buf.WriteByte(byte(int8(v)))
	case model.ColumnTypeInt:
		v := int64(missingInt)
		if !cell.IsMissing() {
			v = cell.Int()
		}
		putUint16(buf, uint16(int16(v)))
	case model.ColumnTypeLong:
		v := int64(missingLong)
		if !cell.IsMissing() {
			v = cell.Int()
		}
		putUint32(buf, uint32(int32(v)))
	case model.ColumnTypeFloat:
		bits := uint32(missingFloatBits)
		if !cell.IsMissing() {
			bits = math.Float32bits(float32(cell.Float()))
		}
		putUint32(buf, bits)
	case model.ColumnTypeDouble:
		bits := uint64(missingDoubleBits)
		if !cell.IsMissing() {
			bits = math.Float64bits(cell.Float())
		}
		putUint64(buf, bits)
	case model.ColumnTypeString:
		putFixedString(buf, cell.String(), width)
	}
}

// putFixedString writes a string cell padded with NULs to the column width
func putFixedString(buf *bytes.Buffer, s string, width int) {
	if len(s) > width {
		s = s[:width]
	}
	buf.WriteString(s)
	for i := len(s); i < width; i++ {
		buf.WriteByte(0)
	}
}
