package dta

import (
	"bytes"

	"github.com/dta-tools/dtagen/domain/model"
)

// encodeLegacy emits the fixed-offset layout used by format version 114:
// header, typlist, varlist, sortlist, fmtlist, lbllist, variable labels,
// expansion-field terminator, then packed observation data. No value
// label table is written.
func encodeLegacy(ds *model.Dataset, version int, caps versionCaps) []byte {
	buf := &bytes.Buffer{}
	columns := ds.Columns()

	// header: version, byte order (0x02 = LSF), filetype, unused byte
	buf.WriteByte(byte(version))
	buf.WriteByte(0x02)
	buf.WriteByte(0x01)
	buf.WriteByte(0x00)
	putUint16(buf, uint16(len(columns)))
	putUint32(buf, uint32(ds.NumRows()))
	putPadded(buf, ds.Label(), 81)
	putPadded(buf, fixedTimestamp, 18)

	// typlist: one byte per variable
	for i, col := range columns {
		buf.WriteByte(legacyTypeCode(col.Type, ds.Width(i)))
	}

	// varlist
	for _, col := range columns {
		putPadded(buf, col.Name, caps.nameField)
	}

	// sortlist: nvar+1 zeroed uint16 entries
	for i := 0; i <= len(columns); i++ {
		putUint16(buf, 0)
	}

	// fmtlist
	for i, col := range columns {
		putPadded(buf, displayFormat(col, ds.Width(i)), caps.fmtField)
	}

	// lbllist: no value labels attached to any variable
	for range columns {
		putPadded(buf, "", caps.nameField)
	}

	// variable labels
	for _, col := range columns {
		putPadded(buf, col.Label, caps.varLabelField)
	}

	// expansion fields: terminator only (1-byte type + 4-byte length, both zero)
	buf.Write([]byte{0, 0, 0, 0, 0})

	writeRows(buf, ds)

	return buf.Bytes()
}

// legacyTypeCode returns the single-byte type code for the legacy layout
func legacyTypeCode(ct model.ColumnType, width int) byte {
	switch ct {
	case model.ColumnTypeByte:
		return legacyTypeByte
	case model.ColumnTypeInt:
		return legacyTypeInt
	case model.ColumnTypeLong:
		return legacyTypeLong
	case model.ColumnTypeFloat:
		return legacyTypeFloat
	case model.ColumnTypeDouble:
		return legacyTypeDouble
	default:
		return byte(width)
	}
}
