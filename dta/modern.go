package dta

import (
	"bytes"
	"encoding/binary"
	"strconv"

	"github.com/dta-tools/dtagen/domain/model"
)

// mapEntries is the number of file offsets in the <map> section
const mapEntries = 14

// encodeModern emits the tagged layout used by format versions 117 and
// 118. Section offsets are collected while writing and patched into the
// <map> section afterwards.
func encodeModern(ds *model.Dataset, version int, caps versionCaps) []byte {
	buf := &bytes.Buffer{}
	columns := ds.Columns()
	offsets := make([]uint64, 0, mapEntries)

	// offset 0: <stata_dta>
	offsets = append(offsets, 0)
	buf.WriteString("<stata_dta>")

	buf.WriteString("<header>")
	buf.WriteString("<release>" + strconv.Itoa(version) + "</release>")
	buf.WriteString("<byteorder>LSF</byteorder>")
	buf.WriteString("<K>")
	putUint16(buf, uint16(len(columns)))
	buf.WriteString("</K>")
	buf.WriteString("<N>")
	if caps.wideObs {
		putUint64(buf, uint64(ds.NumRows()))
	} else {
		putUint32(buf, uint32(ds.NumRows()))
	}
	buf.WriteString("</N>")
	buf.WriteString("<label>")
	label := ds.Label()
	if len(label) > caps.varLabelField-1 {
		label = label[:caps.varLabelField-1]
	}
	if caps.wideLabel {
		putUint16(buf, uint16(len(label)))
	} else {
		buf.WriteByte(byte(len(label)))
	}
	buf.WriteString(label)
	buf.WriteString("</label>")
	buf.WriteString("<timestamp>")
	buf.WriteByte(byte(len(fixedTimestamp)))
	buf.WriteString(fixedTimestamp)
	buf.WriteString("</timestamp>")
	buf.WriteString("</header>")

	// <map> is backfilled once every section offset is known
	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("<map>")
	mapPos := buf.Len()
	for i := 0; i < mapEntries; i++ {
		putUint64(buf, 0)
	}
	buf.WriteString("</map>")

	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("<variable_types>")
	for i, col := range columns {
		putUint16(buf, modernTypeCode(col.Type, ds.Width(i)))
	}
	buf.WriteString("</variable_types>")

	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("<varnames>")
	for _, col := range columns {
		putPadded(buf, col.Name, caps.nameField)
	}
	buf.WriteString("</varnames>")

	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("<sortlist>")
	for i := 0; i <= len(columns); i++ {
		putUint16(buf, 0)
	}
	buf.WriteString("</sortlist>")

	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("<formats>")
	for i, col := range columns {
		putPadded(buf, displayFormat(col, ds.Width(i)), caps.fmtField)
	}
	buf.WriteString("</formats>")

	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("<value_label_names>")
	for range columns {
		putPadded(buf, "", caps.nameField)
	}
	buf.WriteString("</value_label_names>")

	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("<variable_labels>")
	for _, col := range columns {
		putPadded(buf, col.Label, caps.varLabelField)
	}
	buf.WriteString("</variable_labels>")

	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("<characteristics></characteristics>")

	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("<data>")
	writeRows(buf, ds)
	buf.WriteString("</data>")

	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("<strls></strls>")

	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("<value_labels></value_labels>")

	offsets = append(offsets, uint64(buf.Len()))
	buf.WriteString("</stata_dta>")

	// final entry: end of file
	offsets = append(offsets, uint64(buf.Len()))

	out := buf.Bytes()
	for i, off := range offsets {
		binary.LittleEndian.PutUint64(out[mapPos+i*8:], off)
	}
	return out
}

// modernTypeCode returns the uint16 type code for the tagged layout
func modernTypeCode(ct model.ColumnType, width int) uint16 {
	switch ct {
	case model.ColumnTypeByte:
		return modernTypeByte
	case model.ColumnTypeInt:
		return modernTypeInt
	case model.ColumnTypeLong:
		return modernTypeLong
	case model.ColumnTypeFloat:
		return modernTypeFloat
	case model.ColumnTypeDouble:
		return modernTypeDouble
	default:
		return uint16(width)
	}
}
