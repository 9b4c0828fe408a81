package pgmodel

import (
	"fmt"

	"github.com/jackc/pgproto3/v2"
)

// RawValue is the undecoded value of one column. Bytes is nil for SQL NULL. Bytes is only valid until the row it was
// read from is advanced.
type RawValue struct {
	OID    uint32
	Format int16
	Bytes  []byte
}

// Row gives access to the values of a result row by column name.
type Row interface {
	// Value returns the value of the column name and whether the row has that column.
	Value(name string) (RawValue, bool)
}

// DataRow is a Row over the fields and values of a pgproto3.DataRow.
type DataRow struct {
	names  []string
	values []RawValue
	index  map[string]int
}

// NewDataRow returns a row of values described by fields. When several fields share a name the first one is found by
// Value. values is not copied.
func NewDataRow(fields []pgproto3.FieldDescription, values [][]byte) (*DataRow, error) {
	if len(fields) != len(values) {
		return nil, fmt.Errorf("row has %d values for %d fields", len(values), len(fields))
	}

	r := &DataRow{
		names:  make([]string, len(fields)),
		values: make([]RawValue, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for i, fd := range fields {
		name := string(fd.Name)
		r.names[i] = name
		r.values[i] = RawValue{OID: fd.DataTypeOID, Format: fd.Format, Bytes: values[i]}
		if _, ok := r.index[name]; !ok {
			r.index[name] = i
		}
	}

	return r, nil
}

func (r *DataRow) Value(name string) (RawValue, bool) {
	i, ok := r.index[name]
	if !ok {
		return RawValue{}, false
	}
	return r.values[i], true
}

// Names returns the column names in order.
func (r *DataRow) Names() []string {
	return r.names
}

// Len returns the number of columns.
func (r *DataRow) Len() int {
	return len(r.names)
}
