package pgtype

import "fmt"

// PostgreSQL oids for common types
const (
	BoolOID             = 16
	ByteaOID            = 17
	CharOID             = 18
	NameOID             = 19
	Int8OID             = 20
	Int2OID             = 21
	Int4OID             = 23
	TextOID             = 25
	OIDOID              = 26
	JSONOID             = 114
	JSONArrayOID        = 199
	PointOID            = 600
	LsegOID             = 601
	PathOID             = 602
	BoxOID              = 603
	PolygonOID          = 604
	LineOID             = 628
	LineArrayOID        = 629
	Float4OID           = 700
	Float8OID           = 701
	UnknownOID          = 705
	CircleOID           = 718
	CircleArrayOID      = 719
	BoolArrayOID        = 1000
	ByteaArrayOID       = 1001
	NameArrayOID        = 1003
	Int2ArrayOID        = 1005
	Int4ArrayOID        = 1007
	TextArrayOID        = 1009
	BPCharArrayOID      = 1014
	VarcharArrayOID     = 1015
	Int8ArrayOID        = 1016
	PointArrayOID       = 1017
	LsegArrayOID        = 1018
	PathArrayOID        = 1019
	BoxArrayOID         = 1020
	Float4ArrayOID      = 1021
	Float8ArrayOID      = 1022
	PolygonArrayOID     = 1027
	BPCharOID           = 1042
	VarcharOID          = 1043
	NumericArrayOID     = 1231
	NumericOID          = 1700
	UUIDOID             = 2950
	UUIDArrayOID        = 2951
	JSONBOID            = 3802
	JSONBArrayOID       = 3807
)

// PostgreSQL format codes
const (
	TextFormatCode   int16 = 0
	BinaryFormatCode int16 = 1
)

// Encoder is implemented by values that can be sent to PostgreSQL as a query
// parameter.
type Encoder interface {
	// OID returns the type the value should be bound as.
	OID() uint32

	// EncodeText appends the text format of the value to buf. If the value is
	// SQL NULL, nil is returned.
	EncodeText(ci *Catalog, buf []byte) (newBuf []byte, err error)

	// EncodeBinary appends the binary format of the value to buf. If the value
	// is SQL NULL, nil is returned. Types without a binary format return an
	// error wrapping ErrBinaryUnsupported rather than falling back to text.
	EncodeBinary(ci *Catalog, buf []byte) (newBuf []byte, err error)
}

// Decoder is implemented by pointers to values that can be read from a
// PostgreSQL result.
type Decoder interface {
	// AcceptsOID reports whether a column of type oid can be decoded into the
	// value.
	AcceptsOID(oid uint32) bool

	// DecodeText decodes the text format src of a column of type oid. If src is
	// nil then the original SQL value is NULL. src is only valid for the
	// duration of the call.
	DecodeText(ci *Catalog, oid uint32, src []byte) error

	// DecodeBinary decodes the binary format src of a column of type oid. If
	// src is nil then the original SQL value is NULL. src is only valid for the
	// duration of the call.
	DecodeBinary(ci *Catalog, oid uint32, src []byte) error
}

// Decode decodes src of the given format into dst.
func Decode(ci *Catalog, dst Decoder, oid uint32, format int16, src []byte) error {
	switch format {
	case TextFormatCode:
		return dst.DecodeText(ci, oid, src)
	case BinaryFormatCode:
		return dst.DecodeBinary(ci, oid, src)
	default:
		return fmt.Errorf("unknown format code: %v", format)
	}
}

// Encode appends src in the given format to buf.
func Encode(ci *Catalog, src Encoder, format int16, buf []byte) ([]byte, error) {
	switch format {
	case TextFormatCode:
		return src.EncodeText(ci, buf)
	case BinaryFormatCode:
		return src.EncodeBinary(ci, buf)
	default:
		return nil, fmt.Errorf("unknown format code: %v", format)
	}
}

func checkOID(dst Decoder, oid uint32, src []byte) error {
	if dst.AcceptsOID(oid) {
		return nil
	}
	return fromSQLError(dst, oid, src, ErrIncompatibleOID)
}

func goTypeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}

func asEncoder(v interface{}) (Encoder, error) {
	if e, ok := v.(Encoder); ok {
		return e, nil
	}
	return nil, fmt.Errorf("%T does not implement pgtype.Encoder", v)
}

func asDecoder(v interface{}) (Decoder, error) {
	if d, ok := v.(Decoder); ok {
		return d, nil
	}
	return nil, fmt.Errorf("%T does not implement pgtype.Decoder", v)
}
