package pgtype

import (
	"github.com/shopspring/decimal"
)

// Numeric is an arbitrary precision number. Only the text format is supported; the binary methods fail with
// ErrBinaryUnsupported.
type Numeric struct {
	decimal.Decimal
}

func (src Numeric) OID() uint32 {
	return NumericOID
}

func (src Numeric) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	return append(buf, src.Decimal.String()...), nil
}

func (src Numeric) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	return nil, &ToSQLError{OID: NumericOID, GoType: goTypeName(src), Err: ErrBinaryUnsupported}
}

func (dst *Numeric) AcceptsOID(oid uint32) bool {
	return oid == NumericOID
}

func (dst *Numeric) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	d, err := decimal.NewFromString(string(src))
	if err != nil {
		return fromSQLError(dst, oid, src, err)
	}

	*dst = Numeric{Decimal: d}
	return nil
}

func (dst *Numeric) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}
	return fromSQLError(dst, oid, nil, ErrBinaryUnsupported)
}
