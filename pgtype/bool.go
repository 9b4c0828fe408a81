package pgtype

import "fmt"

type Bool bool

func (src Bool) OID() uint32 {
	return BoolOID
}

func (src Bool) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	if src {
		return append(buf, 't'), nil
	}
	return append(buf, 'f'), nil
}

func (src Bool) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	if src {
		return append(buf, 1), nil
	}
	return append(buf, 0), nil
}

func (dst *Bool) AcceptsOID(oid uint32) bool {
	return oid == BoolOID
}

func (dst *Bool) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	if len(src) != 1 || (src[0] != 't' && src[0] != 'f') {
		return fromSQLError(dst, oid, src, fmt.Errorf("invalid format for bool"))
	}

	*dst = src[0] == 't'
	return nil
}

func (dst *Bool) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkBinaryLength(dst, oid, src, 1); err != nil {
		return err
	}

	*dst = src[0] != 0
	return nil
}
