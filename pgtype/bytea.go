package pgtype

import (
	"encoding/hex"
	"fmt"
)

type Bytea []byte

func (src Bytea) OID() uint32 {
	return ByteaOID
}

func (src Bytea) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	buf = append(buf, `\x`...)
	return append(buf, hex.EncodeToString(src)...), nil
}

func (src Bytea) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	if buf == nil {
		buf = make([]byte, 0, len(src))
	}
	return append(buf, src...), nil
}

func (dst *Bytea) AcceptsOID(oid uint32) bool {
	return oid == ByteaOID
}

// DecodeText only supports the hex format. The escape format is not supported.
func (dst *Bytea) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	if len(src) < 2 || src[0] != '\\' || src[1] != 'x' {
		return fromSQLError(dst, oid, src, fmt.Errorf("invalid hex format"))
	}

	buf := make([]byte, (len(src)-2)/2)
	if _, err := hex.Decode(buf, src[2:]); err != nil {
		return fromSQLError(dst, oid, src, err)
	}

	*dst = buf
	return nil
}

func (dst *Bytea) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	buf := make([]byte, len(src))
	copy(buf, src)
	*dst = buf
	return nil
}
