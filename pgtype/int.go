package pgtype

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/jackc/pgio"
)

type Int2 int16

func (src Int2) OID() uint32 {
	return Int2OID
}

func (src Int2) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	return strconv.AppendInt(buf, int64(src), 10), nil
}

func (src Int2) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	return pgio.AppendInt16(buf, int16(src)), nil
}

func (dst *Int2) AcceptsOID(oid uint32) bool {
	return oid == Int2OID
}

func (dst *Int2) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	n, err := decodeIntText(dst, oid, src, 16)
	if err != nil {
		return err
	}

	*dst = Int2(n)
	return nil
}

func (dst *Int2) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkBinaryLength(dst, oid, src, 2); err != nil {
		return err
	}

	*dst = Int2(binary.BigEndian.Uint16(src))
	return nil
}

type Int4 int32

func (src Int4) OID() uint32 {
	return Int4OID
}

func (src Int4) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	return strconv.AppendInt(buf, int64(src), 10), nil
}

func (src Int4) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	return pgio.AppendInt32(buf, int32(src)), nil
}

func (dst *Int4) AcceptsOID(oid uint32) bool {
	return oid == Int4OID
}

func (dst *Int4) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	n, err := decodeIntText(dst, oid, src, 32)
	if err != nil {
		return err
	}

	*dst = Int4(n)
	return nil
}

func (dst *Int4) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkBinaryLength(dst, oid, src, 4); err != nil {
		return err
	}

	*dst = Int4(binary.BigEndian.Uint32(src))
	return nil
}

type Int8 int64

func (src Int8) OID() uint32 {
	return Int8OID
}

func (src Int8) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	return strconv.AppendInt(buf, int64(src), 10), nil
}

func (src Int8) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	return pgio.AppendInt64(buf, int64(src)), nil
}

func (dst *Int8) AcceptsOID(oid uint32) bool {
	return oid == Int8OID
}

func (dst *Int8) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	n, err := decodeIntText(dst, oid, src, 64)
	if err != nil {
		return err
	}

	*dst = Int8(n)
	return nil
}

func (dst *Int8) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkBinaryLength(dst, oid, src, 8); err != nil {
		return err
	}

	*dst = Int8(binary.BigEndian.Uint64(src))
	return nil
}

func decodeIntText(dst Decoder, oid uint32, src []byte, bitSize int) (int64, error) {
	if err := checkOID(dst, oid, src); err != nil {
		return 0, err
	}
	if err := notNull(src); err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(string(src), 10, bitSize)
	if err != nil {
		return 0, fromSQLError(dst, oid, src, err)
	}
	return n, nil
}

func checkBinaryLength(dst Decoder, oid uint32, src []byte, size int) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	if len(src) != size {
		return fromSQLError(dst, oid, src, fmt.Errorf("invalid length: %v", len(src)))
	}
	return nil
}
