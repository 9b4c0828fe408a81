package pgtype

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/jackc/pgio"
)

type Float4 float32

func (src Float4) OID() uint32 {
	return Float4OID
}

func (src Float4) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	return appendFloat(buf, float64(src), 32), nil
}

func (src Float4) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	return pgio.AppendUint32(buf, math.Float32bits(float32(src))), nil
}

func (dst *Float4) AcceptsOID(oid uint32) bool {
	return oid == Float4OID
}

func (dst *Float4) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	n, err := decodeFloatText(dst, oid, src, 32)
	if err != nil {
		return err
	}

	*dst = Float4(n)
	return nil
}

func (dst *Float4) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkBinaryLength(dst, oid, src, 4); err != nil {
		return err
	}

	*dst = Float4(math.Float32frombits(binary.BigEndian.Uint32(src)))
	return nil
}

type Float8 float64

func (src Float8) OID() uint32 {
	return Float8OID
}

func (src Float8) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	return appendFloat(buf, float64(src), 64), nil
}

func (src Float8) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	return pgio.AppendUint64(buf, math.Float64bits(float64(src))), nil
}

func (dst *Float8) AcceptsOID(oid uint32) bool {
	return oid == Float8OID
}

func (dst *Float8) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	n, err := decodeFloatText(dst, oid, src, 64)
	if err != nil {
		return err
	}

	*dst = Float8(n)
	return nil
}

func (dst *Float8) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkBinaryLength(dst, oid, src, 8); err != nil {
		return err
	}

	*dst = Float8(math.Float64frombits(binary.BigEndian.Uint64(src)))
	return nil
}

func decodeFloatText(dst Decoder, oid uint32, src []byte, bitSize int) (float64, error) {
	if err := checkOID(dst, oid, src); err != nil {
		return 0, err
	}
	if err := notNull(src); err != nil {
		return 0, err
	}

	n, err := strconv.ParseFloat(string(src), bitSize)
	if err != nil {
		return 0, fromSQLError(dst, oid, src, err)
	}
	return n, nil
}

// appendFloat appends f formatted the way PostgreSQL float input accepts it.
func appendFloat(buf []byte, f float64, bitSize int) []byte {
	switch {
	case math.IsInf(f, 1):
		return append(buf, "Infinity"...)
	case math.IsInf(f, -1):
		return append(buf, "-Infinity"...)
	}
	return strconv.AppendFloat(buf, f, 'f', -1, bitSize)
}

func readFloat64(src []byte) ([]byte, float64) {
	return src[8:], math.Float64frombits(binary.BigEndian.Uint64(src))
}
