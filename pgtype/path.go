package pgtype

import (
	"encoding/binary"
	"fmt"

	"github.com/jackc/pgio"
)

type Path struct {
	P      []Coordinate
	Closed bool
}

func (src Path) OID() uint32 {
	return PathOID
}

func (src Path) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	left, right := byte('['), byte(']')
	if src.Closed {
		left, right = '(', ')'
	}

	buf = append(buf, left)
	buf = appendCoordinatesText(buf, src.P)
	return append(buf, right), nil
}

func (src Path) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	var closed byte
	if src.Closed {
		closed = 1
	}
	buf = append(buf, closed)
	buf = pgio.AppendInt32(buf, int32(len(src.P)))

	for _, p := range src.P {
		buf = appendCoordinateBinary(buf, p)
	}
	return buf, nil
}

func (dst *Path) AcceptsOID(oid uint32) bool {
	return oid == PathOID
}

func (dst *Path) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	left, right := byte('['), byte(']')
	closed := len(trimSpace(src)) > 0 && trimSpace(src)[0] == '('
	if closed {
		left, right = '(', ')'
	}

	coords, err := decodeCoordinatesText(dst, oid, src, left, right)
	if err != nil {
		return err
	}
	if len(coords) == 0 {
		return fromSQLError(dst, oid, src, fmt.Errorf("path without points"))
	}

	*dst = Path{P: coords, Closed: closed}
	return nil
}

func (dst *Path) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	if len(src) < 5 {
		return fromSQLError(dst, oid, src, fmt.Errorf("invalid length for path: %v", len(src)))
	}

	closed := src[0] == 1
	n := int(int32(binary.BigEndian.Uint32(src[1:])))

	rest, coords, err := readCoordinates(src[5:], n)
	if err != nil {
		return fromSQLError(dst, oid, src, err)
	}
	if len(rest) != 0 {
		return fromSQLError(dst, oid, src, fmt.Errorf("unexpected trailing data"))
	}

	*dst = Path{P: coords, Closed: closed}
	return nil
}
