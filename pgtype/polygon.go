package pgtype

import (
	"encoding/binary"
	"fmt"

	"github.com/jackc/pgio"
)

type Polygon struct {
	P []Coordinate
}

func (src Polygon) OID() uint32 {
	return PolygonOID
}

func (src Polygon) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	buf = append(buf, '(')
	buf = appendCoordinatesText(buf, src.P)
	return append(buf, ')'), nil
}

func (src Polygon) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	buf = pgio.AppendInt32(buf, int32(len(src.P)))
	for _, p := range src.P {
		buf = appendCoordinateBinary(buf, p)
	}
	return buf, nil
}

func (dst *Polygon) AcceptsOID(oid uint32) bool {
	return oid == PolygonOID
}

func (dst *Polygon) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	coords, err := decodeCoordinatesText(dst, oid, src, '(', ')')
	if err != nil {
		return err
	}
	if len(coords) == 0 {
		return fromSQLError(dst, oid, src, fmt.Errorf("polygon without points"))
	}

	*dst = Polygon{P: coords}
	return nil
}

func (dst *Polygon) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	if len(src) < 4 {
		return fromSQLError(dst, oid, src, fmt.Errorf("invalid length for polygon: %v", len(src)))
	}

	n := int(int32(binary.BigEndian.Uint32(src)))

	rest, coords, err := readCoordinates(src[4:], n)
	if err != nil {
		return fromSQLError(dst, oid, src, err)
	}
	if len(rest) != 0 {
		return fromSQLError(dst, oid, src, fmt.Errorf("unexpected trailing data"))
	}

	*dst = Polygon{P: coords}
	return nil
}
