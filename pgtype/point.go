package pgtype

import (
	"fmt"
	"math"

	"github.com/jackc/pgio"
)

type Point struct {
	X float64
	Y float64
}

func (src Point) String() string {
	return string(appendCoordinateText(nil, Coordinate(src)))
}

func (src Point) OID() uint32 {
	return PointOID
}

func (src Point) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	return appendCoordinateText(buf, Coordinate(src)), nil
}

func (src Point) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	buf = pgio.AppendUint64(buf, math.Float64bits(src.X))
	return pgio.AppendUint64(buf, math.Float64bits(src.Y)), nil
}

func (dst *Point) AcceptsOID(oid uint32) bool {
	return oid == PointOID
}

// DecodeText parses (x,y). Exactly one coordinate pair must be present.
func (dst *Point) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	if !enclosedBy(src, '(', ')') {
		return fromSQLError(dst, oid, src, fmt.Errorf("invalid format for point"))
	}

	coords, rest, err := scanCoordinates(string(src))
	if err != nil {
		return fromSQLError(dst, oid, src, err)
	}
	if len(coords) != 1 || len(rest) != 0 {
		return fromSQLError(dst, oid, src, fmt.Errorf("expected 1 coordinate, got %d", len(coords)))
	}

	*dst = Point(coords[0])
	return nil
}

func (dst *Point) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkBinaryLength(dst, oid, src, 16); err != nil {
		return err
	}

	_, coords, _ := readCoordinates(src, 1)
	*dst = Point(coords[0])
	return nil
}
