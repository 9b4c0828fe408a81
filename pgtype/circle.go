package pgtype

import (
	"fmt"
	"math"

	"github.com/jackc/pgio"
)

type Circle struct {
	X float64
	Y float64
	R float64
}

func (src Circle) OID() uint32 {
	return CircleOID
}

func (src Circle) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	buf = append(buf, '<')
	buf = appendCoordinateText(buf, Coordinate{X: src.X, Y: src.Y})
	buf = append(buf, ',')
	buf = appendFloat(buf, src.R, 64)
	return append(buf, '>'), nil
}

func (src Circle) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	buf = pgio.AppendUint64(buf, math.Float64bits(src.X))
	buf = pgio.AppendUint64(buf, math.Float64bits(src.Y))
	return pgio.AppendUint64(buf, math.Float64bits(src.R)), nil
}

// AcceptsOID accepts circle and line. Line is decoded through the circle layout: both are three float8 values.
func (dst *Circle) AcceptsOID(oid uint32) bool {
	return oid == CircleOID || oid == LineOID
}

// DecodeText parses any text holding exactly three numbers, such as <(x,y),r> or the {a,b,c} of a line.
func (dst *Circle) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	numbers, err := scanNumbers(string(src))
	if err != nil {
		return fromSQLError(dst, oid, src, err)
	}
	if len(numbers) != 3 {
		return fromSQLError(dst, oid, src, fmt.Errorf("expected 3 numbers, got %d", len(numbers)))
	}

	*dst = Circle{X: numbers[0], Y: numbers[1], R: numbers[2]}
	return nil
}

func (dst *Circle) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkBinaryLength(dst, oid, src, 24); err != nil {
		return err
	}

	src, x := readFloat64(src)
	src, y := readFloat64(src)
	_, r := readFloat64(src)

	*dst = Circle{X: x, Y: y, R: r}
	return nil
}
