package pgtype

// Line is the infinite line Ax + By + C = 0.
//
// Line shares its codec with Circle: the three coefficients travel in the same layout as a circle's x, y and r. The
// types are otherwise unrelated and not interchangeable.
type Line struct {
	A float64
	B float64
	C float64
}

func (src Line) OID() uint32 {
	return LineOID
}

func (src Line) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	buf = append(buf, '{')
	buf = appendFloat(buf, src.A, 64)
	buf = append(buf, ',')
	buf = appendFloat(buf, src.B, 64)
	buf = append(buf, ',')
	buf = appendFloat(buf, src.C, 64)
	return append(buf, '}'), nil
}

// EncodeBinary delegates to the circle binary encoder.
func (src Line) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	return Circle{X: src.A, Y: src.B, R: src.C}.EncodeBinary(ci, buf)
}

func (dst *Line) AcceptsOID(oid uint32) bool {
	return oid == LineOID
}

// DecodeText delegates to the circle text decoder.
func (dst *Line) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}

	var c Circle
	if err := c.DecodeText(ci, oid, src); err != nil {
		return err
	}

	*dst = Line{A: c.X, B: c.Y, C: c.R}
	return nil
}

// DecodeBinary delegates to the circle binary decoder.
func (dst *Line) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}

	var c Circle
	if err := c.DecodeBinary(ci, oid, src); err != nil {
		return err
	}

	*dst = Line{A: c.X, B: c.Y, C: c.R}
	return nil
}
