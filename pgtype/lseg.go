package pgtype

import "fmt"

type Lseg struct {
	P [2]Coordinate
}

func (src Lseg) OID() uint32 {
	return LsegOID
}

func (src Lseg) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	buf = append(buf, '[')
	buf = appendCoordinatesText(buf, src.P[:])
	return append(buf, ']'), nil
}

func (src Lseg) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	buf = appendCoordinateBinary(buf, src.P[0])
	return appendCoordinateBinary(buf, src.P[1]), nil
}

func (dst *Lseg) AcceptsOID(oid uint32) bool {
	return oid == LsegOID
}

func (dst *Lseg) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	coords, err := decodeCoordinatesText(dst, oid, src, '[', ']')
	if err != nil {
		return err
	}
	if len(coords) != 2 {
		return fromSQLError(dst, oid, src, fmt.Errorf("expected 2 coordinates, got %d", len(coords)))
	}

	*dst = Lseg{P: [2]Coordinate{coords[0], coords[1]}}
	return nil
}

func (dst *Lseg) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkBinaryLength(dst, oid, src, 32); err != nil {
		return err
	}

	_, coords, _ := readCoordinates(src, 2)
	*dst = Lseg{P: [2]Coordinate{coords[0], coords[1]}}
	return nil
}

// decodeCoordinatesText checks the enclosing characters of src and returns its coordinates. A dropped trailing
// number is an error.
func decodeCoordinatesText(dst Decoder, oid uint32, src []byte, left, right byte) ([]Coordinate, error) {
	if err := checkOID(dst, oid, src); err != nil {
		return nil, err
	}
	if err := notNull(src); err != nil {
		return nil, err
	}

	if !enclosedBy(src, left, right) {
		return nil, fromSQLError(dst, oid, src, fmt.Errorf("expected value enclosed by %c%c", left, right))
	}

	coords, rest, err := scanCoordinates(string(src))
	if err != nil {
		return nil, fromSQLError(dst, oid, src, err)
	}
	if len(rest) != 0 {
		return nil, fromSQLError(dst, oid, src, fmt.Errorf("odd number of coordinates"))
	}
	return coords, nil
}
