package pgtype

import "fmt"

// Box is a rectangle given by two opposite corners. Arrays of boxes use ';' as the element delimiter.
type Box struct {
	P [2]Coordinate
}

func (src Box) OID() uint32 {
	return BoxOID
}

func (src Box) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	return appendCoordinatesText(buf, src.P[:]), nil
}

func (src Box) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	buf = appendCoordinateBinary(buf, src.P[0])
	return appendCoordinateBinary(buf, src.P[1]), nil
}

func (dst *Box) AcceptsOID(oid uint32) bool {
	return oid == BoxOID
}

func (dst *Box) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	coords, err := decodeCoordinatesText(dst, oid, src, '(', ')')
	if err != nil {
		return err
	}
	if len(coords) != 2 {
		return fromSQLError(dst, oid, src, fmt.Errorf("expected 2 coordinates, got %d", len(coords)))
	}

	*dst = Box{P: [2]Coordinate{coords[0], coords[1]}}
	return nil
}

func (dst *Box) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkBinaryLength(dst, oid, src, 32); err != nil {
		return err
	}

	_, coords, _ := readCoordinates(src, 2)
	*dst = Box{P: [2]Coordinate{coords[0], coords[1]}}
	return nil
}
