package pgtype

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jackc/pgio"
)

// Array is a PostgreSQL array of T. The value of T must implement Encoder and *T must implement Decoder. Use
// Array[Null[T]] when elements may be NULL.
//
// Elements are stored flat in row-major order. Dimensions may be nil for a one dimensional array with lower bound 1.
type Array[T any] struct {
	Elements   []T
	Dimensions []ArrayDimension
}

// NewArray returns a one dimensional array of elements.
func NewArray[T any](elements ...T) Array[T] {
	if len(elements) == 0 {
		return Array[T]{}
	}
	return Array[T]{
		Elements:   elements,
		Dimensions: []ArrayDimension{{Length: int32(len(elements)), LowerBound: 1}},
	}
}

func (src Array[T]) dimensions() []ArrayDimension {
	if len(src.Dimensions) == 0 && len(src.Elements) > 0 {
		return []ArrayDimension{{Length: int32(len(src.Elements)), LowerBound: 1}}
	}
	return src.Dimensions
}

func (src Array[T]) elementOID() uint32 {
	var zero T
	enc, err := asEncoder(zero)
	if err != nil {
		return 0
	}
	return enc.OID()
}

// OID returns the array type of the element type, as known to the built-in catalog.
func (src Array[T]) OID() uint32 {
	oid, _ := defaultCatalog.ArrayOID(src.elementOID())
	return oid
}

func (src Array[T]) checkDimensions() ([]ArrayDimension, error) {
	dimensions := src.dimensions()
	if cardinality(dimensions) != len(src.Elements) {
		return nil, &ToSQLError{
			OID:     src.OID(),
			GoType:  goTypeName(src),
			Message: fmt.Sprintf("dimensions describe %d elements, have %d", cardinality(dimensions), len(src.Elements)),
		}
	}
	return dimensions, nil
}

func (src Array[T]) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	dimensions, err := src.checkDimensions()
	if err != nil {
		return nil, err
	}

	elementCount := len(src.Elements)
	if elementCount == 0 {
		return append(buf, '{', '}'), nil
	}

	delim := ci.Delimiter(src.elementOID())

	buf = encodeTextArrayDimensions(buf, dimensions)

	// dimElemCounts is the multiples of elements that each array lies on. For
	// example, a single dimension array of length 4 would have a dimElemCounts of
	// [4]. A multi-dimensional array of lengths [3,5,2] would have a
	// dimElemCounts of [30,10,2]. This is used to simplify when to render a '{'
	// or '}'.
	dimElemCounts := make([]int, len(dimensions))
	dimElemCounts[len(dimensions)-1] = int(dimensions[len(dimensions)-1].Length)
	for i := len(dimensions) - 2; i > -1; i-- {
		dimElemCounts[i] = int(dimensions[i].Length) * dimElemCounts[i+1]
	}

	inElemBuf := make([]byte, 0, 32)
	for i, elem := range src.Elements {
		if i > 0 {
			buf = append(buf, delim)
		}

		for _, dec := range dimElemCounts {
			if i%dec == 0 {
				buf = append(buf, '{')
			}
		}

		enc, err := asEncoder(elem)
		if err != nil {
			return nil, &ToSQLError{OID: src.OID(), GoType: goTypeName(src), Err: err}
		}

		elemBuf, err := enc.EncodeText(ci, inElemBuf[:0])
		if err != nil {
			return nil, err
		}
		if elemBuf == nil {
			buf = append(buf, `NULL`...)
		} else {
			buf = append(buf, quoteArrayElementIfNeeded(string(elemBuf), delim)...)
		}

		for _, dec := range dimElemCounts {
			if (i+1)%dec == 0 {
				buf = append(buf, '}')
			}
		}
	}

	return buf, nil
}

func (src Array[T]) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	dimensions, err := src.checkDimensions()
	if err != nil {
		return nil, err
	}

	arrayHeader := ArrayHeader{
		Dimensions: dimensions,
		ElementOID: src.elementOID(),
	}

	containsNullIndex := len(buf) + 4

	buf = arrayHeader.EncodeBinary(buf)

	for _, elem := range src.Elements {
		enc, err := asEncoder(elem)
		if err != nil {
			return nil, &ToSQLError{OID: src.OID(), GoType: goTypeName(src), Err: err}
		}

		sp := len(buf)
		buf = pgio.AppendInt32(buf, -1)

		elemBuf, err := enc.EncodeBinary(ci, buf)
		if err != nil {
			return nil, err
		}
		if elemBuf == nil {
			pgio.SetInt32(buf[containsNullIndex:], 1)
		} else {
			buf = elemBuf
			pgio.SetInt32(buf[sp:], int32(len(buf[sp:])-4))
		}
	}

	return buf, nil
}

// AcceptsOID reports whether oid is an array type of the built-in catalog whose element type is accepted by T.
func (dst *Array[T]) AcceptsOID(oid uint32) bool {
	elementOID, ok := defaultCatalog.ElementOID(oid)
	if !ok {
		return false
	}
	return dst.acceptsElementOID(elementOID)
}

func (dst *Array[T]) acceptsElementOID(elementOID uint32) bool {
	dec, err := asDecoder(new(T))
	return err == nil && dec.AcceptsOID(elementOID)
}

func (dst *Array[T]) elementOIDOf(ci *Catalog, oid uint32, src []byte) (uint32, error) {
	elementOID, ok := ci.ElementOID(oid)
	if !ok || !dst.acceptsElementOID(elementOID) {
		return 0, fromSQLError(dst, oid, src, ErrIncompatibleOID)
	}
	return elementOID, nil
}

func (dst *Array[T]) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	elementOID, err := dst.elementOIDOf(ci, oid, src)
	if err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	uta, err := parseUntypedTextArray(string(src), ci.Delimiter(elementOID))
	if err != nil {
		return fromSQLError(dst, oid, src, err)
	}

	if len(uta.Elements) == 0 {
		*dst = Array[T]{}
		return nil
	}

	elements := make([]T, len(uta.Elements))
	for i, s := range uta.Elements {
		var elemSrc []byte
		if uta.Quoted[i] || !strings.EqualFold(s, "NULL") {
			elemSrc = []byte(s)
		}

		dec, err := asDecoder(&elements[i])
		if err != nil {
			return fromSQLError(dst, oid, src, err)
		}
		if err := dec.DecodeText(ci, elementOID, elemSrc); err != nil {
			return err
		}
	}

	*dst = Array[T]{Elements: elements, Dimensions: uta.Dimensions}
	return nil
}

func (dst *Array[T]) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if _, err := dst.elementOIDOf(ci, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	var arrayHeader ArrayHeader
	rp, err := arrayHeader.DecodeBinary(src)
	if err != nil {
		return fromSQLError(dst, oid, src, err)
	}

	if !dst.acceptsElementOID(arrayHeader.ElementOID) {
		return fromSQLError(dst, oid, src, ErrIncompatibleOID)
	}

	elementCount := cardinality(arrayHeader.Dimensions)
	if elementCount == 0 {
		if rp != len(src) {
			return fromSQLError(dst, oid, src, fmt.Errorf("unexpected trailing data"))
		}
		*dst = Array[T]{}
		return nil
	}
	if elementCount < 0 || elementCount > (len(src)-rp)/4 {
		return fromSQLError(dst, oid, src, fmt.Errorf("invalid array dimensions"))
	}

	elements := make([]T, elementCount)
	for i := range elements {
		if len(src[rp:]) < 4 {
			return fromSQLError(dst, oid, src, fmt.Errorf("array too short for %d elements", elementCount))
		}
		elemLen := int(int32(binary.BigEndian.Uint32(src[rp:])))
		rp += 4

		var elemSrc []byte
		if elemLen >= 0 {
			if len(src[rp:]) < elemLen {
				return fromSQLError(dst, oid, src, fmt.Errorf("array element %d too short", i))
			}
			elemSrc = src[rp : rp+elemLen]
			rp += elemLen
		}

		dec, err := asDecoder(&elements[i])
		if err != nil {
			return fromSQLError(dst, oid, src, err)
		}
		if err := dec.DecodeBinary(ci, arrayHeader.ElementOID, elemSrc); err != nil {
			return err
		}
	}

	if rp != len(src) {
		return fromSQLError(dst, oid, src, fmt.Errorf("unexpected trailing data"))
	}

	*dst = Array[T]{Elements: elements, Dimensions: arrayHeader.Dimensions}
	return nil
}
