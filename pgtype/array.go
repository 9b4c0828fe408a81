package pgtype

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jackc/pgio"
)

// Information on the internals of PostgreSQL arrays can be found in
// src/include/utils/array.h and src/backend/utils/adt/arrayfuncs.c. Of
// particular interest is the array_send function.

// maxArrayDimensions is MAXDIM from src/include/utils/array.h.
const maxArrayDimensions = 6

// maxArrayElements is MaxArraySize from src/include/utils/array.h.
const maxArrayElements = 134217727

type ArrayHeader struct {
	ContainsNull bool
	ElementOID   uint32
	Dimensions   []ArrayDimension
}

type ArrayDimension struct {
	Length     int32
	LowerBound int32
}

// cardinality returns the number of elements in an array of dimensions size. It returns -1 when a length is negative
// or the count exceeds maxArrayElements.
func cardinality(dimensions []ArrayDimension) int {
	if len(dimensions) == 0 {
		return 0
	}

	var elementCount int64 = 1
	for _, d := range dimensions {
		if d.Length < 0 {
			return -1
		}
		elementCount *= int64(d.Length)
		if elementCount > maxArrayElements {
			return -1
		}
	}

	return int(elementCount)
}

// DecodeBinary reads the header from the start of src and returns the number of bytes consumed.
func (dst *ArrayHeader) DecodeBinary(src []byte) (int, error) {
	if len(src) < 12 {
		return 0, fmt.Errorf("array header too short: %d", len(src))
	}

	rp := 0

	numDims := int(int32(binary.BigEndian.Uint32(src[rp:])))
	rp += 4
	if numDims < 0 || numDims > maxArrayDimensions {
		return 0, fmt.Errorf("invalid number of array dimensions: %d", numDims)
	}

	dst.ContainsNull = binary.BigEndian.Uint32(src[rp:]) == 1
	rp += 4

	dst.ElementOID = binary.BigEndian.Uint32(src[rp:])
	rp += 4

	dst.Dimensions = nil
	if numDims > 0 {
		dst.Dimensions = make([]ArrayDimension, numDims)
	}
	if len(src) < 12+numDims*8 {
		return 0, fmt.Errorf("array header too short for %d dimensions: %d", numDims, len(src))
	}
	for i := range dst.Dimensions {
		dst.Dimensions[i].Length = int32(binary.BigEndian.Uint32(src[rp:]))
		rp += 4

		dst.Dimensions[i].LowerBound = int32(binary.BigEndian.Uint32(src[rp:]))
		rp += 4

		if dst.Dimensions[i].Length < 0 {
			return 0, fmt.Errorf("invalid array dimension length: %d", dst.Dimensions[i].Length)
		}
	}

	// Every element takes at least its 4 byte length.
	elementCount := int64(1)
	for _, d := range dst.Dimensions {
		elementCount *= int64(d.Length)
		if elementCount > int64(len(src)-rp)/4 {
			return 0, fmt.Errorf("array dimensions exceed data: %d bytes left", len(src)-rp)
		}
	}

	return rp, nil
}

func (src ArrayHeader) EncodeBinary(buf []byte) []byte {
	buf = pgio.AppendInt32(buf, int32(len(src.Dimensions)))

	var containsNull int32
	if src.ContainsNull {
		containsNull = 1
	}
	buf = pgio.AppendInt32(buf, containsNull)

	buf = pgio.AppendUint32(buf, src.ElementOID)

	for i := range src.Dimensions {
		buf = pgio.AppendInt32(buf, src.Dimensions[i].Length)
		buf = pgio.AppendInt32(buf, src.Dimensions[i].LowerBound)
	}

	return buf
}

type untypedTextArray struct {
	Elements   []string
	Quoted     []bool
	Dimensions []ArrayDimension
}

// parseUntypedTextArray splits the text format of an array into its raw elements. delim separates elements.
func parseUntypedTextArray(src string, delim byte) (*untypedTextArray, error) {
	uta := &untypedTextArray{
		Elements:   []string{},
		Quoted:     []bool{},
		Dimensions: []ArrayDimension{},
	}

	buf := bytes.NewBufferString(src)

	skipWhitespace(buf)

	r, _, err := buf.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("invalid array: %v", err)
	}

	var explicitDimensions []ArrayDimension

	// Array has explicit dimensions
	if r == '[' {
		buf.UnreadRune()

		for {
			r, _, err = buf.ReadRune()
			if err != nil {
				return nil, fmt.Errorf("invalid array: %v", err)
			}

			if r == '=' {
				break
			} else if r != '[' {
				return nil, fmt.Errorf("invalid array, expected '[' or '=' got %v", r)
			}

			lower, err := arrayParseInteger(buf)
			if err != nil {
				return nil, fmt.Errorf("invalid array: %v", err)
			}

			r, _, err = buf.ReadRune()
			if err != nil {
				return nil, fmt.Errorf("invalid array: %v", err)
			}

			if r != ':' {
				return nil, fmt.Errorf("invalid array, expected ':' got %v", r)
			}

			upper, err := arrayParseInteger(buf)
			if err != nil {
				return nil, fmt.Errorf("invalid array: %v", err)
			}

			r, _, err = buf.ReadRune()
			if err != nil {
				return nil, fmt.Errorf("invalid array: %v", err)
			}

			if r != ']' {
				return nil, fmt.Errorf("invalid array, expected ']' got %v", r)
			}

			explicitDimensions = append(explicitDimensions, ArrayDimension{LowerBound: lower, Length: upper - lower + 1})
		}

		r, _, err = buf.ReadRune()
		if err != nil {
			return nil, fmt.Errorf("invalid array: %v", err)
		}
	}

	if r != '{' {
		return nil, fmt.Errorf("invalid array, expected '{' got %q", r)
	}

	implicitDimensions := []ArrayDimension{{LowerBound: 1, Length: 0}}

	// Consume all initial opening brackets. This provides number of dimensions.
	for {
		skipWhitespace(buf)
		r, _, err = buf.ReadRune()
		if err != nil {
			return nil, fmt.Errorf("invalid array: %v", err)
		}

		if r == '{' {
			implicitDimensions[len(implicitDimensions)-1].Length = 1
			implicitDimensions = append(implicitDimensions, ArrayDimension{LowerBound: 1})
		} else {
			buf.UnreadRune()
			break
		}
	}
	currentDim := len(implicitDimensions) - 1
	counterDim := currentDim

	// An element must follow every delimiter and must not directly follow an opening brace.
	afterOpen, afterDelim := true, false

	for {
		skipWhitespace(buf)
		r, _, err = buf.ReadRune()
		if err != nil {
			return nil, fmt.Errorf("invalid array: %v", err)
		}

		switch r {
		case '{':
			if currentDim == counterDim {
				implicitDimensions[currentDim].Length++
			}
			currentDim++
			afterOpen, afterDelim = true, false
		case rune(delim):
			if afterOpen || afterDelim {
				return nil, fmt.Errorf("invalid array, empty element")
			}
			afterDelim = true
		case '}':
			if afterDelim {
				return nil, fmt.Errorf("invalid array, empty element")
			}
			afterOpen, afterDelim = false, false
			currentDim--
			if currentDim < counterDim {
				counterDim = currentDim
			}
		default:
			buf.UnreadRune()
			value, quoted, err := arrayParseValue(buf, delim)
			if err != nil {
				return nil, fmt.Errorf("invalid array value: %v", err)
			}
			if currentDim == counterDim {
				implicitDimensions[currentDim].Length++
			}
			uta.Elements = append(uta.Elements, value)
			uta.Quoted = append(uta.Quoted, quoted)
			afterOpen, afterDelim = false, false
		}

		if currentDim < 0 {
			break
		}
	}

	skipWhitespace(buf)

	if buf.Len() > 0 {
		return nil, fmt.Errorf("unexpected trailing data: %v", buf.String())
	}

	if len(explicitDimensions) > 0 {
		uta.Dimensions = explicitDimensions
	} else {
		uta.Dimensions = implicitDimensions
		if len(uta.Dimensions) == 1 && uta.Dimensions[0].Length == 0 {
			uta.Dimensions = []ArrayDimension{}
		}
	}

	if cardinality(uta.Dimensions) != len(uta.Elements) {
		return nil, fmt.Errorf("array dimensions do not match %d elements", len(uta.Elements))
	}

	return uta, nil
}

func skipWhitespace(buf *bytes.Buffer) {
	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			buf.UnreadRune()
			return
		}
	}
}

func arrayParseValue(buf *bytes.Buffer, delim byte) (string, bool, error) {
	r, _, err := buf.ReadRune()
	if err != nil {
		return "", false, err
	}
	if r == '"' {
		s, err := arrayParseQuotedValue(buf)
		return s, true, err
	}
	buf.UnreadRune()

	s := &bytes.Buffer{}

	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return "", false, err
		}

		switch r {
		case rune(delim), '}':
			buf.UnreadRune()
			return strings.TrimRightFunc(s.String(), unicode.IsSpace), false, nil
		case '\\':
			r, _, err = buf.ReadRune()
			if err != nil {
				return "", false, err
			}
		}

		s.WriteRune(r)
	}
}

func arrayParseQuotedValue(buf *bytes.Buffer) (string, error) {
	s := &bytes.Buffer{}

	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case '\\':
			r, _, err = buf.ReadRune()
			if err != nil {
				return "", err
			}
		case '"':
			return s.String(), nil
		}
		s.WriteRune(r)
	}
}

func arrayParseInteger(buf *bytes.Buffer) (int32, error) {
	s := &bytes.Buffer{}

	for {
		r, _, err := buf.ReadRune()
		if err != nil {
			return 0, err
		}

		if ('0' <= r && r <= '9') || (r == '-' && s.Len() == 0) {
			s.WriteRune(r)
		} else {
			buf.UnreadRune()
			n, err := strconv.ParseInt(s.String(), 10, 32)
			if err != nil {
				return 0, err
			}
			return int32(n), nil
		}
	}
}

// encodeTextArrayDimensions writes the [lower:upper]= prefix when any lower bound is not 1.
func encodeTextArrayDimensions(buf []byte, dimensions []ArrayDimension) []byte {
	var customDimensions bool
	for _, dim := range dimensions {
		if dim.LowerBound != 1 {
			customDimensions = true
		}
	}

	if !customDimensions {
		return buf
	}

	for _, dim := range dimensions {
		buf = append(buf, '[')
		buf = strconv.AppendInt(buf, int64(dim.LowerBound), 10)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(dim.LowerBound+dim.Length-1), 10)
		buf = append(buf, ']')
	}

	return append(buf, '=')
}

var quoteArrayReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quoteArrayElement(src string) string {
	return `"` + quoteArrayReplacer.Replace(src) + `"`
}

func isSpace(ch byte) bool {
	// see array_out in src/backend/utils/adt/arrayfuncs.c
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

// quoteArrayElementIfNeeded quotes src the way array_out does: when it is empty, spells NULL, or contains the
// delimiter, braces, quotes, backslashes or whitespace.
func quoteArrayElementIfNeeded(src string, delim byte) string {
	if src == "" || strings.EqualFold(src, "null") {
		return quoteArrayElement(src)
	}

	for i := 0; i < len(src); i++ {
		switch ch := src[i]; {
		case ch == delim, ch == '{', ch == '}', ch == '"', ch == '\\', isSpace(ch):
			return quoteArrayElement(src)
		}
	}

	return src
}
