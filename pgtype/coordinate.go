package pgtype

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/jackc/pgio"
)

// Coordinate is one (x,y) pair of a geometric value.
type Coordinate struct {
	X float64
	Y float64
}

// Coordinates is the ordered list of pairs extracted from the text of a geometric value.
type Coordinates []Coordinate

// numberRE matches the tokens strconv.ParseFloat accepts, including the Infinity and NaN spellings of float8out.
var numberRE = regexp.MustCompile(`(?i:nan)|[-+]?(?:(?i:infinity|inf)|(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)`)

// ParseCoordinates extracts every number of s in order of appearance and pairs them into coordinates. Delimiters are
// not checked so the same scanner serves every geometric text format. A trailing number without a partner is
// discarded.
func ParseCoordinates(s string) (Coordinates, error) {
	coords, _, err := scanCoordinates(s)
	return coords, err
}

// scanCoordinates is ParseCoordinates that also returns the unpaired trailing numbers.
func scanCoordinates(s string) (Coordinates, []float64, error) {
	numbers, err := scanNumbers(s)
	if err != nil {
		return nil, nil, err
	}

	coords := make(Coordinates, 0, len(numbers)/2)
	for len(numbers) >= 2 {
		coords = append(coords, Coordinate{X: numbers[0], Y: numbers[1]})
		numbers = numbers[2:]
	}

	return coords, numbers, nil
}

func scanNumbers(s string) ([]float64, error) {
	tokens := numberRE.FindAllString(s, -1)
	numbers := make([]float64, len(tokens))
	for i, t := range tokens {
		n, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, err
		}
		numbers[i] = n
	}
	return numbers, nil
}

func appendCoordinateText(buf []byte, c Coordinate) []byte {
	buf = append(buf, '(')
	buf = appendFloat(buf, c.X, 64)
	buf = append(buf, ',')
	buf = appendFloat(buf, c.Y, 64)
	return append(buf, ')')
}

func appendCoordinatesText(buf []byte, coords []Coordinate) []byte {
	for i, c := range coords {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendCoordinateText(buf, c)
	}
	return buf
}

func appendCoordinateBinary(buf []byte, c Coordinate) []byte {
	buf = pgio.AppendUint64(buf, math.Float64bits(c.X))
	return pgio.AppendUint64(buf, math.Float64bits(c.Y))
}

func readCoordinates(src []byte, n int) ([]byte, []Coordinate, error) {
	if n < 0 || len(src) < n*16 {
		return nil, nil, fmt.Errorf("invalid length for %d points: %v", n, len(src))
	}

	coords := make([]Coordinate, n)
	for i := range coords {
		src, coords[i].X = readFloat64(src)
		src, coords[i].Y = readFloat64(src)
	}
	return src, coords, nil
}

// enclosedBy reports whether s, ignoring surrounding whitespace, starts with left and ends with right.
func enclosedBy(s []byte, left, right byte) bool {
	s = trimSpace(s)
	return len(s) >= 2 && s[0] == left && s[len(s)-1] == right
}

func trimSpace(s []byte) []byte {
	for len(s) > 0 && isSpace(s[0]) {
		s = s[1:]
	}
	for len(s) > 0 && isSpace(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}
