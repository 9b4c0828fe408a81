package pgtype_test

import (
	"math"
	"testing"

	"github.com/jackc/pgmodel/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointRoundTrip(t *testing.T) {
	testRoundTrip(t, pgtype.PointOID, pgtype.Point{X: 0, Y: 0})
	testRoundTrip(t, pgtype.PointOID, pgtype.Point{X: 1.234, Y: -5.6789})
	testRoundTrip(t, pgtype.PointOID, pgtype.Point{X: math.Inf(1), Y: 1})
	testRoundTrip(t, pgtype.PointOID, pgtype.Point{X: 2, Y: math.Inf(-1)})
}

func TestPointDecodeTextNonFinite(t *testing.T) {
	buf, err := pgtype.Point{X: math.Inf(1), Y: 1}.EncodeText(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "(Infinity,1)", string(buf))

	var p pgtype.Point
	require.NoError(t, p.DecodeText(nil, pgtype.PointOID, []byte("(NaN,-Infinity)")))
	assert.True(t, math.IsNaN(p.X))
	assert.True(t, math.IsInf(p.Y, -1))
}

func TestPointDecodeText(t *testing.T) {
	tests := []struct {
		src  string
		want pgtype.Point
	}{
		{"(0,0)", pgtype.Point{}},
		{"(1.5,-2)", pgtype.Point{X: 1.5, Y: -2}},
		{" ( 3 , 4 ) ", pgtype.Point{X: 3, Y: 4}},
		{"(1e3,.25)", pgtype.Point{X: 1000, Y: 0.25}},
	}

	for _, tt := range tests {
		var p pgtype.Point
		require.NoErrorf(t, p.DecodeText(nil, pgtype.PointOID, []byte(tt.src)), "%q", tt.src)
		assert.Equalf(t, tt.want, p, "%q", tt.src)
	}
}

func TestPointDecodeTextInvalid(t *testing.T) {
	for _, src := range []string{"(0,0,0)", "(0)", "()", "0,0", "(0,0),(1,1)", "(a,b)"} {
		var p pgtype.Point
		err := p.DecodeText(nil, pgtype.PointOID, []byte(src))
		var fromSQLErr *pgtype.FromSQLError
		assert.ErrorAsf(t, err, &fromSQLErr, "%q", src)
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1.5,-2)", pgtype.Point{X: 1.5, Y: -2}.String())
}

func TestPointDecodeBinaryInvalidLength(t *testing.T) {
	var p pgtype.Point
	err := p.DecodeBinary(nil, pgtype.PointOID, make([]byte, 15))
	var fromSQLErr *pgtype.FromSQLError
	require.ErrorAs(t, err, &fromSQLErr)
}
