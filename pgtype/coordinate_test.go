package pgtype_test

import (
	"math"
	"testing"

	"github.com/jackc/pgmodel/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		src  string
		want pgtype.Coordinates
	}{
		{"(1,2)", pgtype.Coordinates{{1, 2}}},
		{"[(1,2),(3,4)]", pgtype.Coordinates{{1, 2}, {3, 4}}},
		{"((-1.5e2,+.5),(3.,4E-1))", pgtype.Coordinates{{-150, 0.5}, {3, 0.4}}},
		{"  ( 7 , 8 )  ", pgtype.Coordinates{{7, 8}}},
		{"(1,2),(3", pgtype.Coordinates{{1, 2}}},
		{"1 2 3 4 5", pgtype.Coordinates{{1, 2}, {3, 4}}},
		{"(Infinity,-Infinity)", pgtype.Coordinates{{math.Inf(1), math.Inf(-1)}}},
		{"(-inf,+infinity)", pgtype.Coordinates{{math.Inf(-1), math.Inf(1)}}},
	}

	for _, tt := range tests {
		got, err := pgtype.ParseCoordinates(tt.src)
		require.NoErrorf(t, err, "%q", tt.src)
		assert.Equalf(t, tt.want, got, "%q", tt.src)
	}
}

func TestParseCoordinatesWithoutNumbers(t *testing.T) {
	for _, src := range []string{"", "()", "abc", "(x,y)"} {
		got, err := pgtype.ParseCoordinates(src)
		require.NoErrorf(t, err, "%q", src)
		assert.Emptyf(t, got, "%q", src)
	}
}
