package pgtype_test

import (
	"testing"

	"github.com/jackc/pgmodel/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxRoundTrip(t *testing.T) {
	testRoundTrip(t, pgtype.BoxOID, pgtype.Box{P: [2]pgtype.Coordinate{{X: 7.1, Y: 5.2345678}, {X: 3.14, Y: 1.678}}})
}

func TestBoxText(t *testing.T) {
	var b pgtype.Box
	require.NoError(t, b.DecodeText(nil, pgtype.BoxOID, []byte("(3,4),(1,2)")))
	assert.Equal(t, pgtype.Box{P: [2]pgtype.Coordinate{{X: 3, Y: 4}, {X: 1, Y: 2}}}, b)

	buf, err := b.EncodeText(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "(3,4),(1,2)", string(buf))
}

func TestBoxArrayUsesSemicolonDelimiter(t *testing.T) {
	boxes := pgtype.NewArray(
		pgtype.Box{P: [2]pgtype.Coordinate{{X: 1, Y: 1}, {X: 0, Y: 0}}},
		pgtype.Box{P: [2]pgtype.Coordinate{{X: 3, Y: 3}, {X: 2, Y: 2}}},
	)
	assert.EqualValues(t, pgtype.BoxArrayOID, boxes.OID())

	buf, err := boxes.EncodeText(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "{(1,1),(0,0);(3,3),(2,2)}", string(buf))

	var got pgtype.Array[pgtype.Box]
	require.NoError(t, got.DecodeText(nil, pgtype.BoxArrayOID, buf))
	assert.Equal(t, boxes, got)
}
