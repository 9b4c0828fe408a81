package pgtype_test

import (
	"testing"

	"github.com/jackc/pgmodel/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolRoundTrip(t *testing.T) {
	testRoundTrip(t, pgtype.BoolOID, pgtype.Bool(true))
	testRoundTrip(t, pgtype.BoolOID, pgtype.Bool(false))
}

func TestBoolDecodeBinaryNonZeroIsTrue(t *testing.T) {
	for _, b := range []byte{1, 2, 0xff} {
		var v pgtype.Bool
		require.NoError(t, v.DecodeBinary(nil, pgtype.BoolOID, []byte{b}))
		assert.Truef(t, bool(v), "%d", b)
	}

	var v pgtype.Bool = true
	require.NoError(t, v.DecodeBinary(nil, pgtype.BoolOID, []byte{0}))
	assert.False(t, bool(v))
}

func TestBoolDecodeText(t *testing.T) {
	var b pgtype.Bool
	require.NoError(t, b.DecodeText(nil, pgtype.BoolOID, []byte("t")))
	assert.True(t, bool(b))

	err := b.DecodeText(nil, pgtype.BoolOID, []byte("true"))
	var fromSQLErr *pgtype.FromSQLError
	require.ErrorAs(t, err, &fromSQLErr)
	assert.Equal(t, "true", fromSQLErr.Value)
	assert.Equal(t, "*pgtype.Bool", fromSQLErr.GoType)
}
