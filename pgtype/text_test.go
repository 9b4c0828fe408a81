package pgtype_test

import (
	"testing"

	"github.com/jackc/pgmodel/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRoundTrip(t *testing.T) {
	for _, s := range []pgtype.Text{"", "foo", "with space", `quote " and \`, "日本語"} {
		testRoundTrip(t, pgtype.TextOID, s)
	}
}

func TestTextAcceptsCharacterTypes(t *testing.T) {
	for _, oid := range []uint32{pgtype.TextOID, pgtype.VarcharOID, pgtype.BPCharOID, pgtype.NameOID, pgtype.UnknownOID} {
		var s pgtype.Text
		require.NoError(t, s.DecodeText(nil, oid, []byte("abc")))
		assert.Equal(t, pgtype.Text("abc"), s)
	}
}

func TestTextEncodeEmptyIsNotNull(t *testing.T) {
	buf, err := pgtype.Text("").EncodeText(nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, buf)
	assert.Len(t, buf, 0)
}

func TestTextDecodeInvalidUTF8(t *testing.T) {
	var s pgtype.Text
	err := s.DecodeText(nil, pgtype.TextOID, []byte{'a', 0xff, 'b'})

	var utf8Err *pgtype.UTF8Error
	require.ErrorAs(t, err, &utf8Err)
	assert.Equal(t, []byte{'a', 0xff, 'b'}, utf8Err.Value)
}
