package pgtype_test

import (
	"testing"

	"github.com/jackc/pgmodel/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRoundTrip encodes value in both formats and decodes each result into a new T.
func testRoundTrip[T any](t *testing.T, oid uint32, value T) {
	t.Helper()

	enc, ok := any(value).(pgtype.Encoder)
	require.Truef(t, ok, "%T is not an Encoder", value)

	for _, format := range []int16{pgtype.TextFormatCode, pgtype.BinaryFormatCode} {
		buf, err := pgtype.Encode(nil, enc, format, []byte{})
		require.NoErrorf(t, err, "format %d", format)
		require.NotNilf(t, buf, "format %d", format)

		var got T
		dec, ok := any(&got).(pgtype.Decoder)
		require.Truef(t, ok, "*%T is not a Decoder", value)

		err = pgtype.Decode(nil, dec, oid, format, buf)
		require.NoErrorf(t, err, "format %d: %q", format, buf)
		assert.Equalf(t, value, got, "format %d", format)
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	var n pgtype.Int4
	err := pgtype.Decode(nil, &n, pgtype.Int4OID, 7, []byte("1"))
	require.Error(t, err)

	_, err = pgtype.Encode(nil, n, 7, nil)
	require.Error(t, err)
}

func TestDecodeRejectsIncompatibleOID(t *testing.T) {
	tests := []struct {
		name string
		dst  pgtype.Decoder
		oid  uint32
		src  string
	}{
		{"int4 from int8", new(pgtype.Int4), pgtype.Int8OID, "1"},
		{"point from circle", new(pgtype.Point), pgtype.CircleOID, "<(1,2),3>"},
		{"line from circle", new(pgtype.Line), pgtype.CircleOID, "<(1,2),3>"},
		{"text from int4", new(pgtype.Text), pgtype.Int4OID, "1"},
		{"int4 array from text array", new(pgtype.Array[pgtype.Int4]), pgtype.TextArrayOID, "{1}"},
		{"int4 array from int4", new(pgtype.Array[pgtype.Int4]), pgtype.Int4OID, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dst.DecodeText(nil, tt.oid, []byte(tt.src))
			require.ErrorIs(t, err, pgtype.ErrIncompatibleOID)

			var fromSQLErr *pgtype.FromSQLError
			require.ErrorAs(t, err, &fromSQLErr)
			assert.Equal(t, tt.oid, fromSQLErr.OID)
		})
	}
}

func TestRequiredTypesRejectNull(t *testing.T) {
	decoders := map[uint32]pgtype.Decoder{
		pgtype.BoolOID:      new(pgtype.Bool),
		pgtype.Int2OID:      new(pgtype.Int2),
		pgtype.Int4OID:      new(pgtype.Int4),
		pgtype.Int8OID:      new(pgtype.Int8),
		pgtype.Float4OID:    new(pgtype.Float4),
		pgtype.Float8OID:    new(pgtype.Float8),
		pgtype.TextOID:      new(pgtype.Text),
		pgtype.ByteaOID:     new(pgtype.Bytea),
		pgtype.JSONOID:      new(pgtype.JSON),
		pgtype.UUIDOID:      new(pgtype.UUID),
		pgtype.NumericOID:   new(pgtype.Numeric),
		pgtype.PointOID:     new(pgtype.Point),
		pgtype.LineOID:      new(pgtype.Line),
		pgtype.CircleOID:    new(pgtype.Circle),
		pgtype.LsegOID:      new(pgtype.Lseg),
		pgtype.BoxOID:       new(pgtype.Box),
		pgtype.PathOID:      new(pgtype.Path),
		pgtype.PolygonOID:   new(pgtype.Polygon),
		pgtype.Int4ArrayOID: new(pgtype.Array[pgtype.Int4]),
	}

	for oid, dec := range decoders {
		assert.ErrorIsf(t, dec.DecodeText(nil, oid, nil), pgtype.ErrNotNull, "%T text", dec)
		if oid != pgtype.NumericOID {
			assert.ErrorIsf(t, dec.DecodeBinary(nil, oid, nil), pgtype.ErrNotNull, "%T binary", dec)
		}
	}
}
