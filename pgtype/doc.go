// Package pgtype converts between PostgreSQL values and Go types.
/*
Every supported type is a Go type whose value implements Encoder and whose pointer implements Decoder. The decoder is
chosen by the Go type of the destination; the column type OID reported by the server is only checked for
compatibility. There is no fallback from one type to another.

	var p pgtype.Point
	err := p.DecodeText(nil, pgtype.PointOID, []byte("(1.5,2)"))

Required and optional values

Decoding SQL NULL into a plain type such as Int4 fails with ErrNotNull. Wrap the type in Null to accept NULL:

	var n pgtype.Null[pgtype.Int4]
	err := n.DecodeText(nil, pgtype.Int4OID, nil) // n.Valid == false

Arrays

Array wraps any supported element type. Arrays with NULL elements use Null elements:

	var a pgtype.Array[pgtype.Null[pgtype.Int4]]
	err := a.DecodeText(nil, pgtype.Int4ArrayOID, []byte("{1,NULL,3}"))

Geometric types

Point, Lseg, Box, Path and Polygon text formats are read with a shared number scanner (ParseCoordinates). Line is
decoded, and binary encoded, through the Circle codec because both are three float8 values.

Catalog

Catalog maps OIDs to type names, array element types and array delimiters. A nil *Catalog behaves as the built-in
catalog. Use NewCatalog and RegisterDataType to add types.
*/
package pgtype
