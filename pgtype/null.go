package pgtype

// Null wraps a value that may be SQL NULL. The value of T must implement Encoder and *T must implement Decoder.
//
// Decoding NULL into a Null always succeeds and leaves Valid false. Decoding NULL directly into T fails with
// ErrNotNull.
type Null[T any] struct {
	Value T
	Valid bool
}

// NewNull returns a valid Null holding v.
func NewNull[T any](v T) Null[T] {
	return Null[T]{Value: v, Valid: true}
}

// Get returns the wrapped value and whether it is present.
func (n Null[T]) Get() (T, bool) {
	return n.Value, n.Valid
}

func (n Null[T]) OID() uint32 {
	enc, err := asEncoder(n.Value)
	if err != nil {
		return 0
	}
	return enc.OID()
}

func (n Null[T]) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	if !n.Valid {
		return nil, nil
	}

	enc, err := asEncoder(n.Value)
	if err != nil {
		return nil, &ToSQLError{GoType: goTypeName(n), Err: err}
	}
	return enc.EncodeText(ci, buf)
}

func (n Null[T]) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	if !n.Valid {
		return nil, nil
	}

	enc, err := asEncoder(n.Value)
	if err != nil {
		return nil, &ToSQLError{GoType: goTypeName(n), Err: err}
	}
	return enc.EncodeBinary(ci, buf)
}

func (n *Null[T]) AcceptsOID(oid uint32) bool {
	dec, err := asDecoder(new(T))
	return err == nil && dec.AcceptsOID(oid)
}

func (n *Null[T]) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	return n.decode(ci, oid, TextFormatCode, src)
}

func (n *Null[T]) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	return n.decode(ci, oid, BinaryFormatCode, src)
}

func (n *Null[T]) decode(ci *Catalog, oid uint32, format int16, src []byte) error {
	if err := checkOID(n, oid, src); err != nil {
		return err
	}

	if src == nil {
		*n = Null[T]{}
		return nil
	}

	var v T
	dec, err := asDecoder(&v)
	if err != nil {
		return fromSQLError(n, oid, src, err)
	}

	if err := Decode(ci, dec, oid, format, src); err != nil {
		return err
	}

	*n = Null[T]{Value: v, Valid: true}
	return nil
}
