package pgtype

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrNotNull is returned when a SQL NULL is decoded into a type that cannot represent it. Use Null to accept NULL.
var ErrNotNull = errors.New("cannot decode NULL into a non-null type")

// ErrUnknown is returned for conversion failures without further detail.
var ErrUnknown = errors.New("unknown conversion error")

// ErrIncompatibleOID is wrapped by a FromSQLError when the column type cannot be decoded into the destination type.
var ErrIncompatibleOID = errors.New("incompatible type oid")

// ErrBinaryUnsupported is wrapped when a type has no binary format.
var ErrBinaryUnsupported = errors.New("binary format not supported")

// FromSQLError is returned when a value read from PostgreSQL cannot be parsed into the requested Go type.
type FromSQLError struct {
	OID    uint32
	GoType string
	Value  string
	Err    error
}

func (e *FromSQLError) Error() string {
	pgType := defaultCatalog.NameOf(e.OID)
	if pgType == "" {
		pgType = fmt.Sprintf("oid %d", e.OID)
	}

	if e.Err != nil {
		return fmt.Sprintf("invalid %s value for %s %q: %v", e.GoType, pgType, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s value for %s %q", e.GoType, pgType, e.Value)
}

func (e *FromSQLError) Unwrap() error {
	return e.Err
}

// ToSQLError is returned when a Go value cannot be rendered into the requested PostgreSQL type.
type ToSQLError struct {
	OID     uint32
	GoType  string
	Message string
	Err     error
}

func (e *ToSQLError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "unknown"
	}
	return fmt.Sprintf("cannot encode %s as %s: %s", e.GoType, defaultCatalog.NameOf(e.OID), msg)
}

func (e *ToSQLError) Unwrap() error {
	return e.Err
}

// UTF8Error is returned when text that must be UTF-8 is not.
type UTF8Error struct {
	Value []byte
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid utf8 value: %q", e.Value)
}

func checkUTF8(src []byte) error {
	if utf8.Valid(src) {
		return nil
	}
	v := make([]byte, len(src))
	copy(v, src)
	return &UTF8Error{Value: v}
}

func fromSQLError(dst interface{}, oid uint32, src []byte, err error) *FromSQLError {
	return &FromSQLError{OID: oid, GoType: goTypeName(dst), Value: string(src), Err: err}
}

func notNull(src []byte) error {
	if src == nil {
		return ErrNotNull
	}
	return nil
}
