package pgtype

import (
	"encoding/json"
	"fmt"
)

// JSON holds a raw json or jsonb document.
type JSON []byte

// NewJSON marshals v into a JSON value.
func NewJSON(v interface{}) (JSON, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, &ToSQLError{OID: JSONOID, GoType: fmt.Sprintf("%T", v), Err: err}
	}
	return JSON(buf), nil
}

// Unmarshal decodes the document into v.
func (src JSON) Unmarshal(v interface{}) error {
	return json.Unmarshal(src, v)
}

func (src JSON) OID() uint32 {
	return JSONOID
}

func (src JSON) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	if !json.Valid(src) {
		return nil, &ToSQLError{OID: JSONOID, GoType: goTypeName(src), Message: "invalid json document"}
	}
	if buf == nil {
		buf = make([]byte, 0, len(src))
	}
	return append(buf, src...), nil
}

// EncodeBinary uses the json binary format, which is the text of the document.
func (src JSON) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	return src.EncodeText(ci, buf)
}

func (dst *JSON) AcceptsOID(oid uint32) bool {
	return oid == JSONOID || oid == JSONBOID
}

func (dst *JSON) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	return dst.set(oid, src)
}

// DecodeBinary accepts the json binary format and the jsonb binary format, which prefixes the text with a version
// byte.
func (dst *JSON) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	if oid == JSONBOID {
		if len(src) == 0 {
			return fromSQLError(dst, oid, src, fmt.Errorf("jsonb too short"))
		}
		if src[0] != 1 {
			return fromSQLError(dst, oid, src, fmt.Errorf("unknown jsonb version number %d", src[0]))
		}
		src = src[1:]
	}

	return dst.set(oid, src)
}

func (dst *JSON) set(oid uint32, src []byte) error {
	if err := checkUTF8(src); err != nil {
		return err
	}
	if !json.Valid(src) {
		return fromSQLError(dst, oid, src, fmt.Errorf("invalid json document"))
	}

	buf := make([]byte, len(src))
	copy(buf, src)
	*dst = buf
	return nil
}
