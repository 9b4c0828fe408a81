package pgtype

import (
	"fmt"

	"github.com/gofrs/uuid"
)

type UUID uuid.UUID

func (src UUID) String() string {
	return uuid.UUID(src).String()
}

func (src UUID) OID() uint32 {
	return UUIDOID
}

func (src UUID) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	return append(buf, src.String()...), nil
}

func (src UUID) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	return append(buf, src[:]...), nil
}

func (dst *UUID) AcceptsOID(oid uint32) bool {
	return oid == UUIDOID
}

func (dst *UUID) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	u, err := uuid.FromString(string(src))
	if err != nil {
		return fromSQLError(dst, oid, src, err)
	}

	*dst = UUID(u)
	return nil
}

func (dst *UUID) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}

	u, err := uuid.FromBytes(src)
	if err != nil {
		return fromSQLError(dst, oid, src, fmt.Errorf("invalid length for uuid: %v", len(src)))
	}

	*dst = UUID(u)
	return nil
}
