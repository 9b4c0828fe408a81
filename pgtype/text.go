package pgtype

// Text is any of the character types. text, varchar, bpchar, name and unknown share one representation in both
// formats.
type Text string

func (src Text) OID() uint32 {
	return TextOID
}

func (src Text) EncodeText(ci *Catalog, buf []byte) ([]byte, error) {
	if buf == nil {
		buf = make([]byte, 0, len(src))
	}
	return append(buf, src...), nil
}

func (src Text) EncodeBinary(ci *Catalog, buf []byte) ([]byte, error) {
	return src.EncodeText(ci, buf)
}

func (dst *Text) AcceptsOID(oid uint32) bool {
	switch oid {
	case TextOID, VarcharOID, BPCharOID, NameOID, UnknownOID:
		return true
	}
	return false
}

func (dst *Text) DecodeText(ci *Catalog, oid uint32, src []byte) error {
	if err := checkOID(dst, oid, src); err != nil {
		return err
	}
	if err := notNull(src); err != nil {
		return err
	}
	if err := checkUTF8(src); err != nil {
		return err
	}

	*dst = Text(src)
	return nil
}

func (dst *Text) DecodeBinary(ci *Catalog, oid uint32, src []byte) error {
	return dst.DecodeText(ci, oid, src)
}
