package pgtype

import "strings"

// DataType describes a PostgreSQL type known to a Catalog.
type DataType struct {
	Name string
	OID  uint32

	// ElementOID is the element type of an array type. It is zero for non-array types.
	ElementOID uint32

	// ArrayOID is the array type whose elements are of this type. It is zero if unknown.
	ArrayOID uint32

	// Delimiter separates elements of an array of this type in text format. Zero means ','.
	Delimiter byte

	// MinServerVersion is the first PostgreSQL version that ships the type. Empty means any.
	MinServerVersion string
}

// Catalog maps type OIDs and names to DataTypes. The zero value is not usable; use NewCatalog. A nil *Catalog is
// valid for lookups and behaves as the built-in catalog.
//
// A Catalog must not be modified while it is being used concurrently.
type Catalog struct {
	oidToDataType  map[uint32]*DataType
	nameToDataType map[string]*DataType
}

var builtinDataTypes = []DataType{
	{Name: "bool", OID: BoolOID, ArrayOID: BoolArrayOID},
	{Name: "bytea", OID: ByteaOID, ArrayOID: ByteaArrayOID},
	{Name: "name", OID: NameOID, ArrayOID: NameArrayOID},
	{Name: "int8", OID: Int8OID, ArrayOID: Int8ArrayOID},
	{Name: "int2", OID: Int2OID, ArrayOID: Int2ArrayOID},
	{Name: "int4", OID: Int4OID, ArrayOID: Int4ArrayOID},
	{Name: "text", OID: TextOID, ArrayOID: TextArrayOID},
	{Name: "oid", OID: OIDOID},
	{Name: "json", OID: JSONOID, ArrayOID: JSONArrayOID, MinServerVersion: "9.2"},
	{Name: "point", OID: PointOID, ArrayOID: PointArrayOID},
	{Name: "lseg", OID: LsegOID, ArrayOID: LsegArrayOID},
	{Name: "path", OID: PathOID, ArrayOID: PathArrayOID},
	{Name: "box", OID: BoxOID, ArrayOID: BoxArrayOID, Delimiter: ';'},
	{Name: "polygon", OID: PolygonOID, ArrayOID: PolygonArrayOID},
	{Name: "line", OID: LineOID, ArrayOID: LineArrayOID, MinServerVersion: "9.4"},
	{Name: "float4", OID: Float4OID, ArrayOID: Float4ArrayOID},
	{Name: "float8", OID: Float8OID, ArrayOID: Float8ArrayOID},
	{Name: "unknown", OID: UnknownOID},
	{Name: "circle", OID: CircleOID, ArrayOID: CircleArrayOID},
	{Name: "bpchar", OID: BPCharOID, ArrayOID: BPCharArrayOID},
	{Name: "varchar", OID: VarcharOID, ArrayOID: VarcharArrayOID},
	{Name: "numeric", OID: NumericOID, ArrayOID: NumericArrayOID},
	{Name: "uuid", OID: UUIDOID, ArrayOID: UUIDArrayOID, MinServerVersion: "8.3"},
	{Name: "jsonb", OID: JSONBOID, ArrayOID: JSONBArrayOID, MinServerVersion: "9.4"},
}

// SQL standard spellings accepted by DataTypeForName.
var builtinTypeAliases = map[string]string{
	"boolean":           "bool",
	"smallint":          "int2",
	"integer":           "int4",
	"int":               "int4",
	"bigint":            "int8",
	"real":              "float4",
	"double precision":  "float8",
	"decimal":           "numeric",
	"character varying": "varchar",
	"character":         "bpchar",
	"char":              "bpchar",
}

var defaultCatalog = newBuiltinCatalog()

func newBuiltinCatalog() *Catalog {
	ci := &Catalog{
		oidToDataType:  make(map[uint32]*DataType, len(builtinDataTypes)*2),
		nameToDataType: make(map[string]*DataType, len(builtinDataTypes)*2),
	}

	for _, dt := range builtinDataTypes {
		ci.RegisterDataType(dt)
		if dt.ArrayOID != 0 {
			ci.RegisterDataType(DataType{Name: "_" + dt.Name, OID: dt.ArrayOID, ElementOID: dt.OID})
		}
	}

	for alias, name := range builtinTypeAliases {
		ci.nameToDataType[alias] = ci.nameToDataType[name]
	}

	return ci
}

// NewCatalog returns a catalog preloaded with the built-in types. Types registered on the result do not affect other
// catalogs.
func NewCatalog() *Catalog {
	ci := &Catalog{
		oidToDataType:  make(map[uint32]*DataType, len(defaultCatalog.oidToDataType)),
		nameToDataType: make(map[string]*DataType, len(defaultCatalog.nameToDataType)),
	}

	copies := make(map[*DataType]*DataType, len(defaultCatalog.oidToDataType))
	for oid, dt := range defaultCatalog.oidToDataType {
		c := *dt
		copies[dt] = &c
		ci.oidToDataType[oid] = &c
	}
	for name, dt := range defaultCatalog.nameToDataType {
		ci.nameToDataType[name] = copies[dt]
	}

	return ci
}

func (ci *Catalog) orDefault() *Catalog {
	if ci == nil {
		return defaultCatalog
	}
	return ci
}

// RegisterDataType adds t to the catalog, replacing any type with the same OID or name.
func (ci *Catalog) RegisterDataType(t DataType) {
	dt := &t
	ci.oidToDataType[t.OID] = dt
	ci.nameToDataType[t.Name] = dt
}

// DataTypeForOID returns the type registered for oid.
func (ci *Catalog) DataTypeForOID(oid uint32) (*DataType, bool) {
	dt, ok := ci.orDefault().oidToDataType[oid]
	return dt, ok
}

// DataTypeForName returns the type registered as name. Array types may be spelled either "_elem" or "elem[]".
func (ci *Catalog) DataTypeForName(name string) (*DataType, bool) {
	c := ci.orDefault()
	name = strings.ToLower(strings.TrimSpace(name))

	if strings.HasSuffix(name, "[]") {
		elem, ok := c.DataTypeForName(strings.TrimSuffix(name, "[]"))
		if !ok || elem.ArrayOID == 0 {
			return nil, false
		}
		return c.DataTypeForOID(elem.ArrayOID)
	}

	dt, ok := c.nameToDataType[name]
	return dt, ok
}

// NameOf returns the name of the type oid, or an empty string if oid is unknown.
func (ci *Catalog) NameOf(oid uint32) string {
	if dt, ok := ci.DataTypeForOID(oid); ok {
		return dt.Name
	}
	return ""
}

// ElementOID returns the element type of the array type oid.
func (ci *Catalog) ElementOID(oid uint32) (uint32, bool) {
	dt, ok := ci.DataTypeForOID(oid)
	if !ok || dt.ElementOID == 0 {
		return 0, false
	}
	return dt.ElementOID, true
}

// ArrayOID returns the array type whose elements are of type elementOID.
func (ci *Catalog) ArrayOID(elementOID uint32) (uint32, bool) {
	dt, ok := ci.DataTypeForOID(elementOID)
	if !ok || dt.ArrayOID == 0 {
		return 0, false
	}
	return dt.ArrayOID, true
}

// Delimiter returns the array element delimiter of the type elementOID.
func (ci *Catalog) Delimiter(elementOID uint32) byte {
	if dt, ok := ci.DataTypeForOID(elementOID); ok && dt.Delimiter != 0 {
		return dt.Delimiter
	}
	return ','
}
