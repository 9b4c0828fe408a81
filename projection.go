package pgmodel

import (
	"fmt"
	"regexp"
	"strings"
)

// Identifier a PostgreSQL identifier or name. Identifiers can be composed of
// multiple parts such as ["schema", "table"] or ["table", "column"].
type Identifier []string

// Sanitize returns a sanitized string safe for SQL interpolation.
func (ident Identifier) Sanitize() string {
	parts := make([]string, 0, len(ident))
	for _, p := range ident {
		if p == "" {
			continue
		}
		s := strings.ReplaceAll(p, string([]byte{0}), "")
		parts = append(parts, `"`+strings.ReplaceAll(s, `"`, `""`)+`"`)
	}
	return strings.Join(parts, ".")
}

// ProjectionField is one output column of a projection: the SQL expression computing it and its type OID.
//
// Expression may reference columns of the relation with %:column:% placeholders. They are resolved by
// Projection.Expand.
type ProjectionField struct {
	Name       string
	Expression string
	OID        uint32
}

// Projection is the ordered list of output fields of a query. Field names are unique.
//
// Projection has value semantics: every modifying method returns a new Projection and leaves the receiver unchanged,
// so variants can be derived from a shared base.
type Projection struct {
	fields []ProjectionField
}

// NewProjection returns a projection of fields. A later field replaces an earlier one with the same name.
func NewProjection(fields ...ProjectionField) Projection {
	var p Projection
	for _, f := range fields {
		p = p.SetField(f.Name, f.Expression, f.OID)
	}
	return p
}

func (p Projection) index(name string) int {
	for i := range p.fields {
		if p.fields[i].Name == name {
			return i
		}
	}
	return -1
}

func (p Projection) clone(extra int) []ProjectionField {
	fields := make([]ProjectionField, len(p.fields), len(p.fields)+extra)
	copy(fields, p.fields)
	return fields
}

// SetField returns a copy of p with the field name set to expression and oid. An existing field keeps its position.
func (p Projection) SetField(name, expression string, oid uint32) Projection {
	field := ProjectionField{Name: name, Expression: expression, OID: oid}

	if i := p.index(name); i >= 0 {
		fields := p.clone(0)
		fields[i] = field
		return Projection{fields: fields}
	}

	return Projection{fields: append(p.clone(1), field)}
}

// UnsetField returns a copy of p without the field name.
func (p Projection) UnsetField(name string) Projection {
	i := p.index(name)
	if i < 0 {
		return p
	}

	fields := make([]ProjectionField, 0, len(p.fields)-1)
	fields = append(fields, p.fields[:i]...)
	fields = append(fields, p.fields[i+1:]...)
	return Projection{fields: fields}
}

// RenameField returns a copy of p with the field oldName called newName.
func (p Projection) RenameField(oldName, newName string) (Projection, error) {
	i := p.index(oldName)
	if i < 0 {
		return p, fmt.Errorf("projection has no field %q", oldName)
	}
	if oldName != newName && p.index(newName) >= 0 {
		return p, fmt.Errorf("projection already has a field %q", newName)
	}

	fields := p.clone(0)
	fields[i].Name = newName
	return Projection{fields: fields}, nil
}

// Field returns the field name.
func (p Projection) Field(name string) (ProjectionField, bool) {
	if i := p.index(name); i >= 0 {
		return p.fields[i], true
	}
	return ProjectionField{}, false
}

// Fields returns the fields in order.
func (p Projection) Fields() []ProjectionField {
	return p.clone(0)
}

// Len returns the number of fields.
func (p Projection) Len() int {
	return len(p.fields)
}

// FieldsName returns the field names in order.
func (p Projection) FieldsName() []string {
	names := make([]string, len(p.fields))
	for i := range p.fields {
		names[i] = p.fields[i].Name
	}
	return names
}

// String renders the select list with expressions as written, e.g. `%:name:% AS "name", %:browser:% ->> 'os' AS "os"`.
func (p Projection) String() string {
	return p.render(func(expression string) string { return expression })
}

var placeholderRE = regexp.MustCompile(`%:([^%:]+):%`)

// Expand renders the select list with every %:column:% placeholder replaced by the quoted column, qualified by alias
// when alias is not empty.
func (p Projection) Expand(alias string) string {
	return p.render(func(expression string) string {
		return placeholderRE.ReplaceAllStringFunc(expression, func(m string) string {
			column := placeholderRE.FindStringSubmatch(m)[1]
			return Identifier{alias, column}.Sanitize()
		})
	})
}

func (p Projection) render(expr func(string) string) string {
	var sb strings.Builder
	for i := range p.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(expr(p.fields[i].Expression))
		sb.WriteString(" AS ")
		sb.WriteString(Identifier{p.fields[i].Name}.Sanitize())
	}
	return sb.String()
}
