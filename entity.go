package pgmodel

import (
	"fmt"

	"github.com/jackc/pgmodel/pgtype"
)

// EntityField binds a field name to a field of E. Create one with Field.
type EntityField[E any] struct {
	name   string
	target func(*E) pgtype.Decoder
	value  func(*E) (pgtype.Encoder, error)
}

// Name returns the field name.
func (f EntityField[E]) Name() string {
	return f.name
}

// Field binds name to the field of E returned by get. The field type T must implement pgtype.Encoder and *T must
// implement pgtype.Decoder. Use pgtype.Null for fields that may be NULL.
//
//	pgmodel.Field("visitor_id", func(e *Event) *pgtype.Int4 { return &e.VisitorID })
func Field[E any, T any, PT interface {
	*T
	pgtype.Decoder
}](name string, get func(*E) PT) EntityField[E] {
	return EntityField[E]{
		name: name,
		target: func(e *E) pgtype.Decoder {
			return get(e)
		},
		value: func(e *E) (pgtype.Encoder, error) {
			v := any(*get(e))
			enc, ok := v.(pgtype.Encoder)
			if !ok {
				return nil, fmt.Errorf("%T does not implement pgtype.Encoder", v)
			}
			return enc, nil
		},
	}
}

// Entity describes how an application type E maps to named fields. It replaces per-type generated code: build it
// once with NewEntity and share it.
type Entity[E any] struct {
	name   string
	fields []EntityField[E]
	index  map[string]int
}

// NewEntity returns the description of E named name. Field names must be unique and every field type must be both an
// Encoder and, through a pointer, a Decoder.
func NewEntity[E any](name string, fields ...EntityField[E]) (*Entity[E], error) {
	e := &Entity[E]{
		name:   name,
		fields: make([]EntityField[E], 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	var zero E
	for _, f := range fields {
		if f.name == "" {
			return nil, &EntityError{Entity: name, Message: "field without name"}
		}
		if _, ok := e.index[f.name]; ok {
			return nil, &EntityError{Entity: name, Field: f.name, Message: "duplicate field"}
		}
		if f.target == nil || f.value == nil {
			return nil, &EntityError{Entity: name, Field: f.name, Message: "field not created with Field"}
		}
		if _, err := f.value(&zero); err != nil {
			return nil, &EntityError{Entity: name, Field: f.name, Message: "invalid field type", Err: err}
		}

		e.index[f.name] = len(e.fields)
		e.fields = append(e.fields, f)
	}

	return e, nil
}

// Name returns the entity name.
func (e *Entity[E]) Name() string {
	return e.name
}

// FieldsName returns the field names in declaration order.
func (e *Entity[E]) FieldsName() []string {
	names := make([]string, len(e.fields))
	for i := range e.fields {
		names[i] = e.fields[i].name
	}
	return names
}

func (e *Entity[E]) field(name string) (EntityField[E], bool) {
	i, ok := e.index[name]
	if !ok {
		return EntityField[E]{}, false
	}
	return e.fields[i], true
}

// Get returns the value of the field name of entity.
func (e *Entity[E]) Get(entity *E, name string) (pgtype.Encoder, bool) {
	f, ok := e.field(name)
	if !ok {
		return nil, false
	}
	enc, err := f.value(entity)
	if err != nil {
		return nil, false
	}
	return enc, true
}

// checkProjection verifies that e has exactly the fields of p and that each field accepts the field type.
func (e *Entity[E]) checkProjection(p Projection) error {
	if p.Len() != len(e.fields) {
		for _, name := range p.FieldsName() {
			if _, ok := e.index[name]; !ok {
				return &EntityError{Entity: e.name, Field: name, Message: "projection field not declared by entity"}
			}
		}
	}

	var zero E
	for _, f := range e.fields {
		pf, ok := p.Field(f.name)
		if !ok {
			return &EntityError{Entity: e.name, Field: f.name, Message: "entity field not in projection"}
		}
		if pf.OID != 0 && !f.target(&zero).AcceptsOID(pf.OID) {
			return &EntityError{
				Entity:  e.name,
				Field:   f.name,
				Message: fmt.Sprintf("cannot decode oid %d into %T", pf.OID, f.target(&zero)),
				Err:     pgtype.ErrIncompatibleOID,
			}
		}
	}

	return nil
}
