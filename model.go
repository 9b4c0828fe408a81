package pgmodel

import (
	"fmt"

	"github.com/jackc/pgmodel/pgtype"
)

// Model ties an entity to the relation it is stored in and to the projection it is read with.
type Model[E any] struct {
	structure Structure
	entity    *Entity[E]
	decoder   *RowDecoder[E]
}

// NewModel returns a model reading entity from structure with projection. Use structure.DefaultProjection() unless
// the entity carries computed fields:
//
//	projection := structure.DefaultProjection().SetField("os", "%:browser:% ->> 'os'", pgtype.VarcharOID)
//
// A nil ci uses the built-in types.
func NewModel[E any](ci *pgtype.Catalog, structure Structure, entity *Entity[E], projection Projection) (*Model[E], error) {
	if err := structure.Validate(); err != nil {
		return nil, err
	}

	for _, k := range structure.PrimaryKey {
		if _, ok := entity.field(k); !ok {
			return nil, &EntityError{Entity: entity.name, Field: k, Message: fmt.Sprintf("primary key of %s not declared by entity", structure.Relation)}
		}
	}

	decoder, err := NewRowDecoder(ci, projection, entity)
	if err != nil {
		return nil, err
	}

	return &Model[E]{structure: structure, entity: entity, decoder: decoder}, nil
}

func (m *Model[E]) Structure() Structure {
	return m.structure
}

func (m *Model[E]) Entity() *Entity[E] {
	return m.entity
}

func (m *Model[E]) Projection() Projection {
	return m.decoder.projection
}

func (m *Model[E]) Decoder() *RowDecoder[E] {
	return m.decoder
}

// selectSQL returns the query selecting the projection from the relation, restricted by clause when not empty.
func (m *Model[E]) selectSQL(clause string) string {
	sql := "SELECT " + m.Projection().Expand("") + " FROM " + m.structure.Relation
	if clause != "" {
		sql += " WHERE " + clause
	}
	return sql
}
