package pgmodel

import (
	"github.com/jackc/pgmodel/pgtype"
)

// RowDecoder turns rows selected with a projection into values of E.
type RowDecoder[E any] struct {
	ci         *pgtype.Catalog
	projection Projection
	entity     *Entity[E]
}

// NewRowDecoder returns a decoder of rows of projection into E. The entity must declare exactly the fields of the
// projection, each able to decode the field type. A nil ci uses the built-in types.
func NewRowDecoder[E any](ci *pgtype.Catalog, projection Projection, entity *Entity[E]) (*RowDecoder[E], error) {
	if err := entity.checkProjection(projection); err != nil {
		return nil, err
	}

	return &RowDecoder[E]{ci: ci, projection: projection, entity: entity}, nil
}

// Projection returns the projection rows are expected to have.
func (d *RowDecoder[E]) Projection() Projection {
	return d.projection
}

// Decode decodes row into a new E. Each field is decoded from the column of the same name in the format the row
// carries. On the first failure the zero E is returned with a *MissingFieldError or a *FieldError.
func (d *RowDecoder[E]) Decode(row Row) (E, error) {
	var e E
	for _, f := range d.entity.fields {
		v, ok := row.Value(f.name)
		if !ok {
			var zero E
			return zero, &MissingFieldError{Field: f.name}
		}

		if err := pgtype.Decode(d.ci, f.target(&e), v.OID, v.Format, v.Bytes); err != nil {
			var zero E
			return zero, &FieldError{Field: f.name, Err: err}
		}
	}

	return e, nil
}
