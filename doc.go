// Package pgmodel maps PostgreSQL result rows to typed Go values.
/*
Values are converted by the codecs of package pgtype. This package adds the layer that turns a whole row into an
application type: a Projection declares the output fields of a query, an Entity describes which Go field receives each
of them, and a RowDecoder decodes rows into the entity.

Structures and projections

A Structure declares a relation and its columns. Its default projection selects every column:

	structure := pgmodel.Structure{
		Relation:   "public.event",
		PrimaryKey: []string{"uuid"},
		Columns: []pgmodel.Column{
			{Name: "uuid", OID: pgtype.UUIDOID},
			{Name: "name", OID: pgtype.VarcharOID},
			{Name: "browser", OID: pgtype.JSONOID},
		},
	}

	projection := structure.DefaultProjection().SetField("os", "%:browser:% ->> 'os'", pgtype.VarcharOID)

Projections are values. SetField, UnsetField and RenameField return modified copies.

Structures can also be loaded from YAML with LoadStructures.

Entities

An Entity binds field names to fields of a Go type. Field types are pgtype types; use pgtype.Null for nullable
fields.

	type Event struct {
		UUID    pgtype.Null[pgtype.UUID]
		Name    pgtype.Text
		Browser pgtype.JSON
		OS      pgtype.Null[pgtype.Text]
	}

	entity, err := pgmodel.NewEntity("event",
		pgmodel.Field("uuid", func(e *Event) *pgtype.Null[pgtype.UUID] { return &e.UUID }),
		pgmodel.Field("name", func(e *Event) *pgtype.Text { return &e.Name }),
		pgmodel.Field("browser", func(e *Event) *pgtype.JSON { return &e.Browser }),
		pgmodel.Field("os", func(e *Event) *pgtype.Null[pgtype.Text] { return &e.OS }),
	)

Decoding rows

NewRowDecoder checks that the entity matches the projection. Decode is all or nothing: a missing column fails with
*MissingFieldError and a field that cannot be decoded fails with *FieldError, and no partial entity is returned.

Connections

Conn runs model queries over a pgconn connection:

	conn, err := pgmodel.Connect(ctx, os.Getenv("DATABASE_URL"))
	model, err := pgmodel.NewModel(nil, structure, entity, projection)
	events, err := pgmodel.FindAll(ctx, conn, model)
	pager, err := pgmodel.PaginateFindWhere(ctx, conn, model, "name = $1", 20, 1, pgtype.Text("pageview"))

Logging

Conn logs through the Logger interface. Adapters for common loggers are in the log directory.
*/
package pgmodel
