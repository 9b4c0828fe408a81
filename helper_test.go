package pgmodel_test

import (
	"testing"

	"github.com/jackc/pgmodel"
	"github.com/jackc/pgmodel/pgtype"
	"github.com/jackc/pgproto3/v2"
	"github.com/stretchr/testify/require"
)

type event struct {
	UUID      pgtype.Null[pgtype.UUID]
	Name      pgtype.Text
	VisitorID pgtype.Int4
	Browser   pgtype.JSON
}

type eventExtra struct {
	UUID      pgtype.Null[pgtype.UUID]
	Name      pgtype.Text
	VisitorID pgtype.Int4
	Browser   pgtype.JSON
	OS        pgtype.Null[pgtype.Text]
}

var eventStructure = pgmodel.Structure{
	Relation:   "public.event",
	PrimaryKey: []string{"uuid"},
	Columns: []pgmodel.Column{
		{Name: "uuid", OID: pgtype.UUIDOID},
		{Name: "name", OID: pgtype.VarcharOID},
		{Name: "visitor_id", OID: pgtype.Int4OID},
		{Name: "browser", OID: pgtype.JSONOID},
	},
}

func eventFields() []pgmodel.EntityField[event] {
	return []pgmodel.EntityField[event]{
		pgmodel.Field("uuid", func(e *event) *pgtype.Null[pgtype.UUID] { return &e.UUID }),
		pgmodel.Field("name", func(e *event) *pgtype.Text { return &e.Name }),
		pgmodel.Field("visitor_id", func(e *event) *pgtype.Int4 { return &e.VisitorID }),
		pgmodel.Field("browser", func(e *event) *pgtype.JSON { return &e.Browser }),
	}
}

func mustEventEntity(t testing.TB) *pgmodel.Entity[event] {
	t.Helper()
	entity, err := pgmodel.NewEntity("event", eventFields()...)
	require.NoError(t, err)
	return entity
}

func mustEventExtraEntity(t testing.TB) *pgmodel.Entity[eventExtra] {
	t.Helper()
	entity, err := pgmodel.NewEntity("event_extra",
		pgmodel.Field("uuid", func(e *eventExtra) *pgtype.Null[pgtype.UUID] { return &e.UUID }),
		pgmodel.Field("name", func(e *eventExtra) *pgtype.Text { return &e.Name }),
		pgmodel.Field("visitor_id", func(e *eventExtra) *pgtype.Int4 { return &e.VisitorID }),
		pgmodel.Field("browser", func(e *eventExtra) *pgtype.JSON { return &e.Browser }),
		pgmodel.Field("os", func(e *eventExtra) *pgtype.Null[pgtype.Text] { return &e.OS }),
	)
	require.NoError(t, err)
	return entity
}

func eventExtraProjection() pgmodel.Projection {
	return eventStructure.DefaultProjection().SetField("os", "%:browser:% ->> 'os'", pgtype.VarcharOID)
}

type column struct {
	name  string
	oid   uint32
	value []byte
}

// textRow builds a text format row. A nil value is NULL.
func textRow(t testing.TB, columns ...column) *pgmodel.DataRow {
	t.Helper()

	fields := make([]pgproto3.FieldDescription, len(columns))
	values := make([][]byte, len(columns))
	for i, c := range columns {
		fields[i] = pgproto3.FieldDescription{Name: []byte(c.name), DataTypeOID: c.oid, Format: pgtype.TextFormatCode}
		values[i] = c.value
	}

	row, err := pgmodel.NewDataRow(fields, values)
	require.NoError(t, err)
	return row
}
