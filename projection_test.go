package pgmodel_test

import (
	"testing"

	"github.com/jackc/pgmodel"
	"github.com/jackc/pgmodel/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProjection(t *testing.T) {
	p := eventStructure.DefaultProjection()

	assert.Equal(t, []string{"uuid", "name", "visitor_id", "browser"}, p.FieldsName())
	assert.Equal(t, `%:uuid:% AS "uuid", %:name:% AS "name", %:visitor_id:% AS "visitor_id", %:browser:% AS "browser"`, p.String())

	f, ok := p.Field("visitor_id")
	require.True(t, ok)
	assert.Equal(t, pgmodel.ProjectionField{Name: "visitor_id", Expression: "%:visitor_id:%", OID: pgtype.Int4OID}, f)
}

func TestProjectionSetFieldLeavesBaseUnchanged(t *testing.T) {
	base := eventStructure.DefaultProjection()
	baseString := base.String()

	extra := base.SetField("os", "%:browser:% ->> 'os'", pgtype.VarcharOID)

	assert.Equal(t, []string{"uuid", "name", "visitor_id", "browser"}, base.FieldsName())
	assert.Equal(t, baseString, base.String())
	assert.Equal(t, []string{"uuid", "name", "visitor_id", "browser", "os"}, extra.FieldsName())

	// Derive two variants from the same base to catch shared backing arrays.
	a := base.SetField("a", "1", pgtype.Int4OID)
	b := base.SetField("b", "2", pgtype.Int4OID)
	assert.Equal(t, []string{"uuid", "name", "visitor_id", "browser", "a"}, a.FieldsName())
	assert.Equal(t, []string{"uuid", "name", "visitor_id", "browser", "b"}, b.FieldsName())
}

func TestProjectionSetFieldOverrides(t *testing.T) {
	base := eventStructure.DefaultProjection()
	p := base.SetField("name", "upper(%:name:%)", pgtype.TextOID)

	assert.Equal(t, base.FieldsName(), p.FieldsName())
	f, _ := p.Field("name")
	assert.Equal(t, "upper(%:name:%)", f.Expression)
	assert.EqualValues(t, pgtype.TextOID, f.OID)

	f, _ = base.Field("name")
	assert.Equal(t, "%:name:%", f.Expression)
}

func TestProjectionUnsetField(t *testing.T) {
	base := eventStructure.DefaultProjection()
	p := base.UnsetField("name")

	assert.Equal(t, []string{"uuid", "visitor_id", "browser"}, p.FieldsName())
	assert.Equal(t, 4, base.Len())
	assert.Equal(t, base.FieldsName(), base.UnsetField("missing").FieldsName())
}

func TestProjectionRenameField(t *testing.T) {
	base := eventStructure.DefaultProjection()

	p, err := base.RenameField("visitor_id", "visitor")
	require.NoError(t, err)
	assert.Equal(t, []string{"uuid", "name", "visitor", "browser"}, p.FieldsName())
	assert.Equal(t, []string{"uuid", "name", "visitor_id", "browser"}, base.FieldsName())

	_, err = base.RenameField("missing", "x")
	require.Error(t, err)

	_, err = base.RenameField("name", "uuid")
	require.Error(t, err)
}

func TestProjectionExpand(t *testing.T) {
	p := pgmodel.NewProjection(
		pgmodel.ProjectionField{Name: "name", Expression: "%:name:%", OID: pgtype.TextOID},
		pgmodel.ProjectionField{Name: "os", Expression: "%:browser:% ->> 'os'", OID: pgtype.TextOID},
		pgmodel.ProjectionField{Name: "total", Expression: "count(*)", OID: pgtype.Int8OID},
	)

	assert.Equal(t, `"name" AS "name", "browser" ->> 'os' AS "os", count(*) AS "total"`, p.Expand(""))
	assert.Equal(t, `"e"."name" AS "name", "e"."browser" ->> 'os' AS "os", count(*) AS "total"`, p.Expand("e"))
}

func TestIdentifierSanitize(t *testing.T) {
	tests := []struct {
		ident pgmodel.Identifier
		want  string
	}{
		{pgmodel.Identifier{"foo"}, `"foo"`},
		{pgmodel.Identifier{`you should " not do this`}, `"you should "" not do this"`},
		{pgmodel.Identifier{"public", "event"}, `"public"."event"`},
		{pgmodel.Identifier{"", "event"}, `"event"`},
		{pgmodel.Identifier{"nul\x00byte"}, `"nulbyte"`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ident.Sanitize())
	}
}
