package pgmodel_test

import (
	"testing"

	"github.com/jackc/pgmodel"
	"github.com/jackc/pgmodel/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel(t *testing.T) {
	entity := mustEventExtraEntity(t)

	model, err := pgmodel.NewModel(nil, eventStructure, entity, eventExtraProjection())
	require.NoError(t, err)

	assert.Equal(t, eventStructure, model.Structure())
	assert.Same(t, entity, model.Entity())
	assert.Equal(t, []string{"uuid", "name", "visitor_id", "browser", "os"}, model.Projection().FieldsName())
	assert.Equal(t, model.Projection(), model.Decoder().Projection())
}

func TestNewModelRejectsInvalidStructure(t *testing.T) {
	structure := eventStructure
	structure.PrimaryKey = []string{"id"}

	_, err := pgmodel.NewModel(nil, structure, mustEventEntity(t), eventStructure.DefaultProjection())
	require.Error(t, err)
}

func TestNewModelRequiresPrimaryKeyField(t *testing.T) {
	type visit struct {
		Name pgtype.Text
	}

	structure := pgmodel.Structure{
		Relation:   "public.visit",
		PrimaryKey: []string{"id"},
		Columns: []pgmodel.Column{
			{Name: "id", OID: pgtype.Int4OID},
			{Name: "name", OID: pgtype.TextOID},
		},
	}
	entity, err := pgmodel.NewEntity("visit",
		pgmodel.Field("name", func(v *visit) *pgtype.Text { return &v.Name }),
	)
	require.NoError(t, err)

	_, err = pgmodel.NewModel(nil, structure, entity, structure.DefaultProjection().UnsetField("id"))
	var entityErr *pgmodel.EntityError
	require.ErrorAs(t, err, &entityErr)
	assert.Equal(t, "id", entityErr.Field)
}

func TestNewModelRejectsMismatchedProjection(t *testing.T) {
	_, err := pgmodel.NewModel(nil, eventStructure, mustEventEntity(t), eventExtraProjection())
	var entityErr *pgmodel.EntityError
	require.ErrorAs(t, err, &entityErr)
	assert.Equal(t, "os", entityErr.Field)
}
