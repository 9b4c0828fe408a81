package pgmodel_test

import (
	"strings"
	"testing"

	"github.com/jackc/pgmodel"
	"github.com/jackc/pgmodel/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructureValidate(t *testing.T) {
	require.NoError(t, eventStructure.Validate())

	tests := map[string]pgmodel.Structure{
		"no relation": {Columns: []pgmodel.Column{{Name: "a"}}},
		"no columns":  {Relation: "t"},
		"unnamed":     {Relation: "t", Columns: []pgmodel.Column{{OID: pgtype.Int4OID}}},
		"duplicate":   {Relation: "t", Columns: []pgmodel.Column{{Name: "a"}, {Name: "a"}}},
		"pk missing":  {Relation: "t", PrimaryKey: []string{"b"}, Columns: []pgmodel.Column{{Name: "a"}}},
		"pk repeated": {Relation: "t", PrimaryKey: []string{"a", "a"}, Columns: []pgmodel.Column{{Name: "a"}}},
	}

	for name, s := range tests {
		assert.Errorf(t, s.Validate(), name)
	}
}

func TestLoadStructures(t *testing.T) {
	src := `
event:
  relation: public.event
  primary_key: [uuid]
  columns:
    - {name: uuid, type: uuid}
    - {name: name, type: character varying}
    - {name: visitor_id, type: integer}
    - {name: browser, type: json}
visit:
  relation: visit
  primary_key: [event_uuid, at]
  columns:
    - name: event_uuid
      type: uuid
    - name: at
      type: int8
    - name: tags
      type: text[]
`
	structures, err := pgmodel.LoadStructures(strings.NewReader(src), nil)
	require.NoError(t, err)
	require.Len(t, structures, 2)

	assert.Equal(t, eventStructure, structures["event"])
	assert.Equal(t, pgmodel.Structure{
		Relation:   "visit",
		PrimaryKey: []string{"event_uuid", "at"},
		Columns: []pgmodel.Column{
			{Name: "event_uuid", OID: pgtype.UUIDOID},
			{Name: "at", OID: pgtype.Int8OID},
			{Name: "tags", OID: pgtype.TextArrayOID},
		},
	}, structures["visit"])
}

func TestLoadStructuresCustomType(t *testing.T) {
	ci := pgtype.NewCatalog()
	ci.RegisterDataType(pgtype.DataType{Name: "citext", OID: 90001})

	src := "user:\n  relation: users\n  columns:\n    - {name: email, type: citext}\n"
	structures, err := pgmodel.LoadStructures(strings.NewReader(src), ci)
	require.NoError(t, err)
	assert.EqualValues(t, 90001, structures["user"].Columns[0].OID)

	_, err = pgmodel.LoadStructures(strings.NewReader(src), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "citext"`)
}

func TestLoadStructuresInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":   "event:\n  relation: e\n  colums: []\n",
		"bad pk":        "event:\n  relation: e\n  primary_key: [id]\n  columns:\n    - {name: uuid, type: uuid}\n",
		"not a mapping": "- a\n- b\n",
	}

	for name, src := range tests {
		_, err := pgmodel.LoadStructures(strings.NewReader(src), nil)
		assert.Errorf(t, err, name)
	}
}

func TestLoadStructuresEmpty(t *testing.T) {
	structures, err := pgmodel.LoadStructures(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, structures)
}
