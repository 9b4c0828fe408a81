package pgmodel

import (
	"fmt"
	"io"

	"github.com/jackc/pgmodel/pgtype"
	"gopkg.in/yaml.v3"
)

type yamlColumn struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type yamlStructure struct {
	Relation   string       `yaml:"relation"`
	PrimaryKey []string     `yaml:"primary_key"`
	Columns    []yamlColumn `yaml:"columns"`
}

// LoadStructures reads structure declarations from YAML. The document maps a structure name to its declaration:
//
//	event:
//	  relation: public.event
//	  primary_key: [uuid]
//	  columns:
//	    - {name: uuid, type: uuid}
//	    - {name: name, type: varchar}
//	    - {name: visitor_id, type: int4}
//
// Type names are resolved through ci. A nil ci uses the built-in types.
func LoadStructures(r io.Reader, ci *pgtype.Catalog) (map[string]Structure, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc map[string]yamlStructure
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return map[string]Structure{}, nil
		}
		return nil, fmt.Errorf("failed to decode structures: %w", err)
	}

	structures := make(map[string]Structure, len(doc))
	for name, ys := range doc {
		s := Structure{
			Relation:   ys.Relation,
			PrimaryKey: ys.PrimaryKey,
			Columns:    make([]Column, len(ys.Columns)),
		}

		for i, yc := range ys.Columns {
			dt, ok := ci.DataTypeForName(yc.Type)
			if !ok {
				return nil, fmt.Errorf("structure %s: column %q has unknown type %q", name, yc.Name, yc.Type)
			}
			s.Columns[i] = Column{Name: yc.Name, OID: dt.OID}
		}

		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("structure %s: %w", name, err)
		}
		structures[name] = s
	}

	return structures, nil
}
